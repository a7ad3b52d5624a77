package handler

import (
	"go-order-tracker/internal/middleware"
	"go-order-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BackupHandler struct {
	service service.BackupService
}

func NewBackupHandler(s service.BackupService) *BackupHandler {
	return &BackupHandler{service: s}
}

// GetBackup handles GET /api/v1/backup
func (h *BackupHandler) GetBackup(c *fiber.Ctx) error {
	backup, err := h.service.Snapshot(c.UserContext())
	if err != nil {
		middleware.Logger(c).Error("failed to create backup", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create backup"})
	}
	return c.JSON(backup)
}

// Health handles GET /health
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
