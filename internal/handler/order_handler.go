package handler

import (
	"errors"
	"time"

	"go-order-tracker/internal/middleware"
	"go-order-tracker/internal/report"
	"go-order-tracker/internal/service"
	"go-order-tracker/pkg/export"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service service.OrderService
	now     func() time.Time
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s, now: time.Now}
}

// dateRange reads the optional fromDate/toDate query parameters.
func dateRange(c *fiber.Ctx) (report.DateRange, error) {
	return report.ParseDateRange(c.Query("fromDate"), c.Query("toDate"))
}

// GetOrders handles GET /api/v1/orders?fromDate=&toDate=
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	r, err := dateRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	orders, err := h.service.List(c.UserContext(), r)
	if err != nil {
		middleware.Logger(c).Error("failed to fetch orders", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch orders"})
	}
	return c.JSON(orders)
}

// GetSummary handles GET /api/v1/orders/summary
func (h *OrderHandler) GetSummary(c *fiber.Ctx) error {
	r, err := dateRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := h.service.Summary(c.UserContext(), r)
	if err != nil {
		middleware.Logger(c).Error("failed to summarize orders", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to summarize orders"})
	}
	return c.JSON(summary)
}

// ExportOrders handles GET /api/v1/orders/export and streams an xlsx file.
func (h *OrderHandler) ExportOrders(c *fiber.Ctx) error {
	r, err := dateRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := h.service.Summary(c.UserContext(), r)
	if err != nil {
		middleware.Logger(c).Error("failed to load orders for export", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export orders"})
	}

	buf, err := export.OrdersWorkbook(summary)
	if err != nil {
		middleware.Logger(c).Error("failed to build workbook", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export orders"})
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Attachment(export.FileName(h.now()))
	return c.Send(buf.Bytes())
}

// CreateOrder handles POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.Create(c.UserContext(), req, middleware.Actor(c))
	if err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrProductNotFound) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		middleware.Logger(c).Error("failed to create order", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create order"})
	}

	return c.Status(201).JSON(order)
}

// UpdateOrder handles PUT /api/v1/orders/:id with a partial body.
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req service.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.Update(c.UserContext(), id, req, middleware.Actor(c))
	if err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrProductNotFound) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		middleware.Logger(c).Error("failed to update order", zap.String("id", id.String()), zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update order"})
	}

	return c.JSON(order)
}

// DeleteOrder handles DELETE /api/v1/orders/:id
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	if err := h.service.Delete(c.UserContext(), id, middleware.Actor(c)); err != nil {
		middleware.Logger(c).Error("failed to delete order", zap.String("id", id.String()), zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete order"})
	}

	return c.JSON(fiber.Map{"success": true})
}
