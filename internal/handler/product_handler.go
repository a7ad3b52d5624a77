package handler

import (
	"errors"

	"go-order-tracker/internal/middleware"
	"go-order-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts handles GET /api/v1/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.List(c.UserContext())
	if err != nil {
		middleware.Logger(c).Error("failed to fetch products", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch products"})
	}
	return c.JSON(products)
}

// CreateProduct handles POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.Create(c.UserContext(), req, middleware.Actor(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrProductExists):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		middleware.Logger(c).Error("failed to create product", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create product"})
	}

	return c.Status(201).JSON(product)
}

// DeleteProduct handles DELETE /api/v1/products/:code
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	code := c.Params("code")

	if err := h.service.Delete(c.UserContext(), code, middleware.Actor(c)); err != nil {
		if errors.Is(err, service.ErrProductInUse) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		middleware.Logger(c).Error("failed to delete product", zap.String("code", code), zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete product"})
	}

	return c.JSON(fiber.Map{"success": true})
}
