package handler

import "github.com/gofiber/fiber/v2"

// Routes groups the API handlers mounted under /api/v1.
type Routes struct {
	Products *ProductHandler
	Orders   *OrderHandler
	Backup   *BackupHandler
	Auth     *AuthHandler
}

// Register mounts every API route on api. Reads are public; requireAuth guards
// the mutating routes and the backup download.
func (r Routes) Register(api fiber.Router, requireAuth fiber.Handler) {
	// ============ PUBLIC ROUTES ============
	if r.Auth != nil {
		api.Post("/auth/login", r.Auth.Login)
	}
	api.Get("/products", r.Products.GetProducts)
	api.Get("/orders", r.Orders.GetOrders)
	api.Get("/orders/summary", r.Orders.GetSummary)
	api.Get("/orders/export", r.Orders.ExportOrders)

	// ============ PROTECTED ROUTES ============
	api.Post("/products", requireAuth, r.Products.CreateProduct)
	api.Delete("/products/:code", requireAuth, r.Products.DeleteProduct)
	api.Post("/orders", requireAuth, r.Orders.CreateOrder)
	api.Put("/orders/:id", requireAuth, r.Orders.UpdateOrder)
	api.Delete("/orders/:id", requireAuth, r.Orders.DeleteOrder)
	api.Get("/backup", requireAuth, r.Backup.GetBackup)
}
