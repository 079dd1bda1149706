package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "ventapos/internal/log"
	"ventapos/internal/services"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// Products returns the full catalog, null price/stock preserved so the
// register screen can flag unsellable entries.
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	prods, err := h.Catalog.Products()
	if err != nil {
		applog.Error(c, "catalog.products.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load products"})
	}
	return c.JSON(prods)
}

func (h *CatalogHandler) Customers(c *fiber.Ctx) error {
	custs, err := h.Catalog.Customers()
	if err != nil {
		applog.Error(c, "catalog.customers.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load customers"})
	}
	return c.JSON(custs)
}
