package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campushub/studenthub/internal/service"
)

// CatalogHandler exposes the public resource, department and announcement
// endpoints plus the sample-data bootstrap.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: catalogService}
}

// ListResources handles GET /resources.
func (h *CatalogHandler) ListResources(c *fiber.Ctx) error {
	resources, err := h.service.ListResources(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"resources": resources})
}

// DownloadResource handles POST /resources/:id/download.
func (h *CatalogHandler) DownloadResource(c *fiber.Ctx) error {
	resource, err := h.service.DownloadResource(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"resource": resource})
}

// ListDepartments handles GET /departments.
func (h *CatalogHandler) ListDepartments(c *fiber.Ctx) error {
	departments, err := h.service.ListDepartments(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"departments": departments})
}

// ListAnnouncements handles GET /announcements.
func (h *CatalogHandler) ListAnnouncements(c *fiber.Ctx) error {
	announcements, err := h.service.ListAnnouncements(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"announcements": announcements})
}

// InitData handles POST /init-data.
func (h *CatalogHandler) InitData(c *fiber.Ctx) error {
	if err := h.service.SeedSampleData(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Sample data initialized"})
}
