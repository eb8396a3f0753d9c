package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campushub/studenthub/internal/auth"
	"github.com/campushub/studenthub/internal/service"
	apperrors "github.com/campushub/studenthub/pkg/util"
)

// NotificationsHandler exposes the inbox endpoints.
type NotificationsHandler struct {
	service *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{service: notificationService}
}

// List handles GET /notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	notifications, err := h.service.List(c.Context(), *identity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"notifications": notifications})
}

// MarkRead handles PUT /notifications/:id/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	if err := h.service.MarkRead(c.Context(), *identity, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Count handles GET /notifications/count.
func (h *NotificationsHandler) Count(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	count, err := h.service.UnreadCount(c.Context(), *identity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"count": count})
}
