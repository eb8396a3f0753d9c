package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campushub/studenthub/internal/api/dto"
	"github.com/campushub/studenthub/internal/auth"
	"github.com/campushub/studenthub/internal/domain"
	"github.com/campushub/studenthub/internal/service"
	apperrors "github.com/campushub/studenthub/pkg/util"
)

// FeedbackHandler exposes the ticket endpoints.
type FeedbackHandler struct {
	service *service.FeedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: feedbackService}
}

// Submit handles POST /feedback.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("invalid feedback payload", details)
	}

	feedback, err := h.service.Submit(c.Context(), *identity, service.FeedbackInput{
		Department:  req.Department,
		Category:    req.Category,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    domain.FeedbackPriority(req.Priority),
		Anonymous:   req.Anonymous,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"feedback": feedback})
}

// List handles GET /feedback.
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	feedback, err := h.service.ListOwned(c.Context(), *identity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"feedback": feedback})
}

// GetOne handles GET /feedback/:id.
func (h *FeedbackHandler) GetOne(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	feedback, err := h.service.GetOne(c.Context(), *identity, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"feedback": feedback})
}
