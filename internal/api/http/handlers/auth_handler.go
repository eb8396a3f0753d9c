package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campushub/studenthub/internal/api/dto"
	"github.com/campushub/studenthub/internal/auth"
	"github.com/campushub/studenthub/internal/service"
	apperrors "github.com/campushub/studenthub/pkg/util"
)

// AuthHandler exposes sign-up, sign-in and profile endpoints.
type AuthHandler struct {
	auth     *service.AuthService
	profiles *service.ProfileService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, profiles *service.ProfileService) *AuthHandler {
	return &AuthHandler{auth: authService, profiles: profiles}
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("invalid signup payload", details)
	}

	account, err := h.auth.SignUp(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": dto.NewUserResponse(account)})
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("invalid signin payload", details)
	}

	account, token, expiresAt, err := h.auth.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"session": dto.SessionResponse{AccessToken: token, TokenType: "bearer", ExpiresAt: expiresAt},
		"user":    dto.NewUserResponse(account),
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	profile, err := h.profiles.Get(c.Context(), *identity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"profile": profile})
}

// UpdateProfile handles PUT /auth/profile.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	profile, err := h.profiles.Update(c.Context(), *identity, service.ProfileUpdate{
		Name:      req.Name,
		Phone:     req.Phone,
		StudentID: req.StudentID,
		Major:     req.Major,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"profile": profile})
}
