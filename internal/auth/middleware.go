package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/campushub/studenthub/internal/domain"
	apperrors "github.com/campushub/studenthub/pkg/util"
)

const identityKey = "auth_identity"

// Middleware validates bearer tokens and attaches the resolved identity.
type Middleware struct {
	verifier IdentityVerifier
}

// NewMiddleware constructs middleware around a verifier.
func NewMiddleware(verifier IdentityVerifier) *Middleware {
	return &Middleware{verifier: verifier}
}

// Handle enforces authentication for protected routes. Every failure mode
// collapses into the same 401 response.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized()
	}

	identity, err := m.verifier.Verify(c.Context(), parts[1])
	if err != nil {
		return apperrors.NewUnauthorized()
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}
