package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"career-hub/internal/auth"
)

const userKey = "user"

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireUser rejects requests without a valid access token.
func (h *Handler) RequireUser(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return errors.Wrap(auth.ErrUnauthorized, "authorization token not provided")
	}
	u, err := h.Auth.Verify(token)
	if err != nil {
		return err
	}
	c.Locals(userKey, u)
	return c.Next()
}

// OptionalUser attaches the user when a valid token is present.
func (h *Handler) OptionalUser(c *fiber.Ctx) error {
	if token := bearerToken(c); token != "" {
		if u, err := h.Auth.Verify(token); err == nil {
			c.Locals(userKey, u)
		}
	}
	return c.Next()
}

func currentUser(c *fiber.Ctx) *auth.User {
	u, _ := c.Locals(userKey).(*auth.User)
	return u
}
