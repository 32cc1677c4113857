package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Login(c *fiber.Ctx) error {
	target, err := h.Auth.BeginLogin(c.UserContext(), c.Params("provider"))
	if err != nil {
		return err
	}
	return c.Redirect(target, fiber.StatusFound)
}

func (h *Handler) Callback(c *fiber.Ctx) error {
	sess, err := h.Auth.CompleteLogin(c.UserContext(), c.Query("code"), c.Query("state"))
	if err != nil {
		return err
	}
	return c.JSON(sess)
}

func (h *Handler) Session(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"user": currentUser(c), "loading": false})
}

// Logout revokes the caller's session at the identity provider. Anonymous
// callers get the same empty response.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if token := bearerToken(c); token != "" {
		if err := h.Auth.SignOut(c.UserContext(), token); err != nil {
			slog.Warn("auth: sign out failed", "error", err)
			return err
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
