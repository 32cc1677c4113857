package http

import (
	"github.com/gofiber/fiber/v2"

	"career-hub/internal/usecase"
)

func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	year, err := usecase.ParseYear(c.Query("year"))
	if err != nil {
		return err
	}
	v, err := h.Dashboard.View(c.UserContext(), currentUser(c).ID, year)
	if err != nil {
		return err
	}
	return c.JSON(v)
}
