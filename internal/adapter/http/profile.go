package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"career-hub/internal/domain"
	"career-hub/internal/usecase"
)

type skillNameReq struct {
	Name string `json:"name"`
}

func (h *Handler) profileEditor(c *fiber.Ctx) (*usecase.ProfileEditor, error) {
	return usecase.LoadProfileEditor(c.UserContext(), h.Profiles, h.Validate, currentUser(c).ID)
}

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	e, err := h.profileEditor(c)
	if err != nil {
		return err
	}
	return c.JSON(e.Profile())
}

func (h *Handler) SaveProfile(c *fiber.Ctx) error {
	var p domain.Profile
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	e, err := h.profileEditor(c)
	if err != nil {
		return err
	}
	if err := e.Save(c.UserContext(), p); err != nil {
		return err
	}
	return c.JSON(e.Profile())
}

func (h *Handler) AddProfileSkill(c *fiber.Ctx) error {
	var req skillNameReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	e, err := h.profileEditor(c)
	if err != nil {
		return err
	}
	if err := e.AddSkill(c.UserContext(), req.Name); err != nil {
		return err
	}
	return c.JSON(e.Profile())
}

func (h *Handler) RemoveProfileSkill(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid skill name")
	}
	e, err := h.profileEditor(c)
	if err != nil {
		return err
	}
	if err := e.RemoveSkill(c.UserContext(), name); err != nil {
		return err
	}
	return c.JSON(e.Profile())
}
