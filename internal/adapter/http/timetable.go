package http

import (
	"github.com/gofiber/fiber/v2"

	"career-hub/internal/domain"
	"career-hub/internal/usecase"
)

type scheduleReq struct {
	Days []domain.DaySchedule `json:"days" validate:"dive"`
}

type subjectsReq struct {
	Subjects []string `json:"subjects" validate:"max=200"`
}

func (h *Handler) Periods(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"periods": h.Timetable.Periods(), "default": usecase.DefaultPeriod})
}

func (h *Handler) Schedule(c *fiber.Ctx) error {
	period := c.Query("period", usecase.DefaultPeriod)
	days, err := h.Timetable.Schedule(period)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"period": period, "days": days})
}

func (h *Handler) PeriodRecommendations(c *fiber.Ctx) error {
	recs, err := h.Timetable.Recommendations(c.Query("period"))
	if err != nil {
		return err
	}
	return c.JSON(recs)
}

func (h *Handler) ScheduleRecommendations(c *fiber.Ctx) error {
	var req scheduleReq
	if err := h.bind(c, &req); err != nil {
		return err
	}
	return c.JSON(usecase.GenerateRecommendations(req.Days))
}

func (h *Handler) PeriodCertifications(c *fiber.Ctx) error {
	certs, err := h.Timetable.Certifications(c.Query("period"))
	if err != nil {
		return err
	}
	return c.JSON(certs)
}

func (h *Handler) SubjectCertifications(c *fiber.Ctx) error {
	var req subjectsReq
	if err := h.bind(c, &req); err != nil {
		return err
	}
	return c.JSON(usecase.MatchCertifications(req.Subjects))
}

// bind parses the JSON body into dst and validates it.
func (h *Handler) bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	return h.Validate.Struct(dst)
}
