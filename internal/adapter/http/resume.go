package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"career-hub/internal/domain"
	"career-hub/internal/model"
	"career-hub/internal/usecase"
)

type exportReq struct {
	Template string `json:"template"`
}

func (h *Handler) resumeEditor(c *fiber.Ctx) (*usecase.ResumeEditor, error) {
	return usecase.LoadResumeEditor(c.UserContext(), h.Resumes, h.Validate, currentUser(c).ID)
}

func paramID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.Wrapf(domain.ErrInvalid, "id %q", c.Params("id"))
	}
	return id, nil
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	e, err := h.resumeEditor(c)
	if err != nil {
		return err
	}
	return c.JSON(e.Resume())
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	var req usecase.NewSkill
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	e, err := h.resumeEditor(c)
	if err != nil {
		return err
	}
	s, err := e.AddSkill(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

func (h *Handler) UpdateSkill(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req usecase.SkillLevelUpdate
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	e, err := h.resumeEditor(c)
	if err != nil {
		return err
	}
	s, err := e.UpdateSkillLevel(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(s)
}

func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	return h.removeByID(c, (*usecase.ResumeEditor).RemoveSkill)
}

func (h *Handler) AddProject(c *fiber.Ctx) error {
	var req usecase.NewProject
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	e, err := h.resumeEditor(c)
	if err != nil {
		return err
	}
	p, err := e.AddProject(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *Handler) RemoveProject(c *fiber.Ctx) error {
	return h.removeByID(c, (*usecase.ResumeEditor).RemoveProject)
}

func (h *Handler) AddCertification(c *fiber.Ctx) error {
	var req usecase.NewCertification
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	e, err := h.resumeEditor(c)
	if err != nil {
		return err
	}
	cert, err := e.AddCertification(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(cert)
}

func (h *Handler) RemoveCertification(c *fiber.Ctx) error {
	return h.removeByID(c, (*usecase.ResumeEditor).RemoveCertification)
}

func (h *Handler) removeByID(c *fiber.Ctx, remove func(*usecase.ResumeEditor, context.Context, uuid.UUID) error) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	e, err := h.resumeEditor(c)
	if err != nil {
		return err
	}
	if err := remove(e, c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(usecase.Templates)
}

// document assembles the caller's resume document from the stored records.
func (h *Handler) document(c *fiber.Ctx, summary string) (model.Resume, domain.Profile, domain.Resume, error) {
	pe, err := h.profileEditor(c)
	if err != nil {
		return model.Resume{}, domain.Profile{}, domain.Resume{}, err
	}
	re, err := h.resumeEditor(c)
	if err != nil {
		return model.Resume{}, domain.Profile{}, domain.Resume{}, err
	}
	p, r := pe.Profile(), re.Resume()
	return usecase.BuildResume(p, r, summary), p, r, nil
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	doc, _, _, err := h.document(c, c.Query("summary"))
	if err != nil {
		return err
	}
	html, err := h.Templates.Render(c.Query("template"), doc)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *Handler) GenerateSummary(c *fiber.Ctx) error {
	_, p, r, err := h.document(c, "")
	if err != nil {
		return err
	}
	return c.JSON(h.Summary.Generate(c.UserContext(), p, r))
}

func (h *Handler) StartExport(c *fiber.Ctx) error {
	var req exportReq
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
	}
	doc, _, _, err := h.document(c, "")
	if err != nil {
		return err
	}
	job, err := h.Exports.Start(c.UserContext(), currentUser(c).ID, req.Template, doc)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(job)
}

func (h *Handler) GetExport(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	job, err := h.Exports.Get(c.UserContext(), currentUser(c).ID, id)
	if err != nil {
		return err
	}
	return c.JSON(job)
}

func (h *Handler) DownloadExport(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	job, err := h.Exports.Get(c.UserContext(), currentUser(c).ID, id)
	if err != nil {
		return err
	}
	if job.Status != domain.ExportDone {
		return fiber.NewError(fiber.StatusConflict, "The export is "+string(job.Status)+".")
	}
	return c.Download(job.FilePath, "resume-"+job.Template+".pdf")
}
