package http

import (
	"context"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"career-hub/internal/auth"
	"career-hub/internal/usecase"
)

// Authenticator runs the login flow and verifies bearer tokens.
type Authenticator interface {
	BeginLogin(ctx context.Context, provider string) (string, error)
	CompleteLogin(ctx context.Context, code, state string) (*auth.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	Verify(token string) (*auth.User, error)
}

type Deps struct {
	Auth       Authenticator
	Profiles   usecase.ProfileStore
	Resumes    usecase.ResumeStore
	Timetable  *usecase.Timetable
	Dashboard  *usecase.Dashboard
	Templates  *usecase.TemplateRenderer
	Exports    *usecase.ExportProcessor
	Summary    *usecase.SummaryService
	Validate   *validator.Validate
	Translator ut.Translator
}

type Handler struct {
	Deps
}

func NewHandler(d Deps) *Handler {
	return &Handler{Deps: d}
}

// NewApp builds the fiber application with middleware, the error handler and
// all routes registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "career-hub",
		ErrorHandler: ErrorHandler(h.Translator),
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	h.Register(app)
	return app
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Get("/session", h.OptionalUser, h.Session)
	authGroup.Get("/callback", h.Callback)
	authGroup.Post("/logout", h.Logout)
	authGroup.Get("/:provider/login", h.Login)

	tt := api.Group("/timetable")
	tt.Get("/", h.Schedule)
	tt.Get("/periods", h.Periods)
	tt.Get("/recommendations", h.PeriodRecommendations)
	tt.Post("/recommendations", h.ScheduleRecommendations)
	tt.Get("/certifications", h.PeriodCertifications)
	tt.Post("/certifications", h.SubjectCertifications)

	api.Get("/dashboard", h.RequireUser, h.GetDashboard)

	profile := api.Group("/profile", h.RequireUser)
	profile.Get("/", h.GetProfile)
	profile.Put("/", h.SaveProfile)
	profile.Post("/skills", h.AddProfileSkill)
	profile.Delete("/skills/:name", h.RemoveProfileSkill)

	resume := api.Group("/resume", h.RequireUser)
	resume.Get("/", h.GetResume)
	resume.Post("/skills", h.AddSkill)
	resume.Patch("/skills/:id", h.UpdateSkill)
	resume.Delete("/skills/:id", h.RemoveSkill)
	resume.Post("/projects", h.AddProject)
	resume.Delete("/projects/:id", h.RemoveProject)
	resume.Post("/certifications", h.AddCertification)
	resume.Delete("/certifications/:id", h.RemoveCertification)
	resume.Get("/templates", h.ListTemplates)
	resume.Get("/preview", h.Preview)
	resume.Post("/generate", h.GenerateSummary)
	resume.Post("/exports", h.StartExport)
	resume.Get("/exports/:id", h.GetExport)
	resume.Get("/exports/:id/pdf", h.DownloadExport)
}
