package usecase

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"career-hub/internal/domain"
	"career-hub/internal/model"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type ExportStore interface {
	// SaveExport inserts or updates the job keyed by its id.
	SaveExport(ctx context.Context, j *domain.ExportJob) error
	GetExport(ctx context.Context, userID, id uuid.UUID) (*domain.ExportJob, error)
}

// ExportProcessor turns resumes into PDF files in the background.
type ExportProcessor struct {
	renderer  Renderer
	store     ExportStore
	templates *TemplateRenderer
	outDir    string
	timeout   time.Duration

	wg sync.WaitGroup
}

func NewExportProcessor(r Renderer, store ExportStore, templates *TemplateRenderer, outDir string, timeout time.Duration) *ExportProcessor {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &ExportProcessor{renderer: r, store: store, templates: templates, outDir: outDir, timeout: timeout}
}

// Start renders doc to HTML, records a pending job and converts it to PDF in
// a background goroutine. Template and document errors are returned directly.
func (p *ExportProcessor) Start(ctx context.Context, userID uuid.UUID, template string, doc model.Resume) (*domain.ExportJob, error) {
	name, err := SelectTemplate(template)
	if err != nil {
		return nil, err
	}
	html, err := p.templates.Render(name, doc)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	job := &domain.ExportJob{
		ID:        uuid.New(),
		UserID:    userID,
		Template:  name,
		Status:    domain.ExportPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.store.SaveExport(ctx, job); err != nil {
		return nil, notify(errors.Wrap(err, "save export job"), "Error", "Failed to start export.")
	}

	// spawn background processing
	bg := *job
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		if err := p.Process(ctx, &bg, html); err != nil {
			slog.Error("export: job failed", "job_id", bg.ID, "error", err)
		}
	}()
	return job, nil
}

// Process converts html to a PDF under the export directory and records the
// outcome on job.
func (p *ExportProcessor) Process(ctx context.Context, job *domain.ExportJob, html string) error {
	p.setStatus(ctx, job, domain.ExportRunning, "")

	path, err := p.writePDF(ctx, job.ID, html)
	if err != nil {
		p.setStatus(ctx, job, domain.ExportFailed, err.Error())
		return err
	}

	job.FilePath = path
	p.setStatus(ctx, job, domain.ExportDone, "")
	slog.Info("export: job done", "job_id", job.ID, "path", path)
	return nil
}

func (p *ExportProcessor) writePDF(ctx context.Context, id uuid.UUID, html string) (string, error) {
	pdf, err := p.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return "", errors.Wrap(err, "render pdf")
	}
	if err := os.MkdirAll(p.outDir, 0o755); err != nil {
		return "", errors.Wrap(err, "create export dir")
	}
	path := filepath.Join(p.outDir, id.String()+".pdf")
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", errors.Wrap(err, "write pdf")
	}
	return path, nil
}

// setStatus persists a status change, also after ctx has expired. Store
// failures are only logged.
func (p *ExportProcessor) setStatus(ctx context.Context, job *domain.ExportJob, status domain.ExportStatus, msg string) {
	job.Status = status
	job.Error = msg
	job.UpdatedAt = time.Now().UTC()

	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := p.store.SaveExport(sctx, job); err != nil {
		slog.Warn("export: failed to save job status", "job_id", job.ID, "status", status, "error", err)
	}
}

func (p *ExportProcessor) Get(ctx context.Context, userID, id uuid.UUID) (*domain.ExportJob, error) {
	job, err := p.store.GetExport(ctx, userID, id)
	if err != nil {
		return nil, errors.Wrapf(err, "export %s", id)
	}
	return job, nil
}

// Wait blocks until all background exports have finished.
func (p *ExportProcessor) Wait() { p.wg.Wait() }
