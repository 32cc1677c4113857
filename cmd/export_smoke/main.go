// Command export_smoke runs the summary and PDF export pipeline end to end
// against a mock AI service, a local Chrome and an in-memory job store.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"career-hub/internal/domain"
	"career-hub/internal/usecase"
	"career-hub/pkg/ai"
	"career-hub/pkg/infrastructure"
)

func startMockAI(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Input == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		summary, _ := json.Marshal(map[string]string{
			"summary": "Computer Science student who ships reliable Go services and enjoys turning course projects into tools other students use.",
		})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"agent": "mock", "output": string(summary)})
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("mock ai server failed", "error", err)
			os.Exit(1)
		}
	}()
	return srv
}

// memoryExports keeps export jobs for the lifetime of the process.
type memoryExports struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]domain.ExportJob
}

func (m *memoryExports) SaveExport(ctx context.Context, j *domain.ExportJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[j.ID] = *j
	return nil
}

func (m *memoryExports) GetExport(ctx context.Context, userID, id uuid.UUID) (*domain.ExportJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok || j.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &j, nil
}

func sampleData(userID uuid.UUID) (domain.Profile, domain.Resume) {
	p := domain.Profile{
		UserID:     userID,
		FirstName:  "Test",
		LastName:   "User",
		Location:   "Lisbon",
		Course:     "Computer Science",
		Bio:        "Enjoys distributed systems and teaching.",
		Skills:     []string{"Go", "PostgreSQL"},
		Occupation: "Software Engineering Intern",
	}
	r := domain.Resume{
		Skills: []domain.Skill{
			{ID: uuid.New(), UserID: userID, Name: "Go", Level: domain.SkillAdvanced},
			{ID: uuid.New(), UserID: userID, Name: "PostgreSQL", Level: domain.SkillIntermediate},
		},
		Projects: []domain.Project{{
			ID: uuid.New(), UserID: userID, Title: "Timetable Planner",
			Description:  "Weekly planner that suggests study windows from the class schedule.",
			Technologies: []string{"Go", "React"},
		}},
		Certifications: []domain.Certification{{
			ID: uuid.New(), UserID: userID, Name: "CCNA", Issuer: "Cisco", Date: "2024-02",
			URL: "https://www.cisco.com/site/us/en/learn/training-certifications/certifications/enterprise/ccna/index.html",
		}},
	}
	return p, r
}

func main() {
	addr := flag.String("ai-addr", "127.0.0.1:8000", "listen address of the mock AI service")
	tpl := flag.String("template", usecase.DefaultTemplate, "resume template")
	out := flag.String("out", "resume-data/smoke", "export directory")
	chrome := flag.String("chrome", "", "path to the Chrome executable")
	flag.Parse()

	srv := startMockAI(*addr)
	defer srv.Shutdown(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID := uuid.New()
	profile, resume := sampleData(userID)

	client := ai.NewClient("http://"+*addr, "english")
	summary := usecase.NewSummaryService(client.NewSummaryFormatter()).Generate(ctx, profile, resume)
	slog.Info("summary generated", "source", summary.Source)

	templates, err := usecase.NewTemplateRenderer()
	if err != nil {
		slog.Error("parse templates", "error", err)
		os.Exit(1)
	}
	store := &memoryExports{jobs: map[uuid.UUID]domain.ExportJob{}}
	exports := usecase.NewExportProcessor(infrastructure.NewChromedpRenderer(*chrome, 20*time.Second), store, templates, *out, 25*time.Second)

	job, err := exports.Start(ctx, userID, *tpl, usecase.BuildResume(profile, resume, summary.Summary))
	if err != nil {
		slog.Error("start export", "error", err)
		os.Exit(1)
	}
	exports.Wait()

	job, err = exports.Get(ctx, userID, job.ID)
	if err != nil {
		slog.Error("load export", "error", err)
		os.Exit(1)
	}
	if job.Status != domain.ExportDone {
		slog.Error("export did not finish", "status", job.Status, "error", job.Error)
		os.Exit(1)
	}
	slog.Info("export done", "path", job.FilePath)
}
