package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"

	httpadapter "career-hub/internal/adapter/http"
	repo "career-hub/internal/adapter/repository"
	"career-hub/internal/auth"
	"career-hub/internal/config"
	"career-hub/internal/infrastructure/migration"
	"career-hub/internal/model"
	"career-hub/internal/usecase"
	"career-hub/pkg/ai"
	infra "career-hub/pkg/infrastructure"
)

func main() {
	cfg, err := config.Load("config")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// infra setup
	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Warn("database not available, data routes will answer 503", "error", err)
		pool = nil
	} else if err := migration.RunMigrations(ctx, pool); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var rdb *redis.Client
	var states auth.StateStore = auth.NewMemoryStateStore()
	if cfg.RedisURL != "" {
		if rdb, err = infra.NewRedis(ctx, cfg.RedisURL); err != nil {
			slog.Warn("redis not available, keeping login state in memory", "error", err)
			rdb = nil
		} else {
			states = auth.NewRedisStateStore(rdb)
		}
	}

	authSvc := auth.NewService(
		auth.NewIdentityClient(cfg.IdentityURL, cfg.IdentityAnonKey),
		states,
		auth.NewVerifier(cfg.JWTSecret),
		cfg.SiteURL+"/api/auth/callback",
	)

	profiles := repo.NewProfilesRepo(pool)
	resumes := repo.NewResumeRepo(pool)

	templates, err := usecase.NewTemplateRenderer()
	if err != nil {
		slog.Error("failed to parse resume templates", "error", err)
		os.Exit(1)
	}
	renderer := infra.NewChromedpRenderer(cfg.ChromePath, cfg.ExportTimeout)
	exports := usecase.NewExportProcessor(renderer, repo.NewExportsRepo(pool), templates, cfg.ExportDir, cfg.ExportTimeout)

	aiClient := ai.NewClient(cfg.AIServiceURL, cfg.AILanguage)
	var formatter ai.Formatter
	if aiClient.Enabled() {
		formatter = aiClient.NewSummaryFormatter()
	} else {
		slog.Info("AI_SERVICE_URL not set, summaries are composed locally")
	}

	validate, trans := model.NewValidator()
	h := httpadapter.NewHandler(httpadapter.Deps{
		Auth:       authSvc,
		Profiles:   profiles,
		Resumes:    resumes,
		Timetable:  usecase.NewSampleTimetable(),
		Dashboard:  usecase.NewDashboard(profiles, resumes),
		Templates:  templates,
		Exports:    exports,
		Summary:    usecase.NewSummaryService(formatter),
		Validate:   validate,
		Translator: trans,
	})
	app := httpadapter.NewApp(h)

	go func() {
		slog.Info("server listening", "port", cfg.Port, "env", cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil {
		slog.Warn("server shutdown", "error", err)
	}
	exports.Wait()
	closeInfra(pool, rdb)
}

func setupLogger(debug bool) {
	var handler slog.Handler
	if debug {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))
}

func closeInfra(pool *pgxpool.Pool, rdb *redis.Client) {
	if pool != nil {
		pool.Close()
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			slog.Warn("redis close", "error", err)
		}
	}
}
