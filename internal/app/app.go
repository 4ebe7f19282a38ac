package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brandbrain/metrics-pipeline/internal/aggregator"
	"github.com/brandbrain/metrics-pipeline/internal/aggregator/aggregatorimpl"
	"github.com/brandbrain/metrics-pipeline/internal/collector"
	"github.com/brandbrain/metrics-pipeline/internal/collector/collectorimpl"
	"github.com/brandbrain/metrics-pipeline/internal/learning"
	"github.com/brandbrain/metrics-pipeline/internal/learning/learningimpl"
	"github.com/brandbrain/metrics-pipeline/internal/llm"
	"github.com/brandbrain/metrics-pipeline/internal/llm/openai"
	_ "github.com/brandbrain/metrics-pipeline/internal/migrations"
	"github.com/brandbrain/metrics-pipeline/internal/platform"
	"github.com/brandbrain/metrics-pipeline/internal/platform/apiadapter"
	"github.com/brandbrain/metrics-pipeline/internal/ratelimit"
	repositories "github.com/brandbrain/metrics-pipeline/internal/repositories/fx"
	"github.com/brandbrain/metrics-pipeline/pkg/config"
	"github.com/brandbrain/metrics-pipeline/pkg/logger"
	"github.com/brandbrain/metrics-pipeline/pkg/pgx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var App = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		fx.Annotate(
			apiadapter.New,
			fx.As(new(platform.Registry)),
		),
		fx.Annotate(
			func(cfg *config.Config) *ratelimit.PlatformPacer {
				return ratelimit.NewPlatformPacer(cfg.Collector.CallDelay)
			},
			fx.As(new(ratelimit.Pacer)),
		),
		fx.Annotate(
			openai.New,
			fx.As(new(llm.Client)),
		),
		fx.Annotate(
			aggregatorimpl.New,
			fx.As(new(aggregator.Client)),
		),
		fx.Annotate(
			collectorimpl.New,
			fx.As(new(collector.Client)),
		),
		fx.Annotate(
			learningimpl.New,
			fx.As(new(learning.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(
		func(c *config.Config) error {
			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}

			db, err := sql.Open("postgres",
				fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s ",
					c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
				),
			)
			if err != nil {
				return err
			}
			defer db.Close()

			return goose.Up(db, ".")
		}),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config,
	collectClient collector.Client, learnClient learning.Client) {
	appCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, cfg, collectClient, learnClient)

			if err := collectClient.ScheduleCollection(appCtx); err != nil {
				log.Error("Failed to schedule metric collection", "error", err)
				return err
			}

			if err := collectClient.ScheduleDatabaseCleanup(appCtx); err != nil {
				log.Error("Failed to schedule snapshot cleanup", "error", err)
				return err
			}

			if err := learnClient.ScheduleGeneration(appCtx); err != nil {
				log.Error("Failed to schedule learning generation", "error", err)
				return err
			}

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config,
	collectClient collector.Client, learnClient learning.Client) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	http.HandleFunc("/jobs/collect", func(w http.ResponseWriter, r *http.Request) {
		jobHandler(w, r, log, func(ctx context.Context) (any, error) {
			return collectClient.CollectAll(ctx)
		})
	})

	http.HandleFunc("/jobs/learnings", func(w http.ResponseWriter, r *http.Request) {
		jobHandler(w, r, log, func(ctx context.Context) (any, error) {
			return learnClient.ProcessAll(ctx)
		})
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Debug("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func jobHandler(w http.ResponseWriter, r *http.Request, log logger.Logger, job func(ctx context.Context) (any, error)) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	log.Info("Manual job trigger received", "path", r.URL.Path)

	summary, err := job(r.Context())
	if err != nil {
		log.Error("Manual job failed", "path", r.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		log.Error("Failed to write job summary", "error", err)
	}
}
