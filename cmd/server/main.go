// Package main is the entry point for the project service. It wires all
// dependencies using samber/do v2, opens the repository store, starts the
// HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/project-service/internal/adapters/clients/notify"
	"github.com/jsamuelsen11/project-service/internal/adapters/events"
	adapthttp "github.com/jsamuelsen11/project-service/internal/adapters/http"
	"github.com/jsamuelsen11/project-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-service/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/project-service/internal/app"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/domain/vacancy"
	"github.com/jsamuelsen11/project-service/internal/platform/config"
	"github.com/jsamuelsen11/project-service/internal/platform/database"
	"github.com/jsamuelsen11/project-service/internal/platform/health"
	"github.com/jsamuelsen11/project-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-service/internal/platform/idgen"
	"github.com/jsamuelsen11/project-service/internal/platform/logging"
	"github.com/jsamuelsen11/project-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	notifierServiceName   = "notification-service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (local or prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(otel, logger)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	store := do.MustInvoke[*sqlstore.Store](injector)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}()

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	if cfg.Notifier.Enabled {
		registry.Register(do.MustInvoke[*notify.Client](injector))
	}

	logger.Info("project service ready",
		slog.String("profile", profile),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.Bool("notifier_enabled", cfg.Notifier.Enabled),
	)

	if err := server.Run(ctx, serverShutdownTimeout); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func flushTelemetry(otel *otelProviders, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Storage.
	do.Provide(injector, func(_ do.Injector) (*idgen.Generator, error) {
		return idgen.New(cfg.Storage.MachineID)
	})

	do.Provide(injector, func(i do.Injector) (*sqlstore.Store, error) {
		gen := do.MustInvoke[*idgen.Generator](i)
		return sqlstore.Open(ctx, database.Driver(cfg.Storage.Driver), cfg.Storage.DSN, gen)
	})

	// Events: always logged, optionally posted to the notifier.
	do.Provide(injector, func(i do.Injector) (*notify.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Notifier.Client, notifierServiceName, metrics, logger)
		return notify.New(client, cfg.Notifier.EventsPath, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EventPublisher, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		sinks := []events.Sink{events.NewLogSink(logger)}
		if cfg.Notifier.Enabled {
			sinks = append(sinks, do.MustInvoke[*notify.Client](i))
		}
		return events.NewBroadcast(metrics, logger, sinks...), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		store := do.MustInvoke[*sqlstore.Store](i)
		publisher := do.MustInvoke[ports.EventPublisher](i)
		return app.NewProjectService(store.Projects(), publisher, project.NewPipeline(), cfg.Storage.MaxCapacity, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.InvitationService, error) {
		store := do.MustInvoke[*sqlstore.Store](i)
		publisher := do.MustInvoke[ports.EventPublisher](i)
		return app.NewInvitationService(store.Invitations(), publisher, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.VacancyService, error) {
		store := do.MustInvoke[*sqlstore.Store](i)
		return app.NewVacancyService(store.Vacancies(), store.Projects(), vacancy.NewPipeline(), logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// HTTP.
	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		svc := do.MustInvoke[ports.ProjectService](i)
		vacancies := do.MustInvoke[ports.VacancyService](i)
		return handlers.NewProjectHandler(svc, vacancies), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.InvitationHandler, error) {
		svc := do.MustInvoke[ports.InvitationService](i)
		return handlers.NewInvitationHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(adapthttp.Handlers{
			Projects:    do.MustInvoke[*handlers.ProjectHandler](i),
			Invitations: do.MustInvoke[*handlers.InvitationHandler](i),
			Health:      do.MustInvoke[*handlers.HealthHandler](i),
		}, cfg.Server,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
