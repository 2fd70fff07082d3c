package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/edgeskills/edge-backend/internal/adapter/mailer"
	"github.com/edgeskills/edge-backend/internal/adapter/postgres"
	"github.com/edgeskills/edge-backend/internal/adapter/postgres/authz"
	"github.com/edgeskills/edge-backend/internal/adapter/postgres/award"
	"github.com/edgeskills/edge-backend/internal/adapter/postgres/catalog"
	"github.com/edgeskills/edge-backend/internal/adapter/postgres/enrolment"
	"github.com/edgeskills/edge-backend/internal/adapter/postgres/entry"
	"github.com/edgeskills/edge-backend/internal/adapter/postgres/user"
	"github.com/edgeskills/edge-backend/internal/auth"
	"github.com/edgeskills/edge-backend/internal/config"
	"github.com/edgeskills/edge-backend/internal/i18n"
	"github.com/edgeskills/edge-backend/internal/service/activity"
	"github.com/edgeskills/edge-backend/internal/service/attribute"
	"github.com/edgeskills/edge-backend/internal/service/journal"
	"github.com/edgeskills/edge-backend/internal/service/submission"
	"github.com/edgeskills/edge-backend/internal/transport/middleware"
	"github.com/edgeskills/edge-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// repositories, services, and HTTP transport, and serves until the process
// receives an interrupt, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	// Repositories
	catalogRepo := catalog.New(pool)
	entryRepo := entry.New(pool)
	awardRepo := award.New(pool)
	enrolmentRepo := enrolment.New(pool)
	userRepo := user.New(pool)
	authzRepo := authz.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Outbound adapters
	smtp, err := mailer.New(cfg.Mail)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	messages := i18n.NewCatalog()
	validator := auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	// Services
	attributeSvc := attribute.NewService(logger, catalogRepo, entryRepo, authzRepo)
	activitySvc := activity.NewService(logger, catalogRepo, enrolmentRepo, authzRepo)
	journalSvc := journal.NewService(logger, entryRepo, catalogRepo, authzRepo)
	submissionSvc := submission.NewService(logger, entryRepo, awardRepo, userRepo,
		authzRepo, smtp, txManager, messages, cfg.Award)

	// HTTP transport
	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Attributes: rest.NewAttributeHandler(attributeSvc),
		Activities: rest.NewActivityHandler(activitySvc),
		Entries:    rest.NewEntryHandler(journalSvc, submissionSvc),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Global: middleware.Chain(
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			limiter.Limit(cfg.Server.RateLimit),
			middleware.Auth(validator),
		),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
