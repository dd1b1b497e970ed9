package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/gulzeynep/GiftCapsule-web/internal/adapter/mailer"
	"github.com/gulzeynep/GiftCapsule-web/internal/adapter/postgres"
	capsulerepo "github.com/gulzeynep/GiftCapsule-web/internal/adapter/postgres/capsule"
	giftrepo "github.com/gulzeynep/GiftCapsule-web/internal/adapter/postgres/gift"
	musicrepo "github.com/gulzeynep/GiftCapsule-web/internal/adapter/postgres/music"
	"github.com/gulzeynep/GiftCapsule-web/internal/config"
	"github.com/gulzeynep/GiftCapsule-web/internal/service/capsule"
	"github.com/gulzeynep/GiftCapsule-web/internal/service/gift"
	"github.com/gulzeynep/GiftCapsule-web/internal/service/music"
	"github.com/gulzeynep/GiftCapsule-web/internal/transport/middleware"
	"github.com/gulzeynep/GiftCapsule-web/internal/transport/rest"
)

// services holds the wired domain services.
type services struct {
	capsules *capsule.Service
	gifts    *gift.Service
	music    *music.Service
}

func newServices(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) services {
	clock := clockwork.NewRealClock()
	mail := mailer.New(cfg.SMTP, logger)

	return services{
		capsules: capsule.NewService(
			logger,
			capsulerepo.New(pool),
			mail,
			postgres.NewTxManager(pool),
			clock,
			capsule.Options{
				PublicBaseURL:    cfg.App.PublicBaseURL,
				SweepConcurrency: cfg.Sweep.Concurrency,
			},
		),
		gifts: gift.NewService(logger, giftrepo.New(pool), mail, clock, cfg.App.PublicBaseURL),
		music: music.NewService(logger, musicrepo.New(pool), clock),
	}
}

// NewHandler builds the HTTP handler: routes plus the middleware stack.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) http.Handler {
	svcs := newServices(cfg, logger, pool)

	router := rest.NewRouter(rest.Handlers{
		Capsule: rest.NewCapsuleHandler(svcs.capsules, logger),
		Gift:    rest.NewGiftHandler(svcs.gifts, logger),
		Music:   rest.NewMusicHandler(svcs.music, logger),
		Health:  rest.NewHealthHandler(pool, cfg.SMTP.HasCredentials(), BuildVersion()),
	})

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(router)
}

// Run serves the API until ctx is cancelled, then shuts the server down
// gracefully within server.shutdown_timeout.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if _, err := Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	if !cfg.SMTP.HasCredentials() {
		logger.Warn("smtp credentials not set, emails will be reported as failed",
			slog.String("host", cfg.SMTP.Host),
		)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, pool),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// Sweep runs one check-and-send pass outside the HTTP server.
func Sweep(ctx context.Context, cfg *config.Config, logger *slog.Logger) (capsule.SweepResult, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return capsule.SweepResult{}, fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return newServices(cfg, logger, pool).capsules.Sweep(ctx)
}

// Migrate applies every pending migration on dsn and returns how many ran.
func Migrate(ctx context.Context, dsn string, logger *slog.Logger) (int, error) {
	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return 0, fmt.Errorf("open migrator: %w", err)
	}
	defer m.Close()

	n, err := m.Up(ctx)
	if err != nil {
		return n, err
	}

	logger.Info("migrations applied", slog.Int("count", n))
	return n, nil
}
