package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swipe_server/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

type config struct {
	port            string
	allowedOrigins  []string
	logLevel        string
	dev             bool
	seedFile        string
	shutdownTimeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config{}

	cmd := &cobra.Command{
		Use:          "swipe_server",
		Short:        "In-memory profile discovery and mutual matching API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cfg.logLevel, cfg.dev)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, logger)
		},
	}

	defaultPort := os.Getenv("PORT")
	if defaultPort == "" {
		defaultPort = "8080"
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.port, "port", defaultPort, "HTTP listen port (env PORT)")
	flags.StringSliceVar(&cfg.allowedOrigins, "allowed-origins", []string{"*"}, "CORS allowed origins")
	flags.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.BoolVar(&cfg.dev, "dev", false, "human-readable development logging")
	flags.StringVar(&cfg.seedFile, "seed-file", "", "YAML file of profiles to load at startup")
	flags.DurationVar(&cfg.shutdownTimeout, "shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	return cmd
}

func newLogger(level string, dev bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	if dev {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	app := NewApp(logger)

	if cfg.seedFile != "" {
		seeded, err := services.LoadSeedFile(cfg.seedFile, app.Profiles)
		if err != nil {
			return fmt.Errorf("seed %s: %w", cfg.seedFile, err)
		}
		logger.Info("profiles seeded", zap.String("file", cfg.seedFile), zap.Int("count", len(seeded)))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.port,
		Handler:           app.Handler(cfg.allowedOrigins, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("socket server started")
		err := app.Hub.Serve()
		if ctx.Err() != nil {
			return nil
		}
		return err
	})

	g.Go(func() error {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if cerr := app.Hub.Close(); cerr != nil && err == nil {
			err = cerr
		}
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
