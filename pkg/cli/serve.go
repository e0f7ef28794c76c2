package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/omni-tools/dashmover/pkg/cli/config"
	controller "github.com/omni-tools/dashmover/pkg/controller/http"
	"github.com/omni-tools/dashmover/pkg/service/omni"
	"github.com/omni-tools/dashmover/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		envCfg    config.Environments
		slackCfg  config.Slack
	)

	flags := joinFlags(
		serverCfg.Flags(),
		envCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the migration HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := envCfg.LoadFile(); err != nil {
				return err
			}
			if err := envCfg.Validate(); err != nil {
				return err
			}

			logger.Info("Starting dashmover server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("environments", envCfg),
				slog.Any("slack", slackCfg),
			)

			sourceEnv, targetEnv := envCfg.Resolve()
			source := omni.New(sourceEnv, omni.WithTimeout(envCfg.HTTPTimeout))
			target := omni.New(targetEnv, omni.WithTimeout(envCfg.HTTPTimeout))

			var opts []usecase.MigrationOption
			if notifier := slackCfg.ConfigureOptional(logger); notifier != nil {
				opts = append(opts, usecase.WithNotifier(notifier))
			}
			migrator := usecase.NewMigration(source, target, targetEnv, opts...)

			server := controller.NewServer(ctx, serverCfg.Addr, migrator, sourceEnv, targetEnv)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
