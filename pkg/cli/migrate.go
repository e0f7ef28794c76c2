package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/omni-tools/dashmover/pkg/cli/config"
	"github.com/omni-tools/dashmover/pkg/domain/types"
	"github.com/omni-tools/dashmover/pkg/service/omni"
	"github.com/omni-tools/dashmover/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var (
		envCfg       config.Environments
		migrationCfg config.Migration
		slackCfg     config.Slack
	)

	flags := joinFlags(
		envCfg.Flags(),
		migrationCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "migrate",
		Usage: "Migrate one dashboard from the source to the target environment",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := envCfg.LoadFile(); err != nil {
				return err
			}

			// Every precondition is checked before any network call and all
			// violations are reported together.
			req := migrationCfg.Request()
			violations := append(envCfg.Violations(), req.Validate()...)
			if len(violations) > 0 {
				return goerr.New("invalid migration configuration",
					goerr.T(types.ErrTagConfig),
					goerr.V("violations", violations))
			}

			logger.Info("Starting migration",
				slog.Any("environments", envCfg),
				slog.Any("migration", migrationCfg),
			)

			sourceEnv, targetEnv := envCfg.Resolve()
			source := omni.New(sourceEnv, omni.WithTimeout(envCfg.HTTPTimeout))
			target := omni.New(targetEnv, omni.WithTimeout(envCfg.HTTPTimeout))

			var opts []usecase.MigrationOption
			if notifier := slackCfg.ConfigureOptional(logger); notifier != nil {
				opts = append(opts, usecase.WithNotifier(notifier))
			}

			migrator := usecase.NewMigration(source, target, targetEnv, opts...)
			record, err := migrator.Run(ctx, req)
			if err != nil {
				// Partial results stay on the record for diagnosis.
				logger.Error("Migration failed",
					slog.Any("migrationID", record.ID),
					slog.Any("phase", record.Phase),
					slog.Bool("has_import_result", record.Import != nil),
				)
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(record.Outcome); err != nil {
				return goerr.Wrap(err, "failed to encode migration outcome")
			}

			return nil
		},
	}
}
