package config

import (
	"log/slog"

	"github.com/omni-tools/dashmover/pkg/domain/model"
	"github.com/omni-tools/dashmover/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Migration holds what to migrate for the one-shot migrate command
type Migration struct {
	DashboardID string
	ModelID     string
	FolderID    string
}

// Flags returns CLI flags for Migration configuration
func (m *Migration) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dashboard-id",
			Usage:       "ID of the dashboard to migrate from the source environment",
			Category:    "Migration",
			Sources:     cli.EnvVars("DASHMOVER_DASHBOARD_ID"),
			Destination: &m.DashboardID,
		},
		&cli.StringFlag{
			Name:        "model-id",
			Usage:       "ID of the target model the imported dashboard is attached to",
			Category:    "Migration",
			Sources:     cli.EnvVars("DASHMOVER_MODEL_ID"),
			Destination: &m.ModelID,
		},
		&cli.StringFlag{
			Name:        "folder-id",
			Usage:       "Optional destination folder for the imported document",
			Category:    "Migration",
			Sources:     cli.EnvVars("DASHMOVER_FOLDER_ID"),
			Destination: &m.FolderID,
		},
	}
}

// Request builds the migration request from the configuration
func (m *Migration) Request() *model.MigrationRequest {
	return &model.MigrationRequest{
		DashboardID: types.DashboardID(m.DashboardID),
		ModelID:     types.ModelID(m.ModelID),
		FolderID:    types.FolderID(m.FolderID),
	}
}

// LogValue returns structured log value
func (m Migration) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dashboard_id", m.DashboardID),
		slog.String("model_id", m.ModelID),
		slog.String("folder_id", m.FolderID),
	)
}
