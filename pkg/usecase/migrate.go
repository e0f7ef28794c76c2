package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/omni-tools/dashmover/pkg/domain/interfaces"
	"github.com/omni-tools/dashmover/pkg/domain/model"
	"github.com/omni-tools/dashmover/pkg/domain/types"
)

// Migration runs one dashboard migration end-to-end: export from the source
// environment, import into the target, and an optional move into a folder.
// The steps are strictly sequential and any failure aborts the remaining
// steps. No compensating write happens on partial failure; the upstream API
// exposes no rollback endpoint, so a document imported before a failed move
// stays in place and is reported via the record.
type Migration struct {
	source    interfaces.OmniClient
	target    interfaces.OmniClient
	targetEnv model.Environment
	notifier  interfaces.Notifier
}

// MigrationOption is a functional option for configuring Migration
type MigrationOption func(*Migration)

// WithNotifier sets a notifier called after a fully successful migration.
// Notification failures are logged, never fatal.
func WithNotifier(notifier interfaces.Notifier) MigrationOption {
	return func(m *Migration) {
		m.notifier = notifier
	}
}

// NewMigration creates a Migration. The source client must never be the
// client used for import; callers construct two instances even when the two
// environments share credentials.
func NewMigration(source, target interfaces.OmniClient, targetEnv model.Environment, opts ...MigrationOption) *Migration {
	m := &Migration{
		source:    source,
		target:    target,
		targetEnv: targetEnv,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run migrates one dashboard. The returned record is non-nil even on
// failure; whatever was obtained before the failing step stays on it.
func (m *Migration) Run(ctx context.Context, req *model.MigrationRequest) (*model.MigrationRecord, error) {
	record := model.NewMigrationRecord(req.DashboardID, req.ModelID, req.FolderID)
	logger := ctxlog.From(ctx).With(slog.Any("migrationID", record.ID))

	if violations := req.Validate(); len(violations) > 0 {
		return record, goerr.New("invalid migration request",
			goerr.T(types.ErrTagConfig),
			goerr.V("violations", violations))
	}

	record.Phase = types.PhaseExport
	logger.Info("Exporting dashboard from source environment",
		slog.Any("dashboardID", req.DashboardID))
	exportData, err := m.source.ExportDashboard(ctx, req.DashboardID)
	if err != nil {
		return record, goerr.Wrap(err, "failed to export dashboard from source",
			goerr.V("phase", types.PhaseExport),
			goerr.V("dashboardID", req.DashboardID))
	}
	record.Export = exportData

	record.Phase = types.PhaseImport
	importReq := model.NewImportRequest(exportData, req.ModelID)
	logger.Info("Importing dashboard into target environment",
		slog.Any("modelID", req.ModelID))
	importResult, err := m.target.ImportDashboard(ctx, importReq)
	if err != nil {
		return record, goerr.Wrap(err, "failed to import dashboard into target",
			goerr.V("phase", types.PhaseImport),
			goerr.V("modelID", req.ModelID))
	}
	record.Import = importResult

	if req.FolderID != "" {
		record.Phase = types.PhaseMove
		logger.Info("Moving imported document to folder",
			slog.String("documentID", importResult.Document.ID),
			slog.Any("folderID", req.FolderID))
		documentID := types.DocumentID(importResult.Document.ID)
		if _, err := m.target.MoveDocument(ctx, documentID, req.FolderID); err != nil {
			return record, goerr.Wrap(err, "failed to move imported document",
				goerr.V("phase", types.PhaseMove),
				goerr.V("documentID", documentID),
				goerr.V("folderID", req.FolderID))
		}
	}

	record.Outcome = model.NewMigrationOutcome(importResult, m.targetEnv)
	logger.Info("Migration completed",
		slog.String("dashboardURL", record.Outcome.DashboardURL),
		slog.String("workbookName", record.Outcome.WorkbookName))

	if m.notifier != nil {
		if err := m.notifier.NotifyMigration(ctx, record, m.targetEnv); err != nil {
			logger.Warn("Failed to notify migration completion", slog.Any("error", err))
		}
	}

	return record, nil
}
