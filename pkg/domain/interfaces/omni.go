package interfaces

//go:generate moq -out mocks/omni_mock.go -pkg mocks . OmniClient Notifier

import (
	"context"
	"encoding/json"

	"github.com/omni-tools/dashmover/pkg/domain/model"
	"github.com/omni-tools/dashmover/pkg/domain/types"
)

// OmniClient is one authenticated Omni environment. Implementations hold no
// mutable cross-call state beyond the base URL and token, so distinct
// instances are safe for concurrent use.
type OmniClient interface {
	// ExportDashboard fetches the document bundle of a dashboard
	ExportDashboard(ctx context.Context, id types.DashboardID) (*model.ExportPayload, error)

	// ImportDashboard imports a document bundle against a base model
	ImportDashboard(ctx context.Context, req *model.ImportRequest) (*model.ImportResult, error)

	// MoveDocument relocates a document into a folder. The response body is
	// returned raw; callers only care about success or failure.
	MoveDocument(ctx context.Context, documentID types.DocumentID, folderID types.FolderID) (json.RawMessage, error)
}

// Notifier announces the outcome of a completed migration. Failures are
// reported, never fatal to the migration itself.
type Notifier interface {
	NotifyMigration(ctx context.Context, record *model.MigrationRecord, target model.Environment) error
}
