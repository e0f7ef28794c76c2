package model

import (
	"encoding/json"
	"time"

	"github.com/omni-tools/dashmover/pkg/domain/types"
)

// ExportVersion is the fixed export format version the import endpoint
// expects in every import request.
const ExportVersion = "0.1"

// ExportPayload is the document bundle returned by the source environment's
// export endpoint. The sections are pass-through data; the orchestrator never
// looks inside them beyond these top-level keys.
type ExportPayload struct {
	Dashboard     json.RawMessage   `json:"dashboard"`
	Document      json.RawMessage   `json:"document"`
	WorkbookModel json.RawMessage   `json:"workbookModel"`
	QueryModels   []json.RawMessage `json:"queryModels,omitempty"`
}

// ImportRequest is the body of the target environment's import endpoint
type ImportRequest struct {
	BaseModelID   string            `json:"baseModelId"`
	Dashboard     json.RawMessage   `json:"dashboard"`
	Document      json.RawMessage   `json:"document"`
	WorkbookModel json.RawMessage   `json:"workbookModel"`
	QueryModels   []json.RawMessage `json:"queryModels"`
	ExportVersion string            `json:"exportVersion"`
}

// NewImportRequest reshapes an export payload into an import request for the
// given target model. A missing queryModels section becomes an empty array,
// never null.
func NewImportRequest(payload *ExportPayload, modelID types.ModelID) *ImportRequest {
	queryModels := payload.QueryModels
	if queryModels == nil {
		queryModels = []json.RawMessage{}
	}
	return &ImportRequest{
		BaseModelID:   modelID.String(),
		Dashboard:     payload.Dashboard,
		Document:      payload.Document,
		WorkbookModel: payload.WorkbookModel,
		QueryModels:   queryModels,
		ExportVersion: ExportVersion,
	}
}

// ImportResult is the response of the target environment's import endpoint
type ImportResult struct {
	Dashboard struct {
		DashboardID string `json:"dashboardId"`
	} `json:"dashboard"`
	Document struct {
		ID string `json:"id"`
	} `json:"document"`
	Workbook struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Identifier string `json:"identifier,omitempty"`
	} `json:"workbook"`
}

// MigrationOutcome is the projection of a fully successful migration
type MigrationOutcome struct {
	NewDashboardID     string `json:"newDashboardId"`
	WorkbookID         string `json:"workbookId"`
	WorkbookIdentifier string `json:"workbookIdentifier"`
	WorkbookName       string `json:"workbookName"`
	DashboardURL       string `json:"dashboardUrl"`
}

// NewMigrationOutcome projects an import result against the target
// environment. The workbook identifier falls back to the workbook ID when
// the import response omits it.
func NewMigrationOutcome(result *ImportResult, target Environment) *MigrationOutcome {
	identifier := result.Workbook.Identifier
	if identifier == "" {
		identifier = result.Workbook.ID
	}
	return &MigrationOutcome{
		NewDashboardID:     result.Dashboard.DashboardID,
		WorkbookID:         result.Workbook.ID,
		WorkbookIdentifier: identifier,
		WorkbookName:       result.Workbook.Name,
		DashboardURL:       target.DashboardURL(identifier),
	}
}

// MigrationRequest names what to migrate: one dashboard in the source
// environment, the target base model, and an optional destination folder.
type MigrationRequest struct {
	DashboardID types.DashboardID `json:"sourceDashboardId"`
	ModelID     types.ModelID     `json:"targetModelId"`
	FolderID    types.FolderID    `json:"folderId,omitempty"`
}

// Validate collects all precondition violations of the request
func (r *MigrationRequest) Validate() []string {
	var violations []string
	if r.DashboardID == "" {
		violations = append(violations, "source dashboard ID is required")
	}
	if r.ModelID == "" {
		violations = append(violations, "target model ID is required")
	}
	return violations
}

// MigrationRecord tracks one migration run across its phases. Partial results
// captured before a failure stay on the record for diagnostics; only a
// non-nil Outcome means the migration succeeded.
type MigrationRecord struct {
	ID          types.MigrationID    `json:"id"`
	DashboardID types.DashboardID    `json:"dashboardId"`
	ModelID     types.ModelID        `json:"modelId"`
	FolderID    types.FolderID       `json:"folderId,omitempty"`
	StartedAt   time.Time            `json:"startedAt"`
	Phase       types.MigrationPhase `json:"phase"`
	Export      *ExportPayload       `json:"-"`
	Import      *ImportResult        `json:"importResult,omitempty"`
	Outcome     *MigrationOutcome    `json:"outcome,omitempty"`
}

// NewMigrationRecord creates a record for a migration about to run
func NewMigrationRecord(dashboardID types.DashboardID, modelID types.ModelID, folderID types.FolderID) *MigrationRecord {
	return &MigrationRecord{
		ID:          types.NewMigrationID(),
		DashboardID: dashboardID,
		ModelID:     modelID,
		FolderID:    folderID,
		StartedAt:   time.Now(),
	}
}
