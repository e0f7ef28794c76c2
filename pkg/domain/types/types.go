package types

import (
	"github.com/google/uuid"
)

// DashboardID identifies a dashboard within one Omni environment
type DashboardID string

// String returns the string representation
func (id DashboardID) String() string {
	return string(id)
}

// ModelID identifies a target-side base model that an imported dashboard
// is attached to via baseModelId
type ModelID string

// String returns the string representation
func (id ModelID) String() string {
	return string(id)
}

// DocumentID identifies a document within one Omni environment
type DocumentID string

// String returns the string representation
func (id DocumentID) String() string {
	return string(id)
}

// FolderID identifies a destination folder within the target environment
type FolderID string

// String returns the string representation
func (id FolderID) String() string {
	return string(id)
}

// WorkbookID identifies the workbook produced by an import
type WorkbookID string

// String returns the string representation
func (id WorkbookID) String() string {
	return string(id)
}

// MigrationID identifies one migration run
type MigrationID string

// String returns the string representation
func (id MigrationID) String() string {
	return string(id)
}

// NewMigrationID creates a new MigrationID
func NewMigrationID() MigrationID {
	return MigrationID(uuid.New().String())
}
