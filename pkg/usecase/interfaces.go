package usecase

import (
	"context"

	"github.com/omni-tools/dashmover/pkg/domain/model"
)

// Migrator defines the interface for running one dashboard migration
type Migrator interface {
	// Run migrates one dashboard end-to-end. The returned record is non-nil
	// even on failure so partial results stay available for diagnostics.
	Run(ctx context.Context, req *model.MigrationRequest) (*model.MigrationRecord, error)
}
