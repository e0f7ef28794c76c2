package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/omni-tools/dashmover/pkg/domain/types"
)

func TestNewMigrationID(t *testing.T) {
	id1 := types.NewMigrationID()
	id2 := types.NewMigrationID()

	gt.True(t, id1 != "")
	gt.True(t, id1 != id2)
}

func TestMigrationPhaseString(t *testing.T) {
	gt.Equal(t, types.PhaseExport.String(), "export")
	gt.Equal(t, types.PhaseImport.String(), "import")
	gt.Equal(t, types.PhaseMove.String(), "move")
}
