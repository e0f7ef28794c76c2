package types

import "github.com/m-mizutani/goerr/v2"

// Error tags for failure classification. Every error leaving the service or
// usecase layer carries one of these so callers can report a failure without
// branching on error subtypes.
var (
	ErrTagConfig  = goerr.NewTag("config_error")
	ErrTagNetwork = goerr.NewTag("network_error")
	ErrTagAPI     = goerr.NewTag("api_error")
	ErrTagDecode  = goerr.NewTag("decode_error")
)

// MigrationPhase names the step of the migration chain an error belongs to
type MigrationPhase string

const (
	PhaseExport MigrationPhase = "export"
	PhaseImport MigrationPhase = "import"
	PhaseMove   MigrationPhase = "move"
)

// String returns the string representation
func (p MigrationPhase) String() string {
	return string(p)
}
