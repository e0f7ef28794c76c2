package http

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/omni-tools/dashmover/pkg/domain/model"
	"github.com/omni-tools/dashmover/pkg/domain/types"
	"github.com/omni-tools/dashmover/pkg/usecase"
)

//go:embed form.html
var formPage []byte

// MigrationHandler serves the migration API and the browser form
type MigrationHandler struct {
	migrator  usecase.Migrator
	sourceEnv model.Environment
	targetEnv model.Environment
}

// NewMigrationHandler creates a new MigrationHandler
func NewMigrationHandler(migrator usecase.Migrator, sourceEnv, targetEnv model.Environment) *MigrationHandler {
	return &MigrationHandler{
		migrator:  migrator,
		sourceEnv: sourceEnv,
		targetEnv: targetEnv,
	}
}

// migrationResponse is the JSON body of a migration API response. On failure
// the record's partial results are included for diagnosis; outcome is only
// set when the whole chain succeeded.
type migrationResponse struct {
	MigrationID  types.MigrationID       `json:"migrationId"`
	Phase        types.MigrationPhase    `json:"phase,omitempty"`
	Outcome      *model.MigrationOutcome `json:"outcome,omitempty"`
	ImportResult *model.ImportResult     `json:"importResult,omitempty"`
	Error        string                  `json:"error,omitempty"`
	Violations   []string                `json:"violations,omitempty"`
}

// HandleMigrate runs one migration with the server's configured environments
func (h *MigrationHandler) HandleMigrate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	var req model.MigrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, migrationResponse{
			Error: "invalid request body: " + err.Error(),
		})
		return
	}

	record, err := h.migrator.Run(ctx, &req)
	if err != nil {
		logger.Error("Migration failed",
			"error", err,
			"migrationID", record.ID,
			"phase", record.Phase,
		)
		resp := migrationResponse{
			MigrationID:  record.ID,
			Phase:        record.Phase,
			ImportResult: record.Import,
			Error:        err.Error(),
		}

		status := http.StatusBadGateway
		if goerr.HasTag(err, types.ErrTagConfig) {
			status = http.StatusBadRequest
			if violations, ok := goerr.Values(err)["violations"].([]string); ok {
				resp.Violations = violations
			}
		}
		writeJSON(w, status, resp)
		return
	}

	writeJSON(w, http.StatusOK, migrationResponse{
		MigrationID: record.ID,
		Phase:       record.Phase,
		Outcome:     record.Outcome,
	})
}

// HandleForm serves the single-page migration form
func (h *MigrationHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(formPage); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write migration form", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
