package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	controller "github.com/omni-tools/dashmover/pkg/controller/http"
	"github.com/omni-tools/dashmover/pkg/domain/model"
	"github.com/omni-tools/dashmover/pkg/domain/types"
)

// migratorStub implements usecase.Migrator for handler tests
type migratorStub struct {
	runFunc func(ctx context.Context, req *model.MigrationRequest) (*model.MigrationRecord, error)
	calls   int
}

func (s *migratorStub) Run(ctx context.Context, req *model.MigrationRequest) (*model.MigrationRecord, error) {
	s.calls++
	return s.runFunc(ctx, req)
}

func newTestServer(migrator *migratorStub) *controller.Server {
	sourceEnv := model.NewEnvironment("https://source.omniapp.co", "src-token")
	targetEnv := model.NewEnvironment("https://target.omniapp.co", "tgt-token")
	return controller.NewServer(context.Background(), "localhost:0", migrator, sourceEnv, targetEnv)
}

func successRecord(req *model.MigrationRequest) *model.MigrationRecord {
	record := model.NewMigrationRecord(req.DashboardID, req.ModelID, req.FolderID)
	var importResult model.ImportResult
	importResult.Dashboard.DashboardID = "d1"
	importResult.Document.ID = "doc1"
	importResult.Workbook.ID = "w1"
	importResult.Workbook.Name = "N"
	record.Import = &importResult
	record.Outcome = model.NewMigrationOutcome(&importResult,
		model.NewEnvironment("https://target.omniapp.co", "tgt-token"))
	return record
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(&migratorStub{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	gt.Equal(t, rec.Code, http.StatusOK)
	var body map[string]string
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	gt.Equal(t, body["status"], "healthy")
}

func TestHandleForm(t *testing.T) {
	server := newTestServer(&migratorStub{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	gt.Equal(t, rec.Code, http.StatusOK)
	gt.True(t, strings.Contains(rec.Header().Get("Content-Type"), "text/html"))
	gt.True(t, strings.Contains(rec.Body.String(), "/api/migrations"))
}

func TestHandleMigrate(t *testing.T) {
	postMigration := func(server *controller.Server, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/migrations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Successful migration returns the outcome", func(t *testing.T) {
		migrator := &migratorStub{
			runFunc: func(ctx context.Context, req *model.MigrationRequest) (*model.MigrationRecord, error) {
				gt.Equal(t, req.DashboardID, types.DashboardID("dash-1"))
				gt.Equal(t, req.ModelID, types.ModelID("model-1"))
				return successRecord(req), nil
			},
		}
		server := newTestServer(migrator)

		rec := postMigration(server, `{"sourceDashboardId": "dash-1", "targetModelId": "model-1"}`)
		gt.Equal(t, rec.Code, http.StatusOK)

		var body struct {
			Outcome *model.MigrationOutcome `json:"outcome"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.NotNil(t, body.Outcome)
		gt.Equal(t, body.Outcome.NewDashboardID, "d1")
		gt.Equal(t, body.Outcome.DashboardURL, "https://target.omniapp.co/dashboards/w1")
	})

	t.Run("Validation failure is a 400 with violations", func(t *testing.T) {
		migrator := &migratorStub{
			runFunc: func(ctx context.Context, req *model.MigrationRequest) (*model.MigrationRecord, error) {
				record := model.NewMigrationRecord(req.DashboardID, req.ModelID, req.FolderID)
				return record, goerr.New("invalid migration request",
					goerr.T(types.ErrTagConfig),
					goerr.V("violations", []string{
						"source dashboard ID is required",
						"target model ID is required",
					}))
			},
		}
		server := newTestServer(migrator)

		rec := postMigration(server, `{}`)
		gt.Equal(t, rec.Code, http.StatusBadRequest)

		var body struct {
			Violations []string `json:"violations"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.Equal(t, len(body.Violations), 2)
	})

	t.Run("Upstream failure is a 502 keeping partial results", func(t *testing.T) {
		migrator := &migratorStub{
			runFunc: func(ctx context.Context, req *model.MigrationRequest) (*model.MigrationRecord, error) {
				record := successRecord(req)
				record.Outcome = nil
				record.Phase = types.PhaseMove
				return record, goerr.New("API error: folder not found",
					goerr.T(types.ErrTagAPI))
			},
		}
		server := newTestServer(migrator)

		rec := postMigration(server, `{"sourceDashboardId": "dash-1", "targetModelId": "model-1", "folderId": "folder-9"}`)
		gt.Equal(t, rec.Code, http.StatusBadGateway)

		var body struct {
			Error        string                  `json:"error"`
			Phase        string                  `json:"phase"`
			ImportResult *model.ImportResult     `json:"importResult"`
			Outcome      *model.MigrationOutcome `json:"outcome"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.True(t, strings.Contains(body.Error, "folder not found"))
		gt.Equal(t, body.Phase, "move")
		gt.NotNil(t, body.ImportResult)
		gt.Nil(t, body.Outcome)
	})

	t.Run("Malformed body never reaches the migrator", func(t *testing.T) {
		migrator := &migratorStub{
			runFunc: func(ctx context.Context, req *model.MigrationRequest) (*model.MigrationRecord, error) {
				t.Fatal("migrator must not be called")
				return nil, nil
			},
		}
		server := newTestServer(migrator)

		rec := postMigration(server, `{not json`)
		gt.Equal(t, rec.Code, http.StatusBadRequest)
		gt.Equal(t, migrator.calls, 0)
	})
}
