package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/omni-tools/dashmover/pkg/domain/model"
	"github.com/omni-tools/dashmover/pkg/domain/types"
)

func TestNewImportRequest(t *testing.T) {
	t.Run("Missing queryModels becomes empty array", func(t *testing.T) {
		payload := &model.ExportPayload{
			Dashboard:     json.RawMessage(`{"title":"Revenue"}`),
			Document:      json.RawMessage(`{"id":"doc-1"}`),
			WorkbookModel: json.RawMessage(`{"tables":[]}`),
		}

		req := model.NewImportRequest(payload, types.ModelID("model-1"))

		gt.Equal(t, req.BaseModelID, "model-1")
		gt.Equal(t, req.ExportVersion, "0.1")
		gt.NotNil(t, req.QueryModels)
		gt.Equal(t, len(req.QueryModels), 0)

		// The wire form must carry [] rather than null
		encoded, err := json.Marshal(req)
		gt.NoError(t, err)
		gt.True(t, json.Valid(encoded))
		var decoded map[string]json.RawMessage
		gt.NoError(t, json.Unmarshal(encoded, &decoded))
		gt.Equal(t, string(decoded["queryModels"]), "[]")
	})

	t.Run("Existing queryModels pass through", func(t *testing.T) {
		payload := &model.ExportPayload{
			Dashboard:     json.RawMessage(`{}`),
			Document:      json.RawMessage(`{}`),
			WorkbookModel: json.RawMessage(`{}`),
			QueryModels:   []json.RawMessage{json.RawMessage(`{"q":1}`)},
		}

		req := model.NewImportRequest(payload, types.ModelID("model-1"))
		gt.Equal(t, len(req.QueryModels), 1)
		gt.Equal(t, string(req.QueryModels[0]), `{"q":1}`)
	})
}

func TestNewMigrationOutcome(t *testing.T) {
	target := model.NewEnvironment("https://target.omniapp.co/", "token")

	importResult := func(identifier string) *model.ImportResult {
		var result model.ImportResult
		result.Dashboard.DashboardID = "d1"
		result.Document.ID = "doc1"
		result.Workbook.ID = "w1"
		result.Workbook.Name = "N"
		result.Workbook.Identifier = identifier
		return &result
	}

	t.Run("Identifier falls back to workbook ID", func(t *testing.T) {
		outcome := model.NewMigrationOutcome(importResult(""), target)

		gt.Equal(t, outcome.NewDashboardID, "d1")
		gt.Equal(t, outcome.WorkbookID, "w1")
		gt.Equal(t, outcome.WorkbookIdentifier, "w1")
		gt.Equal(t, outcome.WorkbookName, "N")
		gt.Equal(t, outcome.DashboardURL, "https://target.omniapp.co/dashboards/w1")
	})

	t.Run("Explicit identifier wins", func(t *testing.T) {
		outcome := model.NewMigrationOutcome(importResult("w1-ident"), target)

		gt.Equal(t, outcome.WorkbookIdentifier, "w1-ident")
		gt.Equal(t, outcome.DashboardURL, "https://target.omniapp.co/dashboards/w1-ident")
	})
}

func TestMigrationRequestValidate(t *testing.T) {
	t.Run("Complete request has no violations", func(t *testing.T) {
		req := &model.MigrationRequest{
			DashboardID: "dash-1",
			ModelID:     "model-1",
		}
		gt.Equal(t, len(req.Validate()), 0)
	})

	t.Run("One violation per missing field", func(t *testing.T) {
		req := &model.MigrationRequest{}
		gt.Equal(t, len(req.Validate()), 2)
	})
}
