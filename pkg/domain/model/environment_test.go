package model_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/omni-tools/dashmover/pkg/domain/model"
)

func TestValidateBaseURL(t *testing.T) {
	t.Run("Valid https URL", func(t *testing.T) {
		gt.NoError(t, model.ValidateBaseURL("https://source-company.omniapp.co"))
	})

	t.Run("Valid https URL with path", func(t *testing.T) {
		gt.NoError(t, model.ValidateBaseURL("https://omni.example.com/"))
	})

	t.Run("Empty URL", func(t *testing.T) {
		err := model.ValidateBaseURL("")
		gt.Error(t, err)
		gt.Equal(t, err.Error(), "URL is required")
	})

	t.Run("HTTP scheme is rejected with scheme message", func(t *testing.T) {
		err := model.ValidateBaseURL("http://omni.example.com")
		gt.Error(t, err)
		gt.True(t, strings.Contains(err.Error(), "https://"))
	})

	t.Run("Missing scheme prefix", func(t *testing.T) {
		err := model.ValidateBaseURL("omni.example.com")
		gt.Error(t, err)
		gt.True(t, strings.Contains(err.Error(), "https://"))
	})

	t.Run("Malformed URL with https prefix", func(t *testing.T) {
		err := model.ValidateBaseURL("https://")
		gt.Error(t, err)
		gt.Equal(t, err.Error(), "invalid URL format")
	})
}

func TestDashboardURL(t *testing.T) {
	t.Run("Plain base URL", func(t *testing.T) {
		env := model.NewEnvironment("https://target.omniapp.co", "token")
		gt.Equal(t, env.DashboardURL("wb-1"), "https://target.omniapp.co/dashboards/wb-1")
	})

	t.Run("Trailing slash is stripped", func(t *testing.T) {
		env := model.NewEnvironment("https://target.omniapp.co/", "token")
		gt.Equal(t, env.DashboardURL("wb-1"), "https://target.omniapp.co/dashboards/wb-1")
	})
}
