package model

import (
	"fmt"
	"net/url"
	"strings"
)

// Environment holds the coordinates of one Omni tenant: its base URL and an
// API token. The value is immutable once constructed; source and target of a
// migration are always distinct Environment values even when credential reuse
// makes their fields equal.
type Environment struct {
	BaseURL string
	Token   string
}

// NewEnvironment creates an Environment
func NewEnvironment(baseURL, token string) Environment {
	return Environment{
		BaseURL: baseURL,
		Token:   token,
	}
}

// ValidateBaseURL checks that a base URL is present, uses the https scheme
// and parses as a well-formed URL with a host. The returned message is meant
// for direct display to the operator.
func ValidateBaseURL(baseURL string) error {
	if baseURL == "" {
		return fmt.Errorf("URL is required")
	}
	if !strings.HasPrefix(baseURL, "https://") {
		return fmt.Errorf("URL must start with https://")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL format")
	}
	return nil
}

// DashboardURL builds the browser URL of a dashboard in this environment.
// A trailing slash on the base URL is stripped before concatenation.
func (e Environment) DashboardURL(identifier string) string {
	return fmt.Sprintf("%s/dashboards/%s", strings.TrimSuffix(e.BaseURL, "/"), identifier)
}
