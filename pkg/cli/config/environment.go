package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/omni-tools/dashmover/pkg/domain/model"
	"github.com/omni-tools/dashmover/pkg/domain/types"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Environments holds the source and target environment configuration of a
// migration. Values come from flags, environment variables, or an optional
// YAML file; explicit flags win over the file.
type Environments struct {
	SourceURL        string
	SourceToken      string
	TargetURL        string
	TargetToken      string
	ReuseCredentials bool
	HTTPTimeout      time.Duration
	ConfigFile       string
}

// environmentsFile is the YAML shape of the optional config file
type environmentsFile struct {
	Source struct {
		URL   string `yaml:"url"`
		Token string `yaml:"token"`
	} `yaml:"source"`
	Target struct {
		URL   string `yaml:"url"`
		Token string `yaml:"token"`
	} `yaml:"target"`
	ReuseCredentials bool `yaml:"reuse_credentials"`
}

// Flags returns CLI flags for Environments configuration
func (e *Environments) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "source-url",
			Usage:       "Source Omni base URL (must start with https://)",
			Category:    "Environments",
			Sources:     cli.EnvVars("DASHMOVER_SOURCE_URL", "SOURCE_OMNI_URL"),
			Destination: &e.SourceURL,
		},
		&cli.StringFlag{
			Name:        "source-token",
			Usage:       "API token for the source environment",
			Category:    "Environments",
			Sources:     cli.EnvVars("DASHMOVER_SOURCE_TOKEN", "SOURCE_OMNI_API_TOKEN"),
			Destination: &e.SourceToken,
		},
		&cli.StringFlag{
			Name:        "target-url",
			Usage:       "Target Omni base URL (must start with https://)",
			Category:    "Environments",
			Sources:     cli.EnvVars("DASHMOVER_TARGET_URL", "TARGET_OMNI_URL"),
			Destination: &e.TargetURL,
		},
		&cli.StringFlag{
			Name:        "target-token",
			Usage:       "API token for the target environment",
			Category:    "Environments",
			Sources:     cli.EnvVars("DASHMOVER_TARGET_TOKEN", "TARGET_OMNI_API_TOKEN"),
			Destination: &e.TargetToken,
		},
		&cli.BoolFlag{
			Name:        "reuse-credentials",
			Usage:       "Use the source URL and token for the target environment as well",
			Category:    "Environments",
			Sources:     cli.EnvVars("DASHMOVER_REUSE_CREDENTIALS"),
			Destination: &e.ReuseCredentials,
		},
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Timeout for each Omni API request",
			Category:    "Environments",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("DASHMOVER_HTTP_TIMEOUT"),
			Destination: &e.HTTPTimeout,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "YAML file providing environment settings (flags win)",
			Category:    "Environments",
			Sources:     cli.EnvVars("DASHMOVER_CONFIG"),
			Destination: &e.ConfigFile,
		},
	}
}

// LoadFile merges values from the configured YAML file into unset fields.
// No-op when no file is configured.
func (e *Environments) LoadFile() error {
	if e.ConfigFile == "" {
		return nil
	}

	raw, err := os.ReadFile(e.ConfigFile)
	if err != nil {
		return goerr.Wrap(err, "failed to read environments config file",
			goerr.T(types.ErrTagConfig),
			goerr.V("path", e.ConfigFile))
	}

	var file environmentsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return goerr.Wrap(err, "failed to parse environments config file",
			goerr.T(types.ErrTagConfig),
			goerr.V("path", e.ConfigFile))
	}

	if e.SourceURL == "" {
		e.SourceURL = file.Source.URL
	}
	if e.SourceToken == "" {
		e.SourceToken = file.Source.Token
	}
	if e.TargetURL == "" {
		e.TargetURL = file.Target.URL
	}
	if e.TargetToken == "" {
		e.TargetToken = file.Target.Token
	}
	if !e.ReuseCredentials {
		e.ReuseCredentials = file.ReuseCredentials
	}

	return nil
}

// Violations collects every configuration rule the current values break.
// All rules are checked so the operator sees the full list at once. When
// credential reuse is enabled the target fields are taken from the source
// before checking.
func (e *Environments) Violations() []string {
	targetURL, targetToken := e.TargetURL, e.TargetToken
	if e.ReuseCredentials {
		targetURL, targetToken = e.SourceURL, e.SourceToken
	}

	var violations []string
	if err := model.ValidateBaseURL(e.SourceURL); err != nil {
		violations = append(violations, "Source URL: "+err.Error())
	}
	if err := model.ValidateBaseURL(targetURL); err != nil {
		violations = append(violations, "Target URL: "+err.Error())
	}
	if e.SourceToken == "" {
		violations = append(violations, "Source API token is required")
	}
	if targetToken == "" {
		violations = append(violations, "Target API token is required")
	}
	return violations
}

// Validate returns an error carrying all violations, or nil
func (e *Environments) Validate() error {
	if violations := e.Violations(); len(violations) > 0 {
		return goerr.New("invalid environment configuration",
			goerr.T(types.ErrTagConfig),
			goerr.V("violations", violations))
	}
	return nil
}

// Resolve produces the source and target Environment values, applying
// credential reuse. It is a pure function of the configuration and runs
// before any client is constructed; the two values are always distinct
// instances even when reuse makes them equal.
func (e *Environments) Resolve() (source, target model.Environment) {
	source = model.NewEnvironment(e.SourceURL, e.SourceToken)
	if e.ReuseCredentials {
		target = model.NewEnvironment(e.SourceURL, e.SourceToken)
	} else {
		target = model.NewEnvironment(e.TargetURL, e.TargetToken)
	}
	return source, target
}

// LogValue returns structured log value. Tokens are never logged.
func (e Environments) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("source_url", e.SourceURL),
		slog.String("target_url", e.TargetURL),
		slog.Bool("has_source_token", e.SourceToken != ""),
		slog.Bool("has_target_token", e.TargetToken != ""),
		slog.Bool("reuse_credentials", e.ReuseCredentials),
		slog.Duration("http_timeout", e.HTTPTimeout),
	)
}
