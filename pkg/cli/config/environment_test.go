package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/omni-tools/dashmover/pkg/cli/config"
	"github.com/omni-tools/dashmover/pkg/domain/types"
)

func validEnvironments() config.Environments {
	return config.Environments{
		SourceURL:   "https://source.omniapp.co",
		SourceToken: "src-token",
		TargetURL:   "https://target.omniapp.co",
		TargetToken: "tgt-token",
	}
}

func TestEnvironmentsViolations(t *testing.T) {
	t.Run("Valid configuration has no violations", func(t *testing.T) {
		cfg := validEnvironments()
		gt.Equal(t, len(cfg.Violations()), 0)
		gt.NoError(t, cfg.Validate())
	})

	t.Run("One entry per violated rule", func(t *testing.T) {
		cfg := validEnvironments()
		cfg.SourceToken = ""
		cfg.TargetURL = "http://target.omniapp.co"

		violations := cfg.Violations()
		gt.Equal(t, len(violations), 2)
	})

	t.Run("All fields missing yields four violations", func(t *testing.T) {
		cfg := config.Environments{}
		gt.Equal(t, len(cfg.Violations()), 4)
	})

	t.Run("HTTP URL names the scheme requirement", func(t *testing.T) {
		cfg := validEnvironments()
		cfg.SourceURL = "http://source.omniapp.co"

		violations := cfg.Violations()
		gt.Equal(t, len(violations), 1)
		gt.True(t, strings.Contains(violations[0], "https://"))
		gt.True(t, strings.Contains(violations[0], "Source URL"))
	})

	t.Run("Validate error carries config tag and violation list", func(t *testing.T) {
		cfg := validEnvironments()
		cfg.TargetToken = ""

		err := cfg.Validate()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, types.ErrTagConfig)).True()

		violations, ok := goerr.Values(err)["violations"].([]string)
		gt.True(t, ok)
		gt.Equal(t, len(violations), 1)
	})

	t.Run("Reuse skips target field checks", func(t *testing.T) {
		cfg := config.Environments{
			SourceURL:        "https://source.omniapp.co",
			SourceToken:      "src-token",
			ReuseCredentials: true,
		}
		gt.Equal(t, len(cfg.Violations()), 0)
	})
}

func TestEnvironmentsResolve(t *testing.T) {
	t.Run("Distinct environments", func(t *testing.T) {
		cfg := validEnvironments()
		source, target := cfg.Resolve()

		gt.Equal(t, source.BaseURL, "https://source.omniapp.co")
		gt.Equal(t, source.Token, "src-token")
		gt.Equal(t, target.BaseURL, "https://target.omniapp.co")
		gt.Equal(t, target.Token, "tgt-token")
	})

	t.Run("Credential reuse copies source into target", func(t *testing.T) {
		cfg := validEnvironments()
		cfg.ReuseCredentials = true
		cfg.TargetURL = ""
		cfg.TargetToken = ""

		source, target := cfg.Resolve()
		gt.Equal(t, target.BaseURL, source.BaseURL)
		gt.Equal(t, target.Token, source.Token)
	})
}

func TestEnvironmentsLoadFile(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "envs.yml")
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("File fills unset fields", func(t *testing.T) {
		cfg := config.Environments{
			ConfigFile: writeFile(t, `
source:
  url: https://source.omniapp.co
  token: src-token
target:
  url: https://target.omniapp.co
  token: tgt-token
`),
		}
		gt.NoError(t, cfg.LoadFile())
		gt.Equal(t, cfg.SourceURL, "https://source.omniapp.co")
		gt.Equal(t, cfg.TargetToken, "tgt-token")
	})

	t.Run("Flags win over file values", func(t *testing.T) {
		cfg := config.Environments{
			SourceURL:  "https://flag.omniapp.co",
			ConfigFile: writeFile(t, "source:\n  url: https://file.omniapp.co\n"),
		}
		gt.NoError(t, cfg.LoadFile())
		gt.Equal(t, cfg.SourceURL, "https://flag.omniapp.co")
	})

	t.Run("Missing file is a config error", func(t *testing.T) {
		cfg := config.Environments{ConfigFile: "/no/such/file.yml"}
		err := cfg.LoadFile()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, types.ErrTagConfig)).True()
	})

	t.Run("No file configured is a no-op", func(t *testing.T) {
		cfg := validEnvironments()
		gt.NoError(t, cfg.LoadFile())
	})
}
