package config

import (
	"log/slog"

	slackSvc "github.com/omni-tools/dashmover/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds the optional migration notification configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for migration notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("DASHMOVER_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel that receives migration summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("DASHMOVER_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// IsConfigured checks if Slack notifications are enabled
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// ConfigureOptional creates a Slack notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) *slackSvc.Service {
	if !s.IsConfigured() {
		logger.Debug("Slack not configured - migration notifications disabled")
		return nil
	}

	logger.Info("Configuring Slack notifier", slog.String("channel", s.Channel))
	return slackSvc.New(s.OAuthToken, s.Channel)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
