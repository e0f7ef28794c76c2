package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/omni-tools/dashmover/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Service posts migration summaries to a Slack channel
type Service struct {
	client  *slack.Client
	channel string
}

// New creates a new Slack service posting to the given channel
func New(token, channel string) *Service {
	return &Service{
		client:  slack.New(token),
		channel: channel,
	}
}

// NotifyMigration posts a summary of a completed migration. The message links
// the migrated dashboard in the target environment.
func (s *Service) NotifyMigration(ctx context.Context, record *model.MigrationRecord, target model.Environment) error {
	if record.Outcome == nil {
		return goerr.New("migration record has no outcome to notify")
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "Dashboard migrated", false, false),
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*%s* is now available in %s", record.Outcome.WorkbookName, target.BaseURL),
				false, false),
			nil, nil,
		),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Dashboard:*\n<%s|%s>", record.Outcome.DashboardURL, record.Outcome.WorkbookIdentifier),
				false, false),
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Workbook ID:*\n%s", record.Outcome.WorkbookID),
				false, false),
		}, nil),
	}

	_, _, err := s.client.PostMessageContext(ctx, s.channel, slack.MsgOptionBlocks(blocks...))
	if err != nil {
		return goerr.Wrap(err, "failed to post migration summary to Slack",
			goerr.V("channel", s.channel),
			goerr.V("migrationID", record.ID))
	}
	return nil
}
