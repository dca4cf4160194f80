package notify

import (
	"context"

	"github-workflow-automation/pkg/slack"
	"github-workflow-automation/pkg/telegram"
)

type slackSink struct {
	client slack.ISlack
}

// NewSlackSink posts announcements through a Slack incoming webhook.
func NewSlackSink(client slack.ISlack) Sink {
	return &slackSink{client: client}
}

func (s *slackSink) Name() string { return "slack" }

func (s *slackSink) Post(ctx context.Context, text string) error {
	return s.client.PostMessage(ctx, text)
}

type telegramSink struct {
	bot    *telegram.Bot
	chatID int64
}

// NewTelegramSink posts announcements to one Telegram chat.
func NewTelegramSink(bot *telegram.Bot, chatID int64) Sink {
	return &telegramSink{bot: bot, chatID: chatID}
}

func (s *telegramSink) Name() string { return "telegram" }

func (s *telegramSink) Post(ctx context.Context, text string) error {
	return s.bot.SendMessage(ctx, s.chatID, text)
}
