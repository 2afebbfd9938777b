package notify

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type logChannel struct {
	logger *zap.Logger
}

var _ Channel = &logChannel{}

// NewLogChannel writes messages to the logger instead of a real transport
func NewLogChannel(logger *zap.Logger) Channel {
	return &logChannel{logger: logger}
}

// Name ...
func (c *logChannel) Name() string {
	return ChannelLog
}

// Send ...
func (c *logChannel) Send(_ context.Context, recipient string, message string) (string, error) {
	messageID := uuid.NewString()
	c.logger.Info("notification",
		zap.String("recipient", recipient),
		zap.String("message.id", messageID),
		zap.String("message", message),
	)
	return messageID, nil
}
