package notify

import (
	"context"
)

// Channel ids
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
	ChannelLog   = "log"
)

// Channel delivers a rendered message to one recipient over one transport
type Channel interface {
	Name() string

	// Send returns the provider message id, the context carries the attempt deadline
	Send(ctx context.Context, recipient string, message string) (string, error)
}
