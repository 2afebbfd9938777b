package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/kavenegar/kavenegar-go"
)

type smsSendFunc func(sender string, receptor []string, message string) (string, error)

type smsChannel struct {
	sender string
	send   smsSendFunc
}

var _ Channel = &smsChannel{}

// NewKavenegarChannel creates the SMS channel backed by the Kavenegar API
func NewKavenegarChannel(apiKey string, sender string) Channel {
	api := kavenegar.New(apiKey)
	return newSMSChannel(sender, func(sender string, receptor []string, message string) (string, error) {
		res, err := api.Message.Send(sender, receptor, message, nil)
		if err != nil {
			switch err := err.(type) {
			case *kavenegar.APIError:
				return "", fmt.Errorf("kavenegar API error: %w", err)
			case *kavenegar.HTTPError:
				return "", fmt.Errorf("kavenegar HTTP error: %w", err)
			default:
				return "", fmt.Errorf("kavenegar send: %w", err)
			}
		}
		if len(res) == 0 {
			return "", errors.New("no response entries from kavenegar")
		}
		return fmt.Sprintf("%d", res[0].MessageID), nil
	})
}

func newSMSChannel(sender string, send smsSendFunc) *smsChannel {
	return &smsChannel{
		sender: sender,
		send:   send,
	}
}

// Name ...
func (c *smsChannel) Name() string {
	return ChannelSMS
}

// Send ...
func (c *smsChannel) Send(_ context.Context, recipient string, message string) (string, error) {
	if recipient == "" {
		return "", errors.New("phone number is required")
	}
	return c.send(c.sender, []string{recipient}, message)
}
