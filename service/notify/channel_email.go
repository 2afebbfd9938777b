package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/QuangTung97/customer-ban/config"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/gomail.v2"
)

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailChannel struct {
	conf   config.EmailConfig
	sender mailSender
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

var _ Channel = &emailChannel{}

// NewSMTPChannel creates the email channel, the message is sent as plain text with an HTML alternative
func NewSMTPChannel(conf config.EmailConfig) Channel {
	return newEmailChannel(conf, gomail.NewDialer(conf.Host, conf.Port, conf.Username, conf.Password))
}

func newEmailChannel(conf config.EmailConfig, sender mailSender) *emailChannel {
	return &emailChannel{
		conf:   conf,
		sender: sender,
		md:     goldmark.New(),
		policy: bluemonday.UGCPolicy(),
	}
}

// Name ...
func (c *emailChannel) Name() string {
	return ChannelEmail
}

// toHTML treats the message as markdown, parameters come from staff input so the output is sanitized
func (c *emailChannel) toHTML(message string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(message), &buf); err != nil {
		return "", err
	}
	return c.policy.Sanitize(buf.String()), nil
}

func (c *emailChannel) newMessage(recipient string, message string) (*gomail.Message, string, error) {
	htmlBody, err := c.toHTML(message)
	if err != nil {
		return nil, "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), c.conf.Host)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", c.conf.FromAddress, c.conf.FromName)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", c.conf.Subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/plain", message)
	m.AddAlternative("text/html", htmlBody)
	return m, messageID, nil
}

// Send ...
func (c *emailChannel) Send(_ context.Context, recipient string, message string) (string, error) {
	if recipient == "" {
		return "", errors.New("email address is required")
	}

	m, messageID, err := c.newMessage(recipient, message)
	if err != nil {
		return "", err
	}

	if err := c.sender.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	return messageID, nil
}
