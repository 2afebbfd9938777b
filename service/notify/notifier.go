package notify

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/QuangTung97/customer-ban/model"
	"github.com/QuangTung97/customer-ban/pkg/otellib"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

//go:generate moq -out notify_mocks_test.go . Sender Channel

// Sender is implemented by Dispatcher
type Sender interface {
	Render(templateName string, params map[string]string) (string, error)
	Send(ctx context.Context, req SendRequest) (model.MessageDeliveryStatus, error)
}

var _ Sender = &Dispatcher{}

// Notification is one templated message to a customer over one or more channels
type Notification struct {
	CustomerID   string
	TemplateName string
	Params       map[string]string

	// Recipients maps channel id to the recipient address on that channel
	Recipients map[string]string
}

// Notifier delivers notifications in the background, failed attempts are retried with exponential backoff.
// Delivery is best-effort: callers never see the outcome.
type Notifier struct {
	sender Sender
	opts   notifierOptions

	ctx    context.Context
	cancel func()
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewNotifier ...
func NewNotifier(sender Sender, options ...NotifierOption) *Notifier {
	ctx, cancel := context.WithCancel(context.Background())
	return &Notifier{
		sender: sender,
		opts:   newNotifierOptions(options...),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Notify renders the message then returns, sending happens in other goroutines
func (n *Notifier) Notify(ctx context.Context, notification Notification) {
	logger := otellib.Extract(ctx).With(
		zap.String("customer.id", notification.CustomerID),
		zap.String("template", notification.TemplateName),
	)

	message, err := n.sender.Render(notification.TemplateName, notification.Params)
	if err != nil {
		logger.Error("render notification", zap.Error(err))
		return
	}

	channels := make([]string, 0, len(notification.Recipients))
	for channel := range notification.Recipients {
		channels = append(channels, channel)
	}
	sort.Strings(channels)

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		logger.Warn("notifier is shut down, notification dropped")
		return
	}

	for _, channel := range channels {
		req := SendRequest{
			CustomerID:   notification.CustomerID,
			TemplateName: notification.TemplateName,
			Channel:      channel,
			Recipient:    notification.Recipients[channel],
			Message:      message,
		}

		n.wg.Add(1)
		go func() {
			defer n.wg.Done()
			n.deliver(otellib.ToContext(n.ctx, logger), req)
		}()
	}
}

func (n *Notifier) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = n.opts.initialInterval
	b.MaxInterval = n.opts.maxInterval
	b.MaxElapsedTime = 0
	b.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(n.opts.maxAttempts-1)), ctx)
}

func (n *Notifier) deliver(ctx context.Context, req SendRequest) {
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		req.Attempt = attempt

		status, err := n.sender.Send(ctx, req)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !status.IsSuccessful {
			return errors.New(status.ErrorText.String)
		}
		return nil
	}, n.newBackOff(ctx))

	if err != nil {
		notificationGiveUpTotal.WithLabelValues(req.Channel, req.TemplateName).Inc()
		otellib.Extract(ctx).Error("notification abandoned",
			zap.String("channel", req.Channel),
			zap.Int("attempts", attempt),
			zap.Error(err),
		)
	}
}

// Shutdown stops accepting notifications and waits for in-flight deliveries.
// When ctx is done first, pending retries are cancelled.
func (n *Notifier) Shutdown(ctx context.Context) error {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		n.cancel()
		return nil
	case <-ctx.Done():
		n.cancel()
		<-done
		return ctx.Err()
	}
}
