package notify

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/QuangTung97/customer-ban/model"
	"github.com/QuangTung97/customer-ban/pkg/otellib"
	"github.com/QuangTung97/customer-ban/repository"
	"go.uber.org/zap"
)

const deliveryLogTimeout = 5 * time.Second

// SendRequest ...
type SendRequest struct {
	CustomerID   string
	TemplateName string
	Channel      string
	Recipient    string
	Message      string
	Attempt      int
}

// Dispatcher renders templates and sends messages over the registered channels.
// Every send attempt is appended to the delivery log.
type Dispatcher struct {
	provider     repository.Provider
	deliveryRepo repository.Delivery
	templates    map[string]*Template
	opts         dispatcherOptions
}

// NewDispatcher ...
func NewDispatcher(
	provider repository.Provider, deliveryRepo repository.Delivery,
	templates map[string]*Template, options ...DispatcherOption,
) *Dispatcher {
	return &Dispatcher{
		provider:     provider,
		deliveryRepo: deliveryRepo,
		templates:    templates,
		opts:         newDispatcherOptions(options...),
	}
}

// Channels returns the registered channel ids in sorted order
func (d *Dispatcher) Channels() []string {
	result := make([]string, 0, len(d.opts.channels))
	for name := range d.opts.channels {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Render renders the named template
func (d *Dispatcher) Render(templateName string, params map[string]string) (string, error) {
	tmpl, ok := d.templates[templateName]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, templateName)
	}
	return tmpl.Render(params)
}

type sendResult struct {
	messageID string
	err       error
}

// callChannel returns when the channel returns or the deadline passes, whichever comes first.
// A transport ignoring the context keeps running in its goroutine and its result is dropped.
func callChannel(ctx context.Context, entry channelEntry, recipient string, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, entry.timeout)
	defer cancel()

	resultCh := make(chan sendResult, 1)
	go func() {
		messageID, err := entry.channel.Send(ctx, recipient, message)
		resultCh <- sendResult{messageID: messageID, err: err}
	}()

	select {
	case r := <-resultCh:
		return r.messageID, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("timeout after %s", entry.timeout)
		}
		return "", ctx.Err()
	}
}

// Send delivers one message. Transport failures are reported in the status, not as an error.
// The error is only for programmer errors such as ErrUnsupportedChannel.
func (d *Dispatcher) Send(ctx context.Context, req SendRequest) (model.MessageDeliveryStatus, error) {
	entry, ok := d.opts.channels[req.Channel]
	if !ok {
		return model.MessageDeliveryStatus{}, fmt.Errorf("%w: %q", ErrUnsupportedChannel, req.Channel)
	}

	attempt := req.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	start := time.Now()
	messageID, err := callChannel(ctx, entry, req.Recipient, req.Message)
	deliveryDuration.WithLabelValues(req.Channel).Observe(time.Since(start).Seconds())

	status := model.MessageDeliveryStatus{
		CustomerID:   req.CustomerID,
		TemplateName: req.TemplateName,
		Channel:      req.Channel,
		Recipient:    req.Recipient,
		Attempt:      attempt,
		SentAt:       d.opts.now(),
	}

	logger := otellib.Extract(ctx).With(
		zap.String("customer.id", req.CustomerID),
		zap.String("channel", req.Channel),
		zap.String("template", req.TemplateName),
		zap.Int("attempt", attempt),
	)

	if err != nil {
		status.ErrorText = sql.NullString{Valid: true, String: err.Error()}
		deliveryTotal.WithLabelValues(req.Channel, "failure").Inc()
		logger.Warn("notification delivery failed", zap.Error(err))
	} else {
		status.IsSuccessful = true
		status.MessageID = sql.NullString{Valid: true, String: messageID}
		deliveryTotal.WithLabelValues(req.Channel, "success").Inc()
	}

	// the delivery log must be written even when the caller's context is done
	logCtx, cancel := context.WithTimeout(context.Background(), deliveryLogTimeout)
	defer cancel()

	err = d.provider.Transact(logCtx, func(ctx context.Context) error {
		id, err := d.deliveryRepo.InsertDelivery(ctx, status)
		if err != nil {
			return err
		}
		status.ID = id
		return nil
	})
	if err != nil {
		deliveryLogErrorTotal.Inc()
		logger.Error("write delivery log", zap.Error(err))
	}

	return status, nil
}

// ListDeliveries returns the delivery log of a customer
func (d *Dispatcher) ListDeliveries(ctx context.Context, customerID string) ([]model.MessageDeliveryStatus, error) {
	ctx = d.provider.Readonly(ctx)
	return d.deliveryRepo.ListDeliveries(ctx, customerID)
}
