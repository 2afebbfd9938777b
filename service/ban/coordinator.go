package ban

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/QuangTung97/customer-ban/model"
	"github.com/QuangTung97/customer-ban/pkg/keylock"
	"github.com/QuangTung97/customer-ban/pkg/otellib"
	"github.com/QuangTung97/customer-ban/repository"
	"github.com/QuangTung97/customer-ban/service/notify"
	"go.uber.org/zap"
)

//go:generate moq -out ban_mocks_test.go . Notifier StatusCache Locker IService

// Notifier is implemented by notify.Notifier
type Notifier interface {
	Notify(ctx context.Context, notification notify.Notification)
}

// StatusCache is implemented by memtable.StatusCache
type StatusCache interface {
	GetStatus(customerID string) (model.CustomerStatus, bool)
	SetStatus(customerID string, status model.CustomerStatus, ttl time.Duration)
	Invalidate(customerID string)
}

type noopStatusCache struct {
}

func (noopStatusCache) GetStatus(string) (model.CustomerStatus, bool) {
	return 0, false
}

func (noopStatusCache) SetStatus(string, model.CustomerStatus, time.Duration) {
}

func (noopStatusCache) Invalidate(string) {
}

// ExpireResult ...
type ExpireResult struct {
	// Expired is false when there was nothing to expire
	Expired bool
	Record  model.BanRecord
}

// MaxDurationDays is the longest non-permanent ban
const MaxDurationDays = 3650

// PermanentUntil is the "until" parameter of ban-notice for permanent bans
const PermanentUntil = "permanent"

type imposeInput struct {
	CustomerID   string `validate:"required"`
	Reason       string `validate:"required"`
	DurationDays uint32
	StaffID      string `validate:"required,max=64"`
}

type liftInput struct {
	CustomerID string `validate:"required"`
	StaffID    string `validate:"required,max=64"`
}

// Coordinator orchestrates every ban transition of a customer:
// status change, ledger update and notification
type Coordinator struct {
	provider repository.Provider
	registry *Registry
	ledger   *ledger
	notifier Notifier
	locks    *keylock.KeyLock
	opts     coordinatorOptions
}

var _ IService = &Coordinator{}

// NewCoordinator ...
func NewCoordinator(
	provider repository.Provider,
	customerRepo repository.Customer, banRepo repository.Ban,
	notifier Notifier, options ...Option,
) *Coordinator {
	opts := newCoordinatorOptions(options...)
	return &Coordinator{
		provider: provider,
		registry: NewRegistry(provider, customerRepo, opts.now),
		ledger:   newLedger(banRepo),
		notifier: notifier,
		locks:    keylock.New(opts.lockStripes),
		opts:     opts,
	}
}

// Register ...
func (c *Coordinator) Register(ctx context.Context, input RegisterInput) (model.Customer, error) {
	return c.registry.Register(ctx, input)
}

// GetCustomer ...
func (c *Coordinator) GetCustomer(ctx context.Context, customerID string) (model.Customer, error) {
	return c.registry.GetByID(ctx, customerID)
}

// expireLocked must be called inside the transaction holding the customer lock
func (c *Coordinator) expireLocked(
	ctx context.Context, customerID string, now time.Time,
) (model.BanRecord, bool, error) {
	record, expired, err := c.ledger.expireBan(ctx, customerID, now)
	if err != nil || !expired {
		return record, false, err
	}
	if err := c.registry.setStatus(ctx, customerID, model.CustomerStatusActive, now); err != nil {
		return model.BanRecord{}, false, err
	}
	return record, true, nil
}

// activeBanLocked returns the current active ban after lazily expiring a due one.
// expired is set when the lazy expiry happened.
func (c *Coordinator) activeBanLocked(
	ctx context.Context, customerID string, now time.Time,
) (current model.NullBanRecord, expired model.NullBanRecord, err error) {
	current, err = c.ledger.currentActiveBan(ctx, customerID)
	if err != nil {
		return model.NullBanRecord{}, model.NullBanRecord{}, err
	}
	if !current.Valid || !current.Record.IsDue(now) {
		return current, model.NullBanRecord{}, nil
	}

	record, ok, err := c.expireLocked(ctx, customerID, now)
	if err != nil {
		return model.NullBanRecord{}, model.NullBanRecord{}, err
	}
	return model.NullBanRecord{}, model.NullBanRecord{Valid: ok, Record: record}, nil
}

// ImposeBan moves an Active customer to Banned. durationDays = 0 means permanent.
func (c *Coordinator) ImposeBan(
	ctx context.Context, customerID string, reason string, durationDays uint32, staffID string,
) (model.BanRecord, error) {
	input := imposeInput{
		CustomerID:   customerID,
		Reason:       strings.TrimSpace(reason),
		DurationDays: durationDays,
		StaffID:      staffID,
	}
	if err := validate.Struct(input); err != nil {
		return model.BanRecord{}, validationError(err)
	}
	if durationDays > MaxDurationDays {
		return model.BanRecord{}, fmt.Errorf("%w: duration %d days exceeds %d", ErrValidation, durationDays, MaxDurationDays)
	}

	unlock := c.locks.Lock(customerID)
	defer unlock()

	var customer model.Customer
	var record model.BanRecord
	var lazyExpired model.NullBanRecord

	err := c.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		customer, err = c.registry.lock(ctx, customerID)
		if err != nil {
			return err
		}

		now := c.opts.now()

		var current model.NullBanRecord
		current, lazyExpired, err = c.activeBanLocked(ctx, customerID, now)
		if err != nil {
			return err
		}
		if current.Valid {
			return fmt.Errorf("%w: customer %q is already banned", ErrConflict, customerID)
		}

		record, err = c.ledger.imposeBan(ctx, customerID, input.Reason, durationDays, staffID, now)
		if err != nil {
			return err
		}
		return c.registry.setStatus(ctx, customerID, model.CustomerStatusBanned, now)
	})
	if err != nil {
		return model.BanRecord{}, err
	}

	c.opts.cache.Invalidate(customerID)

	if lazyExpired.Valid {
		c.afterExpired(ctx, customer, lazyExpired.Record)
	}

	transitionTotal.WithLabelValues(transitionImpose).Inc()
	otellib.Extract(ctx).Info("ban imposed",
		zap.String("customer.id", customerID),
		zap.Int64("ban.id", record.ID),
		zap.Uint32("duration_days", durationDays),
		zap.String("staff.id", staffID),
	)

	c.notify(ctx, customer, notify.TemplateBanNotice, map[string]string{
		"name":   customer.Name,
		"reason": record.Reason,
		"until":  formatUntil(record),
	})
	return record, nil
}

// LiftBan moves a Banned customer back to Active
func (c *Coordinator) LiftBan(ctx context.Context, customerID string, staffID string) (model.BanRecord, error) {
	if err := validate.Struct(liftInput{CustomerID: customerID, StaffID: staffID}); err != nil {
		return model.BanRecord{}, validationError(err)
	}

	unlock := c.locks.Lock(customerID)
	defer unlock()

	var customer model.Customer
	var record model.BanRecord
	var lazyExpired model.NullBanRecord
	var liftErr error

	err := c.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		customer, err = c.registry.lock(ctx, customerID)
		if err != nil {
			return err
		}

		now := c.opts.now()

		var current model.NullBanRecord
		current, lazyExpired, err = c.activeBanLocked(ctx, customerID, now)
		if err != nil {
			return err
		}
		if !current.Valid {
			// a lazy expiry done above must still be committed
			liftErr = fmt.Errorf("%w: customer %q is not banned", ErrConflict, customerID)
			return nil
		}

		record, err = c.ledger.liftBan(ctx, customerID, staffID, now)
		if err != nil {
			return err
		}
		return c.registry.setStatus(ctx, customerID, model.CustomerStatusActive, now)
	})
	if err != nil {
		return model.BanRecord{}, err
	}

	if lazyExpired.Valid {
		c.opts.cache.Invalidate(customerID)
		c.afterExpired(ctx, customer, lazyExpired.Record)
	}
	if liftErr != nil {
		return model.BanRecord{}, liftErr
	}

	c.opts.cache.Invalidate(customerID)

	transitionTotal.WithLabelValues(transitionLift).Inc()
	otellib.Extract(ctx).Info("ban lifted",
		zap.String("customer.id", customerID),
		zap.Int64("ban.id", record.ID),
		zap.String("staff.id", staffID),
	)

	c.notify(ctx, customer, notify.TemplateUnbanNotice, map[string]string{
		"name": customer.Name,
	})
	return record, nil
}

// ExpireBan closes the active ban when it is due. Nothing to expire is not an error.
func (c *Coordinator) ExpireBan(ctx context.Context, customerID string) (ExpireResult, error) {
	if customerID == "" {
		return ExpireResult{}, fmt.Errorf("%w: customer id is required", ErrValidation)
	}

	unlock := c.locks.Lock(customerID)
	defer unlock()

	var customer model.Customer
	var result ExpireResult

	err := c.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		customer, err = c.registry.lock(ctx, customerID)
		if err != nil {
			return err
		}

		record, expired, err := c.expireLocked(ctx, customerID, c.opts.now())
		if err != nil {
			return err
		}
		result = ExpireResult{Expired: expired, Record: record}
		return nil
	})
	if err != nil {
		return ExpireResult{}, err
	}

	if result.Expired {
		c.opts.cache.Invalidate(customerID)
		c.afterExpired(ctx, customer, result.Record)
	}
	return result, nil
}

func (c *Coordinator) afterExpired(ctx context.Context, customer model.Customer, record model.BanRecord) {
	transitionTotal.WithLabelValues(transitionExpire).Inc()
	otellib.Extract(ctx).Info("ban expired",
		zap.String("customer.id", customer.ID),
		zap.Int64("ban.id", record.ID),
	)

	c.notify(ctx, customer, notify.TemplateBanExpired, map[string]string{
		"name": customer.Name,
	})
}

// GetBanHistory returns every ban of the customer ordered by ban time, a due ban is expired first
func (c *Coordinator) GetBanHistory(ctx context.Context, customerID string) ([]model.BanRecord, error) {
	if _, err := c.registry.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	readCtx := c.provider.Readonly(ctx)
	records, err := c.ledger.history(readCtx, customerID)
	if err != nil {
		return nil, err
	}

	if !hasDueBan(records, c.opts.now()) {
		return records, nil
	}

	if _, err := c.ExpireBan(ctx, customerID); err != nil {
		return nil, err
	}
	return c.ledger.history(readCtx, customerID)
}

func hasDueBan(records []model.BanRecord, now time.Time) bool {
	for _, r := range records {
		if r.IsDue(now) {
			return true
		}
	}
	return false
}

// GetCustomerStatus derives the status from the ledger, a due ban is expired first.
// The ledger read and the cache fill happen under the customer lock, transitions invalidate
// the cache before releasing it, so a fill never overwrites a newer transition.
func (c *Coordinator) GetCustomerStatus(ctx context.Context, customerID string) (model.CustomerStatus, error) {
	if status, ok := c.opts.cache.GetStatus(customerID); ok {
		return status, nil
	}

	if _, err := c.registry.GetByID(ctx, customerID); err != nil {
		return 0, err
	}

	status, due, err := c.readStatus(ctx, customerID)
	if err != nil {
		return 0, err
	}
	if !due {
		return status, nil
	}

	if _, err := c.ExpireBan(ctx, customerID); err != nil {
		return 0, err
	}
	return model.CustomerStatusActive, nil
}

// readStatus returns due = true without touching the cache when the active ban must be expired first
func (c *Coordinator) readStatus(ctx context.Context, customerID string) (model.CustomerStatus, bool, error) {
	unlock := c.locks.Lock(customerID)
	defer unlock()

	now := c.opts.now()
	current, err := c.ledger.currentActiveBan(c.provider.Readonly(ctx), customerID)
	if err != nil {
		return 0, false, err
	}
	if current.Valid && current.Record.IsDue(now) {
		return 0, true, nil
	}

	status := model.CustomerStatusActive
	ttl := c.opts.cacheTTL
	if current.Valid {
		status = model.CustomerStatusBanned
		if current.Record.ExpiresAt.Valid {
			if untilExpiry := current.Record.ExpiresAt.Time.Sub(now); untilExpiry < ttl {
				ttl = untilExpiry
			}
		}
	}

	c.opts.cache.SetStatus(customerID, status, ttl)
	return status, false, nil
}

func formatUntil(record model.BanRecord) string {
	if !record.ExpiresAt.Valid {
		return PermanentUntil
	}
	return record.ExpiresAt.Time.UTC().Format(time.RFC3339)
}

// recipients maps every configured channel to the customer's address on it
func recipients(channels []string, customer model.Customer) map[string]string {
	result := map[string]string{}
	for _, ch := range channels {
		switch ch {
		case notify.ChannelEmail:
			if customer.Email != "" {
				result[ch] = customer.Email
			}
		default:
			result[ch] = customer.Phone
		}
	}
	return result
}

func (c *Coordinator) notify(ctx context.Context, customer model.Customer, templateName string, params map[string]string) {
	rcpts := recipients(c.opts.channels, customer)
	if len(rcpts) == 0 {
		return
	}
	c.notifier.Notify(ctx, notify.Notification{
		CustomerID:   customer.ID,
		TemplateName: templateName,
		Params:       params,
		Recipients:   rcpts,
	})
}
