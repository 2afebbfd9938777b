package ban

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/QuangTung97/customer-ban/model"
	"github.com/QuangTung97/customer-ban/pkg/otellib"
	"github.com/QuangTung97/customer-ban/repository"
	"go.uber.org/zap"
)

// ledger is the ban history of customers.
// Every method except history must be called inside a transaction holding the customer lock.
type ledger struct {
	banRepo repository.Ban
}

func newLedger(banRepo repository.Ban) *ledger {
	return &ledger{banRepo: banRepo}
}

// currentActiveBan returns the single active ban of the customer, due or not
func (l *ledger) currentActiveBan(ctx context.Context, customerID string) (model.NullBanRecord, error) {
	records, err := l.banRepo.FindActiveBans(ctx, customerID)
	if err != nil {
		return model.NullBanRecord{}, err
	}

	if len(records) > 1 {
		integrityViolationTotal.Inc()
		otellib.Extract(ctx).DPanic("more than one active ban",
			zap.String("customer.id", customerID),
			zap.Int("count", len(records)),
		)
		return model.NullBanRecord{}, fmt.Errorf("%w: customer %q has %d active bans", ErrIntegrity, customerID, len(records))
	}

	if len(records) == 0 {
		return model.NullBanRecord{}, nil
	}
	return model.NullBanRecord{Valid: true, Record: records[0]}, nil
}

func (l *ledger) imposeBan(
	ctx context.Context, customerID string, reason string, durationDays uint32,
	bannedByID string, now time.Time,
) (model.BanRecord, error) {
	record := model.BanRecord{
		CustomerID:   customerID,
		Reason:       reason,
		BannedAt:     now,
		DurationDays: durationDays,
		ExpiresAt:    model.BanExpiresAt(now, durationDays),
		IsActive:     true,
		BannedByID:   bannedByID,
		RemovalKind:  model.BanRemovalKindNone,
	}

	id, err := l.banRepo.InsertBan(ctx, record)
	if errors.Is(err, repository.ErrDuplicateKey) {
		return model.BanRecord{}, fmt.Errorf("%w: customer %q already has an active ban", ErrConflict, customerID)
	}
	if err != nil {
		return model.BanRecord{}, err
	}

	record.ID = id
	return record, nil
}

func (l *ledger) closeBan(ctx context.Context, record model.BanRecord) (model.BanRecord, error) {
	record.IsActive = false
	err := l.banRepo.CloseBan(ctx, record)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return model.BanRecord{}, fmt.Errorf("%w: ban %d is not active", ErrConflict, record.ID)
	}
	if err != nil {
		return model.BanRecord{}, err
	}
	return record, nil
}

func (l *ledger) liftBan(
	ctx context.Context, customerID string, removedByID string, now time.Time,
) (model.BanRecord, error) {
	current, err := l.currentActiveBan(ctx, customerID)
	if err != nil {
		return model.BanRecord{}, err
	}
	if !current.Valid {
		return model.BanRecord{}, fmt.Errorf("%w: customer %q has no active ban", ErrNotFound, customerID)
	}

	record := current.Record
	record.RemovedAt = sql.NullTime{Valid: true, Time: now}
	record.RemovedByID = sql.NullString{Valid: true, String: removedByID}
	record.RemovalKind = model.BanRemovalKindLifted
	return l.closeBan(ctx, record)
}

// expireBan is a no-op when there is no active ban or the active ban is permanent or not yet due
func (l *ledger) expireBan(
	ctx context.Context, customerID string, now time.Time,
) (record model.BanRecord, expired bool, err error) {
	current, err := l.currentActiveBan(ctx, customerID)
	if err != nil {
		return model.BanRecord{}, false, err
	}
	if !current.Valid || !current.Record.IsDue(now) {
		return current.Record, false, nil
	}

	record = current.Record
	record.RemovedAt = sql.NullTime{Valid: true, Time: now}
	record.RemovedByID = sql.NullString{}
	record.RemovalKind = model.BanRemovalKindExpired

	record, err = l.closeBan(ctx, record)
	if err != nil {
		return model.BanRecord{}, false, err
	}
	return record, true, nil
}

func (l *ledger) history(ctx context.Context, customerID string) ([]model.BanRecord, error) {
	return l.banRepo.ListBans(ctx, customerID)
}
