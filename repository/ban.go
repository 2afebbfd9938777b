package repository

import (
	"context"
	"time"

	"github.com/QuangTung97/customer-ban/model"
)

// Ban stores the ban history of customers
type Ban interface {
	FindActiveBans(ctx context.Context, customerID string) ([]model.BanRecord, error)
	ListBans(ctx context.Context, customerID string) ([]model.BanRecord, error)

	// FindDueBans returns active, non-permanent bans with expires_at <= now and id > afterID, ordered by id
	FindDueBans(ctx context.Context, now time.Time, afterID int64, limit int) ([]model.BanRecord, error)

	// InsertBan returns ErrDuplicateKey when the customer already has an active ban
	InsertBan(ctx context.Context, record model.BanRecord) (int64, error)

	// CloseBan returns ErrNoRowsAffected when the record is not active anymore
	CloseBan(ctx context.Context, record model.BanRecord) error
}

type banImpl struct {
}

// NewBan ...
func NewBan() Ban {
	return &banImpl{}
}

const selectBanColumns = `
SELECT id, customer_id, reason, banned_at, duration_days, expires_at, is_active,
	banned_by_id, removed_at, removed_by_id, removal_kind
FROM ban_record
`

// FindActiveBans ...
func (r *banImpl) FindActiveBans(ctx context.Context, customerID string) ([]model.BanRecord, error) {
	query := selectBanColumns + `WHERE customer_id = ? AND is_active = TRUE`

	var result []model.BanRecord
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, customerID)
	return result, err
}

// ListBans ...
func (r *banImpl) ListBans(ctx context.Context, customerID string) ([]model.BanRecord, error) {
	query := selectBanColumns + `WHERE customer_id = ? ORDER BY banned_at, id`

	var result []model.BanRecord
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, customerID)
	return result, err
}

// FindDueBans ...
func (r *banImpl) FindDueBans(
	ctx context.Context, now time.Time, afterID int64, limit int,
) ([]model.BanRecord, error) {
	query := selectBanColumns + `
WHERE is_active = TRUE AND expires_at IS NOT NULL AND expires_at <= ? AND id > ?
ORDER BY id LIMIT ?
`
	var result []model.BanRecord
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, now, afterID, limit)
	return result, err
}

// InsertBan ...
func (r *banImpl) InsertBan(ctx context.Context, record model.BanRecord) (int64, error) {
	query := `
INSERT INTO ban_record (
	customer_id, reason, banned_at, duration_days, expires_at, is_active,
	banned_by_id, removed_at, removed_by_id, removal_kind
) VALUES (
	:customer_id, :reason, :banned_at, :duration_days, :expires_at, :is_active,
	:banned_by_id, :removed_at, :removed_by_id, :removal_kind
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, record)
	if err != nil {
		return 0, mapInsertError(err)
	}
	return result.LastInsertId()
}

// CloseBan ...
func (r *banImpl) CloseBan(ctx context.Context, record model.BanRecord) error {
	query := `
UPDATE ban_record SET
	is_active = FALSE,
	removed_at = :removed_at,
	removed_by_id = :removed_by_id,
	removal_kind = :removal_kind
WHERE id = :id AND is_active = TRUE
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, record)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
