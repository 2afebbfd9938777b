package model

import (
	"database/sql"
	"time"
)

// BanRecord is one entry of a customer's ban history.
// A record is created active and closed exactly once, either lifted by staff or expired by the system.
type BanRecord struct {
	ID           int64     `db:"id"`
	CustomerID   string    `db:"customer_id"`
	Reason       string    `db:"reason"`
	BannedAt     time.Time `db:"banned_at"`
	DurationDays uint32    `db:"duration_days"`

	// ExpiresAt is NULL for permanent bans
	ExpiresAt  sql.NullTime `db:"expires_at"`
	IsActive   bool         `db:"is_active"`
	BannedByID string       `db:"banned_by_id"`

	RemovedAt   sql.NullTime   `db:"removed_at"`
	RemovedByID sql.NullString `db:"removed_by_id"`
	RemovalKind BanRemovalKind `db:"removal_kind"`
}

// NullBanRecord ...
type NullBanRecord struct {
	Valid  bool
	Record BanRecord
}

// BanRemovalKind records how a ban was closed
type BanRemovalKind int

const (
	// BanRemovalKindNone for active bans
	BanRemovalKindNone BanRemovalKind = 0

	// BanRemovalKindLifted when a staff member removed the ban
	BanRemovalKindLifted BanRemovalKind = 1

	// BanRemovalKindExpired when the ban duration elapsed
	BanRemovalKindExpired BanRemovalKind = 2
)

// String ...
func (k BanRemovalKind) String() string {
	switch k {
	case BanRemovalKindNone:
		return "none"
	case BanRemovalKindLifted:
		return "lifted"
	case BanRemovalKindExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// BanExpiresAt computes the natural end of a ban, NULL for permanent bans
func BanExpiresAt(bannedAt time.Time, durationDays uint32) sql.NullTime {
	if durationDays == 0 {
		return sql.NullTime{}
	}
	return sql.NullTime{
		Valid: true,
		Time:  bannedAt.Add(time.Duration(durationDays) * 24 * time.Hour),
	}
}

// IsPermanent ...
func (r BanRecord) IsPermanent() bool {
	return r.DurationDays == 0
}

// IsDue returns true when an active, non-permanent ban has reached its end
func (r BanRecord) IsDue(now time.Time) bool {
	if !r.IsActive || r.IsPermanent() || !r.ExpiresAt.Valid {
		return false
	}
	return !now.Before(r.ExpiresAt.Time)
}
