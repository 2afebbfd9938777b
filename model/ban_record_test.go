package model

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestBanExpiresAt(t *testing.T) {
	assert.Equal(t, sql.NullTime{}, BanExpiresAt(newTime("2022-05-10T10:00:00+07:00"), 0))
	assert.Equal(t, sql.NullTime{
		Valid: true,
		Time:  newTime("2022-05-17T10:00:00+07:00"),
	}, BanExpiresAt(newTime("2022-05-10T10:00:00+07:00"), 7))
}

func TestBanRecord_IsDue(t *testing.T) {
	bannedAt := newTime("2022-05-10T10:00:00+07:00")
	r := BanRecord{
		BannedAt:     bannedAt,
		DurationDays: 7,
		ExpiresAt:    BanExpiresAt(bannedAt, 7),
		IsActive:     true,
	}

	assert.Equal(t, false, r.IsDue(newTime("2022-05-17T09:59:59+07:00")))
	assert.Equal(t, true, r.IsDue(newTime("2022-05-17T10:00:00+07:00")))
	assert.Equal(t, true, r.IsDue(newTime("2022-05-18T10:00:00+07:00")))

	r.IsActive = false
	assert.Equal(t, false, r.IsDue(newTime("2022-05-18T10:00:00+07:00")))
}

func TestBanRecord_IsDue__Permanent_Never_Due(t *testing.T) {
	r := BanRecord{
		BannedAt: newTime("2022-05-10T10:00:00+07:00"),
		IsActive: true,
	}
	assert.Equal(t, true, r.IsPermanent())
	assert.Equal(t, false, r.IsDue(newTime("2099-01-01T00:00:00Z")))
}
