package model

import (
	"time"
)

// Customer ...
type Customer struct {
	ID     string         `db:"id"`
	Name   string         `db:"name"`
	Phone  string         `db:"phone"`
	Email  string         `db:"email"`
	Status CustomerStatus `db:"status"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CustomerStatus ...
type CustomerStatus int

const (
	// CustomerStatusActive ...
	CustomerStatusActive CustomerStatus = 1

	// CustomerStatusBanned ...
	CustomerStatusBanned CustomerStatus = 2
)

// String ...
func (s CustomerStatus) String() string {
	switch s {
	case CustomerStatusActive:
		return "active"
	case CustomerStatusBanned:
		return "banned"
	default:
		return "unknown"
	}
}

// NullCustomer ...
type NullCustomer struct {
	Valid    bool
	Customer Customer
}
