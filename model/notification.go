package model

import (
	"database/sql"
	"time"
)

// NotificationTemplate ...
type NotificationTemplate struct {
	Name           string   `yaml:"name"`
	Content        string   `yaml:"content"`
	ParameterNames []string `yaml:"parameter_names"`
}

// MessageDeliveryStatus is the outcome of a single send attempt
type MessageDeliveryStatus struct {
	ID           int64  `db:"id"`
	CustomerID   string `db:"customer_id"`
	TemplateName string `db:"template_name"`
	Channel      string `db:"channel"`
	Recipient    string `db:"recipient"`
	Attempt      int    `db:"attempt"`

	IsSuccessful bool           `db:"is_successful"`
	MessageID    sql.NullString `db:"message_id"`
	ErrorText    sql.NullString `db:"error_text"`

	SentAt time.Time `db:"sent_at"`
}
