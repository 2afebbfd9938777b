package repository

import (
	"context"

	"github.com/QuangTung97/customer-ban/model"
)

// Delivery is the append-only log of notification send attempts
type Delivery interface {
	InsertDelivery(ctx context.Context, status model.MessageDeliveryStatus) (int64, error)
	ListDeliveries(ctx context.Context, customerID string) ([]model.MessageDeliveryStatus, error)
}

type deliveryImpl struct {
}

// NewDelivery ...
func NewDelivery() Delivery {
	return &deliveryImpl{}
}

// InsertDelivery ...
func (r *deliveryImpl) InsertDelivery(ctx context.Context, status model.MessageDeliveryStatus) (int64, error) {
	query := `
INSERT INTO message_delivery (
	customer_id, template_name, channel, recipient, attempt,
	is_successful, message_id, error_text, sent_at
) VALUES (
	:customer_id, :template_name, :channel, :recipient, :attempt,
	:is_successful, :message_id, :error_text, :sent_at
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, status)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListDeliveries ...
func (r *deliveryImpl) ListDeliveries(ctx context.Context, customerID string) ([]model.MessageDeliveryStatus, error) {
	query := `
SELECT id, customer_id, template_name, channel, recipient, attempt,
	is_successful, message_id, error_text, sent_at
FROM message_delivery
WHERE customer_id = ?
ORDER BY sent_at, id
`
	var result []model.MessageDeliveryStatus
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, customerID)
	return result, err
}
