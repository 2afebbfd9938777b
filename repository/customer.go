package repository

import (
	"context"
	"time"

	"github.com/QuangTung97/customer-ban/model"
)

// Customer ...
type Customer interface {
	GetCustomer(ctx context.Context, id string) (model.NullCustomer, error)
	GetCustomerByPhone(ctx context.Context, phone string) (model.NullCustomer, error)

	// LockCustomer must be called inside a transaction, it serializes every ban operation of the customer
	LockCustomer(ctx context.Context, id string) (model.NullCustomer, error)

	InsertCustomer(ctx context.Context, customer model.Customer) error
	UpdateCustomerStatus(ctx context.Context, id string, status model.CustomerStatus, now time.Time) error
}

type customerImpl struct {
}

// NewCustomer ...
func NewCustomer() Customer {
	return &customerImpl{}
}

const selectCustomerColumns = `
SELECT id, name, phone, email, status, created_at, updated_at
FROM customer
`

func nullCustomerFromList(customers []model.Customer) model.NullCustomer {
	if len(customers) == 0 {
		return model.NullCustomer{}
	}
	return model.NullCustomer{
		Valid:    true,
		Customer: customers[0],
	}
}

// GetCustomer ...
func (r *customerImpl) GetCustomer(ctx context.Context, id string) (model.NullCustomer, error) {
	query := selectCustomerColumns + `WHERE id = ?`

	var result []model.Customer
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, id)
	if err != nil {
		return model.NullCustomer{}, err
	}
	return nullCustomerFromList(result), nil
}

// GetCustomerByPhone ...
func (r *customerImpl) GetCustomerByPhone(ctx context.Context, phone string) (model.NullCustomer, error) {
	query := selectCustomerColumns + `WHERE phone = ?`

	var result []model.Customer
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, phone)
	if err != nil {
		return model.NullCustomer{}, err
	}
	return nullCustomerFromList(result), nil
}

// LockCustomer ...
func (r *customerImpl) LockCustomer(ctx context.Context, id string) (model.NullCustomer, error) {
	query := selectCustomerColumns + `WHERE id = ? FOR UPDATE`

	var result []model.Customer
	err := GetTx(ctx).SelectContext(ctx, &result, query, id)
	if err != nil {
		return model.NullCustomer{}, err
	}
	return nullCustomerFromList(result), nil
}

// InsertCustomer ...
func (r *customerImpl) InsertCustomer(ctx context.Context, customer model.Customer) error {
	query := `
INSERT INTO customer (id, name, phone, email, status, created_at, updated_at)
VALUES (:id, :name, :phone, :email, :status, :created_at, :updated_at)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, customer)
	return mapInsertError(err)
}

// UpdateCustomerStatus ...
func (r *customerImpl) UpdateCustomerStatus(
	ctx context.Context, id string, status model.CustomerStatus, now time.Time,
) error {
	query := `UPDATE customer SET status = ?, updated_at = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, now, id)
	return err
}
