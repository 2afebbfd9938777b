package ban

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/QuangTung97/customer-ban/model"
	"github.com/QuangTung97/customer-ban/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

func validationError(err error) error {
	return fmt.Errorf("%w: %s", ErrValidation, err.Error())
}

// RegisterInput ...
type RegisterInput struct {
	Name  string `validate:"required,max=255"`
	Phone string `validate:"required,e164"`
	Email string `validate:"omitempty,email,max=255"`
}

// Registry owns customer records
type Registry struct {
	provider     repository.Provider
	customerRepo repository.Customer
	now          func() time.Time
}

// NewRegistry ...
func NewRegistry(provider repository.Provider, customerRepo repository.Customer, now func() time.Time) *Registry {
	return &Registry{
		provider:     provider,
		customerRepo: customerRepo,
		now:          now,
	}
}

// Register creates an Active customer, the phone number must not be registered yet
func (r *Registry) Register(ctx context.Context, input RegisterInput) (model.Customer, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)

	if err := validate.Struct(input); err != nil {
		return model.Customer{}, validationError(err)
	}

	now := r.now()
	customer := model.Customer{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Status:    model.CustomerStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.provider.Transact(ctx, func(ctx context.Context) error {
		existing, err := r.customerRepo.GetCustomerByPhone(ctx, input.Phone)
		if err != nil {
			return err
		}
		if existing.Valid {
			return fmt.Errorf("%w: phone %s is already registered", ErrValidation, input.Phone)
		}

		err = r.customerRepo.InsertCustomer(ctx, customer)
		if errors.Is(err, repository.ErrDuplicateKey) {
			return fmt.Errorf("%w: phone %s is already registered", ErrValidation, input.Phone)
		}
		return err
	})
	if err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}

// GetByID returns ErrNotFound when the customer does not exist
func (r *Registry) GetByID(ctx context.Context, id string) (model.Customer, error) {
	ctx = r.provider.Readonly(ctx)
	customer, err := r.customerRepo.GetCustomer(ctx, id)
	if err != nil {
		return model.Customer{}, err
	}
	if !customer.Valid {
		return model.Customer{}, fmt.Errorf("%w: customer %q", ErrNotFound, id)
	}
	return customer.Customer, nil
}

// lock must be called inside a transaction
func (r *Registry) lock(ctx context.Context, id string) (model.Customer, error) {
	customer, err := r.customerRepo.LockCustomer(ctx, id)
	if err != nil {
		return model.Customer{}, err
	}
	if !customer.Valid {
		return model.Customer{}, fmt.Errorf("%w: customer %q", ErrNotFound, id)
	}
	return customer.Customer, nil
}

// setStatus must be called inside the transaction holding the customer lock
func (r *Registry) setStatus(ctx context.Context, id string, status model.CustomerStatus, now time.Time) error {
	return r.customerRepo.UpdateCustomerStatus(ctx, id, status, now)
}
