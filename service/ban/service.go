package ban

import (
	"context"

	"github.com/QuangTung97/customer-ban/model"
)

//go:generate otelwrap --out service_wrappers.go . IService

// IService is the external interface of the ban lifecycle
type IService interface {
	Register(ctx context.Context, input RegisterInput) (model.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (model.Customer, error)

	ImposeBan(
		ctx context.Context, customerID string, reason string, durationDays uint32, staffID string,
	) (model.BanRecord, error)
	LiftBan(ctx context.Context, customerID string, staffID string) (model.BanRecord, error)
	ExpireBan(ctx context.Context, customerID string) (ExpireResult, error)

	GetBanHistory(ctx context.Context, customerID string) ([]model.BanRecord, error)
	GetCustomerStatus(ctx context.Context, customerID string) (model.CustomerStatus, error)
}
