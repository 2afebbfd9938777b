package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

//go:generate moq -out repository_mocks.go . Provider Customer Ban Delivery

// Readonly for wrapping sqlx functionalities
type Readonly interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Transaction for wrapping sqlx functionalities
type Transaction interface {
	Readonly
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

var _ Transaction = &sqlx.DB{}
var _ Transaction = &sqlx.Tx{}

// Provider for creating Readonly and Transaction
type Provider interface {
	// Transact runs fn inside a transaction, a nested call reuses the outer transaction
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
	Readonly(ctx context.Context) context.Context
}

type providerImpl struct {
	db *sqlx.DB
}

// NewProvider ...
func NewProvider(db *sqlx.DB) Provider {
	return &providerImpl{
		db: db,
	}
}

// Transact ...
func (p *providerImpl) Transact(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, existed := ctx.Value(ctxTxKey).(ctxTxValue); existed {
		return fn(ctx)
	}

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	ctx = context.WithValue(ctx, ctxTxKey, ctxTxValue{
		tx: tx,
	})
	ctx = context.WithValue(ctx, ctxReadonlyKey, ctxReadonlyValue{
		db: tx,
	})

	err = fn(ctx)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// Readonly ...
func (p *providerImpl) Readonly(ctx context.Context) context.Context {
	if _, existed := ctx.Value(ctxReadonlyKey).(ctxReadonlyValue); existed {
		return ctx
	}
	return context.WithValue(ctx, ctxReadonlyKey, ctxReadonlyValue{
		db: p.db,
	})
}
