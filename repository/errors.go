package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicateKey when an insert violates a unique index
var ErrDuplicateKey = errors.New("duplicate key")

// ErrNoRowsAffected when an update matched nothing
var ErrNoRowsAffected = errors.New("no rows affected")

const mysqlErrDuplicateEntry = 1062

func mapInsertError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, mysqlErr.Message)
	}
	return err
}
