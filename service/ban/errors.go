package ban

import "errors"

// ErrValidation when the input is malformed or violates a uniqueness rule
var ErrValidation = errors.New("validation error")

// ErrNotFound when the customer or the active ban does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict when the requested transition is not allowed from the current state
var ErrConflict = errors.New("conflict")

// ErrIntegrity when the stored state breaks an invariant, e.g. two active bans of one customer
var ErrIntegrity = errors.New("integrity violation")
