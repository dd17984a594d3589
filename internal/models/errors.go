package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Validation errors. They are returned before anything is written,
	// a rejected record leaves the books unchanged.
	ErrAmountNotPositive        = errors.New("amounts must be larger than zero")
	ErrDescriptionRequired      = errors.New("a description is required")
	ErrDirectionInvalid         = errors.New(`the direction must be "income" or "expense"`)
	ErrPoolInvalid              = errors.New(`the payment pool must be "bank" or "cash"`)
	ErrTransferDirectionInvalid = errors.New(`the transfer direction must be "bank_to_cash" or "cash_to_bank"`)
	ErrAccountUnknown           = errors.New("the account is not in the chart of accounts")
	ErrAccountCategoryMismatch  = errors.New("the account cannot be used with this direction")

	// ErrIDInUse happens when a record is created with an id that
	// already exists. Ids come from a global unique source, so this
	// is a caller error, not something the engine recovers from.
	ErrIDInUse = errors.New("the id is already in use")
)
