package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kleinbuch/backend/internal/accounts"
	"github.com/kleinbuch/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pool is one of the two money pools a booking can affect.
type Pool string

const (
	PoolBank Pool = "bank"
	PoolCash Pool = "cash"
)

// Valid reports whether the pool is one of the two known pools.
func (p Pool) Valid() bool {
	return p == PoolBank || p == PoolCash
}

// Entry is a single cash-basis booking (Buchung): income or expense,
// affecting exactly one payment pool and exactly one account of the
// chart of accounts.
type Entry struct {
	DefaultModel
	Date        types.Day
	Direction   accounts.Category
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Pool        Pool
	Account     accounts.ID
	Description string
}

// BeforeSave validates the entry. A rejected entry is never written,
// so the books stay unchanged.
//
// The date defaults to today when unset, matching the booking form.
func (e *Entry) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Date.IsZero() {
		e.Date = types.DayOf(time.Now().In(time.UTC))
	}

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if e.Description == "" {
		return ErrDescriptionRequired
	}

	if !e.Direction.Valid() {
		return ErrDirectionInvalid
	}

	if !e.Pool.Valid() {
		return ErrPoolInvalid
	}

	account, ok := accounts.ByID(e.Account)
	if !ok {
		return fmt.Errorf("%w: %q", ErrAccountUnknown, e.Account)
	}

	// Category invariant: the account's category must match the
	// direction of the booking, on create and on every edit.
	if account.Category != e.Direction {
		return fmt.Errorf("%w: %q is an %s account", ErrAccountCategoryMismatch, account.ID, account.Category)
	}

	return nil
}

// Signed returns the amount with its direction applied: positive for
// income, negative for expense.
func (e Entry) Signed() decimal.Decimal {
	if e.Direction == accounts.Expense {
		return e.Amount.Neg()
	}

	return e.Amount
}

// ReplaceEntry replaces the stored entry that has the same id with the
// full new record. Replacing an entry that does not exist is not an
// error: it affects nothing, which the first return value reports.
// This keeps an edit racing with a delete harmless.
func ReplaceEntry(db *gorm.DB, entry Entry) (bool, error) {
	var existing Entry
	err := db.First(&existing, "id = ?", entry.ID).Error
	if errors.Is(err, ErrResourceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	// Identity is stable across edits
	entry.CreatedAt = existing.CreatedAt

	err = db.Save(&entry).Error
	if err != nil {
		return false, err
	}

	return true, nil
}

// DeleteEntry removes the entry with the id. There is no soft delete.
// Deleting an entry that does not exist is not an error, the first
// return value reports whether a record was removed.
func DeleteEntry(db *gorm.DB, id uuid.UUID) (bool, error) {
	res := db.Delete(&Entry{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
