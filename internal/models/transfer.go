package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kleinbuch/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransferDirection states which pool a transfer drains and which it
// fills. Exactly one pool decreases and the other increases by the
// amount, so a transfer nets to zero across the combined books.
type TransferDirection string

const (
	BankToCash TransferDirection = "bank_to_cash"
	CashToBank TransferDirection = "cash_to_bank"
)

// Valid reports whether the direction is one of the two known values.
func (d TransferDirection) Valid() bool {
	return d == BankToCash || d == CashToBank
}

// Transfer is a movement of money between the two payment pools
// (Geldtransit). It has its own id space, independent of entries.
type Transfer struct {
	DefaultModel
	Date        types.Day
	Direction   TransferDirection
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description string
}

// BeforeSave validates the transfer. The date defaults to today and an
// empty description defaults to the usual booking text: "Barabhebung"
// for cash withdrawals, "Bareinzahlung" for cash deposits.
func (t *Transfer) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = types.DayOf(time.Now().In(time.UTC))
	}

	if !t.Direction.Valid() {
		return ErrTransferDirectionInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Description == "" {
		t.Description = DefaultTransferDescription(t.Direction)
	}

	return nil
}

// DefaultTransferDescription returns the usual booking text for a
// transfer direction.
func DefaultTransferDescription(direction TransferDirection) string {
	if direction == BankToCash {
		return "Barabhebung"
	}

	return "Bareinzahlung"
}

// ReplaceTransfer replaces the stored transfer that has the same id
// with the full new record. Same semantics as ReplaceEntry: a missing
// id affects nothing and is not an error.
func ReplaceTransfer(db *gorm.DB, transfer Transfer) (bool, error) {
	var existing Transfer
	err := db.First(&existing, "id = ?", transfer.ID).Error
	if errors.Is(err, ErrResourceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	transfer.CreatedAt = existing.CreatedAt

	err = db.Save(&transfer).Error
	if err != nil {
		return false, err
	}

	return true, nil
}

// DeleteTransfer removes the transfer with the id. Deleting a transfer
// that does not exist is not an error.
func DeleteTransfer(db *gorm.DB, id uuid.UUID) (bool, error) {
	res := db.Delete(&Transfer{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
