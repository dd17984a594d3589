package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// openingBalanceID is the primary key of the only opening balance row.
// The opening balance exists once per set of books, not per year.
const openingBalanceID = 1

// OpeningBalance holds the balance of each pool before any recorded
// entry or transfer (Anfangsbestand). It is only ever replaced
// wholesale, never partially updated.
type OpeningBalance struct {
	ID uint `gorm:"primarykey" json:"-"`
	Timestamps
	Bank decimal.Decimal `gorm:"type:DECIMAL(20,8)" json:"bank" example:"1000"`
	Cash decimal.Decimal `gorm:"type:DECIMAL(20,8)" json:"cash" example:"100"`
}

// OpeningBalanceValue returns the current opening balance. When none
// has been set yet, both pools start at zero; that is not an error.
func OpeningBalanceValue(db *gorm.DB) (OpeningBalance, error) {
	var balance OpeningBalance

	err := db.First(&balance, openingBalanceID).Error
	if errors.Is(err, ErrResourceNotFound) {
		return OpeningBalance{ID: openingBalanceID, Bank: decimal.Zero, Cash: decimal.Zero}, nil
	}
	if err != nil {
		return OpeningBalance{}, err
	}

	return balance, nil
}

// SetOpeningBalance replaces the opening balance with the new record.
func SetOpeningBalance(db *gorm.DB, balance OpeningBalance) (OpeningBalance, error) {
	balance.ID = openingBalanceID

	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&balance).Error
	if err != nil {
		return OpeningBalance{}, err
	}

	return balance, nil
}
