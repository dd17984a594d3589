package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Balances holds the derived balance of each payment pool.
type Balances struct {
	Bank decimal.Decimal `json:"bank" example:"1150"`
	Cash decimal.Decimal `json:"cash" example:"150"`
}

// Total returns the combined balance of both pools. Since transfers
// net to zero across the pools, this always equals the opening total
// plus the signed sum of all entries.
func (b Balances) Total() decimal.Decimal {
	return b.Bank.Add(b.Cash)
}

// PoolBalances derives the current balance of both pools from the
// opening balance, all entries, and all transfers.
//
// Balances are derived state: they are recomputed in full on every
// call and never stored, so they cannot drift out of sync with the
// books. One pass per collection, maintaining both running totals.
func PoolBalances(db *gorm.DB) (Balances, error) {
	opening, err := OpeningBalanceValue(db)
	if err != nil {
		return Balances{}, err
	}

	bank := opening.Bank
	cash := opening.Cash

	var entries []Entry
	err = db.Find(&entries).Error
	if err != nil {
		return Balances{}, err
	}

	for _, entry := range entries {
		switch entry.Pool {
		case PoolBank:
			bank = bank.Add(entry.Signed())
		case PoolCash:
			cash = cash.Add(entry.Signed())
		}
	}

	var transfers []Transfer
	err = db.Find(&transfers).Error
	if err != nil {
		return Balances{}, err
	}

	for _, transfer := range transfers {
		switch transfer.Direction {
		case BankToCash:
			bank = bank.Sub(transfer.Amount)
			cash = cash.Add(transfer.Amount)
		case CashToBank:
			cash = cash.Sub(transfer.Amount)
			bank = bank.Add(transfer.Amount)
		}
	}

	return Balances{Bank: bank, Cash: cash}, nil
}
