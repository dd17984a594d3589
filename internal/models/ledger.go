package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kleinbuch/backend/internal/accounts"
	"github.com/kleinbuch/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// LedgerLineKind tells entries and transfers apart in the merged view.
type LedgerLineKind string

const (
	LineEntry    LedgerLineKind = "entry"
	LineTransfer LedgerLineKind = "transfer"
)

// LedgerLine is one row of the merged chronological view over entries
// and transfers (Buchungsübersicht).
type LedgerLine struct {
	Kind        LedgerLineKind  `json:"kind" example:"entry"`
	ID          uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Date        types.Day       `json:"date" example:"2024-03-01"`
	CreatedAt   time.Time       `json:"createdAt" example:"2024-03-02T19:28:44.491514Z"`
	Amount      decimal.Decimal `json:"amount" example:"500"`
	Description string          `json:"description" example:"Monatsmiete Büro"`

	// Set for entries only
	Direction accounts.Category `json:"direction,omitempty" example:"expense"`
	Pool      Pool              `json:"pool,omitempty" example:"bank"`
	Account   accounts.ID       `json:"account,omitempty" example:"miete"`

	// Set for transfers only
	TransferDirection TransferDirection `json:"transferDirection,omitempty" example:"bank_to_cash"`
}

// Ledger returns entries and transfers as one list, newest date first.
//
// Same-day lines are ordered by creation time descending, ties on that
// by id, so the order is fully specified and stable across calls for
// identical input.
func Ledger(db *gorm.DB) ([]LedgerLine, error) {
	var entries []Entry
	err := db.Find(&entries).Error
	if err != nil {
		return nil, err
	}

	var transfers []Transfer
	err = db.Find(&transfers).Error
	if err != nil {
		return nil, err
	}

	lines := make([]LedgerLine, 0, len(entries)+len(transfers))
	for _, entry := range entries {
		lines = append(lines, LedgerLine{
			Kind:        LineEntry,
			ID:          entry.ID,
			Date:        entry.Date,
			CreatedAt:   entry.CreatedAt,
			Amount:      entry.Amount,
			Description: entry.Description,
			Direction:   entry.Direction,
			Pool:        entry.Pool,
			Account:     entry.Account,
		})
	}
	for _, transfer := range transfers {
		lines = append(lines, LedgerLine{
			Kind:              LineTransfer,
			ID:                transfer.ID,
			Date:              transfer.Date,
			CreatedAt:         transfer.CreatedAt,
			Amount:            transfer.Amount,
			Description:       transfer.Description,
			TransferDirection: transfer.Direction,
		})
	}

	slices.SortStableFunc(lines, func(a, b LedgerLine) int {
		if !a.Date.Equal(b.Date) {
			if a.Date.After(b.Date) {
				return -1
			}
			return 1
		}

		if !a.CreatedAt.Equal(b.CreatedAt) {
			if a.CreatedAt.After(b.CreatedAt) {
				return -1
			}
			return 1
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return lines, nil
}

// Years returns all calendar years that have at least one entry or
// transfer, newest first. The year selector of a UI is driven by this.
func Years(db *gorm.DB) ([]int, error) {
	lines, err := Ledger(db)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	var years []int
	for _, line := range lines {
		year := line.Date.Year()
		if !seen[year] {
			seen[year] = true
			years = append(years, year)
		}
	}

	slices.SortFunc(years, func(a, b int) int { return b - a })

	return years, nil
}
