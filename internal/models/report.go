package models

import (
	"github.com/kleinbuch/backend/internal/accounts"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportRow is one line item of the EÜR. Rows exist for every account
// of the chart of accounts, zero-valued rows included: the statutory
// layout does not hide unused line items.
type ReportRow struct {
	Account accounts.ID     `json:"account" example:"miete"`
	Name    string          `json:"name" example:"Miete"`
	Sum     decimal.Decimal `json:"sum" example:"300"`
}

// ResultLabel states whether a fiscal year closed with a profit or a
// loss. The reported result is the absolute value, the sign is carried
// by the label only.
type ResultLabel string

const (
	Gewinn  ResultLabel = "Gewinn"
	Verlust ResultLabel = "Verlust"
)

// Report is the Einnahmen-Überschuss-Rechnung for one fiscal year.
type Report struct {
	Year         int             `json:"year" example:"2024"`
	Income       []ReportRow     `json:"income"`
	Expense      []ReportRow     `json:"expense"`
	TotalIncome  decimal.Decimal `json:"totalIncome" example:"500"`
	TotalExpense decimal.Decimal `json:"totalExpense" example:"300"`
	Result       decimal.Decimal `json:"result" example:"200"`
	Label        ResultLabel     `json:"label" example:"Gewinn"`

	// Unclassified collects amounts of entries whose account id is not
	// in the chart of accounts. This can only happen with corrupted
	// stored data. Such amounts are excluded from the category sums
	// and from the result, but surfaced here instead of dropped.
	Unclassified decimal.Decimal `json:"unclassified" example:"0"`
}

// BuildReport aggregates all entries of the calendar year into the
// statutory income statement.
//
// The year of an entry is the year component of its booking date, not
// a timezone-shifted interpretation. An empty year yields a report
// with all rows zero and a result of zero, which is valid, not an
// error.
func BuildReport(db *gorm.DB, year int) (Report, error) {
	report := Report{
		Year:         year,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Unclassified: decimal.Zero,
	}

	// One row per account, in chart-of-accounts order
	rowIndex := make(map[accounts.ID]int)
	for _, account := range accounts.OfCategory(accounts.Income) {
		report.Income = append(report.Income, ReportRow{Account: account.ID, Name: account.Name, Sum: decimal.Zero})
		rowIndex[account.ID] = len(report.Income) - 1
	}
	for _, account := range accounts.OfCategory(accounts.Expense) {
		report.Expense = append(report.Expense, ReportRow{Account: account.ID, Name: account.Name, Sum: decimal.Zero})
		rowIndex[account.ID] = len(report.Expense) - 1
	}

	var entries []Entry
	err := db.Find(&entries).Error
	if err != nil {
		return Report{}, err
	}

	for _, entry := range entries {
		if entry.Date.Year() != year {
			continue
		}

		account, ok := accounts.ByID(entry.Account)
		if !ok {
			// Corrupted stored data must not crash the report
			report.Unclassified = report.Unclassified.Add(entry.Amount)
			continue
		}

		// The account's category decides the section. An entry whose
		// direction disagrees with its account cannot be attributed to
		// a statutory line item, so it goes to the unclassified bucket
		// as well.
		if account.Category != entry.Direction {
			report.Unclassified = report.Unclassified.Add(entry.Amount)
			continue
		}

		i := rowIndex[account.ID]
		switch entry.Direction {
		case accounts.Income:
			report.Income[i].Sum = report.Income[i].Sum.Add(entry.Amount)
		case accounts.Expense:
			report.Expense[i].Sum = report.Expense[i].Sum.Add(entry.Amount)
		}
	}

	for _, row := range report.Income {
		report.TotalIncome = report.TotalIncome.Add(row.Sum)
	}
	for _, row := range report.Expense {
		report.TotalExpense = report.TotalExpense.Add(row.Sum)
	}

	net := report.TotalIncome.Sub(report.TotalExpense)
	if net.IsNegative() {
		report.Label = Verlust
	} else {
		report.Label = Gewinn
	}
	report.Result = net.Abs()

	return report, nil
}
