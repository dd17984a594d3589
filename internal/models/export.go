package models

import (
	"gorm.io/gorm"
)

// ExportData is the complete state of the books, used for backups.
// Derived values (balances, reports) are not part of it, they are
// always recomputed.
type ExportData struct {
	Entries        []Entry        `json:"entries"`
	Transfers      []Transfer     `json:"transfers"`
	OpeningBalance OpeningBalance `json:"openingBalance"`
}

// Export returns all stored collections.
func Export(db *gorm.DB) (ExportData, error) {
	data := ExportData{
		Entries:   make([]Entry, 0),
		Transfers: make([]Transfer, 0),
	}

	err := db.Find(&data.Entries).Error
	if err != nil {
		return ExportData{}, err
	}

	err = db.Find(&data.Transfers).Error
	if err != nil {
		return ExportData{}, err
	}

	data.OpeningBalance, err = OpeningBalanceValue(db)
	if err != nil {
		return ExportData{}, err
	}

	return data, nil
}
