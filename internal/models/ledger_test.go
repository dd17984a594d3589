package models_test

import (
	"github.com/kleinbuch/backend/internal/models"
	"github.com/kleinbuch/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestLedgerEmpty() {
	lines, err := models.Ledger(models.DB)

	assert.Nil(suite.T(), err)
	assert.Empty(suite.T(), lines)
}

func (suite *TestSuiteStandard) TestLedgerMergesAndSorts() {
	oldest := incomeEntry(100)
	oldest.Date = types.NewDay(2024, 1, 15)
	oldest = suite.createTestEntry(oldest)

	transfer := suite.createTestTransfer(models.Transfer{
		Date:      types.NewDay(2024, 2, 1),
		Direction: models.BankToCash,
		Amount:    decimal.NewFromFloat(50),
	})

	newest := expenseEntry(30)
	newest.Date = types.NewDay(2024, 3, 1)
	newest = suite.createTestEntry(newest)

	lines, err := models.Ledger(models.DB)
	assert.Nil(suite.T(), err)
	require.Len(suite.T(), lines, 3)

	// Newest date first, entries and transfers interleaved
	assert.Equal(suite.T(), newest.ID, lines[0].ID)
	assert.Equal(suite.T(), models.LineEntry, lines[0].Kind)

	assert.Equal(suite.T(), transfer.ID, lines[1].ID)
	assert.Equal(suite.T(), models.LineTransfer, lines[1].Kind)
	assert.Equal(suite.T(), models.BankToCash, lines[1].TransferDirection)

	assert.Equal(suite.T(), oldest.ID, lines[2].ID)
}

// Same-day lines have a fully specified order, so repeated calls over
// identical input return identical lists.
func (suite *TestSuiteStandard) TestLedgerStableOrder() {
	day := types.NewDay(2024, 5, 5)

	for i := 0; i < 5; i++ {
		entry := incomeEntry(float64(i + 1))
		entry.Date = day
		suite.createTestEntry(entry)
	}

	first, err := models.Ledger(models.DB)
	assert.Nil(suite.T(), err)
	require.Len(suite.T(), first, 5)

	for i := 0; i < 3; i++ {
		again, err := models.Ledger(models.DB)
		assert.Nil(suite.T(), err)
		require.Len(suite.T(), again, 5)

		for j := range first {
			assert.Equal(suite.T(), first[j].ID, again[j].ID)
		}
	}
}

func (suite *TestSuiteStandard) TestYears() {
	years, err := models.Years(models.DB)
	assert.Nil(suite.T(), err)
	assert.Empty(suite.T(), years)

	for _, date := range []types.Day{
		types.NewDay(2023, 7, 1),
		types.NewDay(2025, 1, 1),
		types.NewDay(2023, 12, 31),
	} {
		entry := incomeEntry(10)
		entry.Date = date
		suite.createTestEntry(entry)
	}

	suite.createTestTransfer(models.Transfer{
		Date:      types.NewDay(2024, 6, 1),
		Direction: models.CashToBank,
		Amount:    decimal.NewFromFloat(10),
	})

	years, err = models.Years(models.DB)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), []int{2025, 2024, 2023}, years)
}
