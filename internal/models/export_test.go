package models_test

import (
	"github.com/kleinbuch/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportEmpty() {
	data, err := models.Export(models.DB)

	assert.Nil(suite.T(), err)
	assert.NotNil(suite.T(), data.Entries)
	assert.NotNil(suite.T(), data.Transfers)
	assert.Empty(suite.T(), data.Entries)
	assert.Empty(suite.T(), data.Transfers)
	assert.True(suite.T(), data.OpeningBalance.Bank.IsZero())
	assert.True(suite.T(), data.OpeningBalance.Cash.IsZero())
}

func (suite *TestSuiteStandard) TestExport() {
	entry := suite.createTestEntry(incomeEntry(500))
	transfer := suite.createTestTransfer(models.Transfer{
		Direction: models.BankToCash,
		Amount:    decimal.NewFromFloat(50),
	})

	_, err := models.SetOpeningBalance(models.DB, models.OpeningBalance{
		Bank: decimal.NewFromFloat(1000),
		Cash: decimal.NewFromFloat(100),
	})
	assert.Nil(suite.T(), err)

	data, err := models.Export(models.DB)
	assert.Nil(suite.T(), err)

	require.Len(suite.T(), data.Entries, 1)
	assert.Equal(suite.T(), entry.ID, data.Entries[0].ID)

	require.Len(suite.T(), data.Transfers, 1)
	assert.Equal(suite.T(), transfer.ID, data.Transfers[0].ID)

	assert.True(suite.T(), data.OpeningBalance.Bank.Equal(decimal.NewFromFloat(1000)))
	assert.True(suite.T(), data.OpeningBalance.Cash.Equal(decimal.NewFromFloat(100)))
}

func (suite *TestSuiteStandard) TestExportDatabaseClosed() {
	suite.CloseDB()

	_, err := models.Export(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
