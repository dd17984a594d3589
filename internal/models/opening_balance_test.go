package models_test

import (
	"github.com/kleinbuch/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOpeningBalanceDefaultsToZero() {
	balance, err := models.OpeningBalanceValue(models.DB)

	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Bank.IsZero())
	assert.True(suite.T(), balance.Cash.IsZero())
}

func (suite *TestSuiteStandard) TestSetOpeningBalance() {
	_, err := models.SetOpeningBalance(models.DB, models.OpeningBalance{
		Bank: decimal.NewFromFloat(1000),
		Cash: decimal.NewFromFloat(100),
	})
	assert.Nil(suite.T(), err)

	balance, err := models.OpeningBalanceValue(models.DB)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Bank.Equal(decimal.NewFromFloat(1000)))
	assert.True(suite.T(), balance.Cash.Equal(decimal.NewFromFloat(100)))
}

func (suite *TestSuiteStandard) TestSetOpeningBalanceReplacesWholesale() {
	_, err := models.SetOpeningBalance(models.DB, models.OpeningBalance{
		Bank: decimal.NewFromFloat(1000),
		Cash: decimal.NewFromFloat(100),
	})
	assert.Nil(suite.T(), err)

	// A second set replaces both fields, there is only ever one record
	_, err = models.SetOpeningBalance(models.DB, models.OpeningBalance{
		Bank: decimal.NewFromFloat(2500.50),
		Cash: decimal.Zero,
	})
	assert.Nil(suite.T(), err)

	balance, err := models.OpeningBalanceValue(models.DB)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Bank.Equal(decimal.NewFromFloat(2500.50)))
	assert.True(suite.T(), balance.Cash.IsZero())

	var count int64
	models.DB.Model(&models.OpeningBalance{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}
