package v1_test

import (
	"net/http"

	v1 "github.com/kleinbuch/backend/internal/controllers/v1"
	"github.com/kleinbuch/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOpeningBalanceOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/opening-balance", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PUT", r.Header().Get("allow"))
}

// TestOpeningBalanceDefault verifies that without a stored opening
// balance both pools are zero, which is not an error.
func (suite *TestSuiteStandard) TestOpeningBalanceDefault() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/opening-balance", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OpeningBalanceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Bank.IsZero())
	assert.True(suite.T(), response.Data.Cash.IsZero())
}

func (suite *TestSuiteStandard) TestOpeningBalanceSet() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/opening-balance", v1.OpeningBalanceEditable{
		Bank: decimal.NewFromFloat(1000),
		Cash: decimal.NewFromFloat(100),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OpeningBalanceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Bank.Equal(decimal.NewFromFloat(1000)))
	assert.True(suite.T(), response.Data.Cash.Equal(decimal.NewFromFloat(100)))
}

// TestOpeningBalanceReplaceWholesale verifies that a PUT replaces the
// whole record, fields that are not sent become zero.
func (suite *TestSuiteStandard) TestOpeningBalanceReplaceWholesale() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/opening-balance", v1.OpeningBalanceEditable{
		Bank: decimal.NewFromFloat(1000),
		Cash: decimal.NewFromFloat(100),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPut, "http://example.com/v1/opening-balance", map[string]any{
		"bank": 500,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/opening-balance", "")
	var response v1.OpeningBalanceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Bank.Equal(decimal.NewFromFloat(500)))
	assert.True(suite.T(), response.Data.Cash.IsZero())
}

func (suite *TestSuiteStandard) TestOpeningBalanceEmptyBody() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/opening-balance", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOpeningBalanceDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/opening-balance", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
