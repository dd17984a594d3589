package v1_test

import (
	"net/http"

	v1 "github.com/kleinbuch/backend/internal/controllers/v1"
	"github.com/kleinbuch/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExport() {
	entry := createTestEntry(suite.T(), v1.EntryEditable{Amount: decimal.NewFromFloat(500)})
	transfer := createTestTransfer(suite.T(), v1.TransferEditable{Amount: decimal.NewFromFloat(50)})

	putBody := v1.OpeningBalanceEditable{Bank: decimal.NewFromFloat(1000), Cash: decimal.NewFromFloat(100)}
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/opening-balance", putBody)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Contains(suite.T(), r.Header().Get("content-disposition"), "attachment")

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	require.Len(suite.T(), response.Data.Entries, 1)
	assert.Equal(suite.T(), entry.Data.ID, response.Data.Entries[0].ID)

	require.Len(suite.T(), response.Data.Transfers, 1)
	assert.Equal(suite.T(), transfer.Data.ID, response.Data.Transfers[0].ID)

	assert.True(suite.T(), response.Data.OpeningBalance.Bank.Equal(decimal.NewFromFloat(1000)))
}

func (suite *TestSuiteStandard) TestExportDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
