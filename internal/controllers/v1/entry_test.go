package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/kleinbuch/backend/internal/accounts"
	v1 "github.com/kleinbuch/backend/internal/controllers/v1"
	"github.com/kleinbuch/backend/internal/models"
	"github.com/kleinbuch/backend/internal/types"
	"github.com/kleinbuch/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEntriesOptions verifies that the HTTP OPTIONS response for /entries/{id} is correct.
func (suite *TestSuiteStandard) TestEntriesOptions() {
	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return createTestEntry(suite.T(), v1.EntryEditable{Amount: decimal.NewFromFloat(31)}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/entries", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestEntriesCreate() {
	entry := createTestEntry(suite.T(), v1.EntryEditable{
		Date:        types.NewDay(2024, 3, 1),
		Amount:      decimal.NewFromFloat(500),
		Direction:   accounts.Income,
		Pool:        models.PoolBank,
		Account:     accounts.ErloeseKleinunternehmer,
		Description: "Beratung Kunde A",
	})

	require.NotNil(suite.T(), entry.Data)
	assert.Equal(suite.T(), "Beratung Kunde A", entry.Data.Description)
	assert.True(suite.T(), entry.Data.Amount.Equal(decimal.NewFromFloat(500)))
	assert.NotEqual(suite.T(), uuid.Nil, entry.Data.ID)
	assert.Contains(suite.T(), entry.Data.Links.Self, "http://example.com/v1/entries/")
}

// TestEntriesCreateInvalid verifies that invalid bookings are rejected
// with the correct status and do not change the books.
func (suite *TestSuiteStandard) TestEntriesCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Negative amount", []v1.EntryEditable{{Amount: decimal.NewFromFloat(-10), Direction: accounts.Income, Pool: models.PoolBank, Account: accounts.ErloeseKleinunternehmer, Description: "x"}}},
		{"Unknown account", []v1.EntryEditable{{Amount: decimal.NewFromFloat(10), Direction: accounts.Expense, Pool: models.PoolBank, Account: "kaffeekasse", Description: "x"}}},
		{"Category mismatch", []v1.EntryEditable{{Amount: decimal.NewFromFloat(10), Direction: accounts.Income, Pool: models.PoolBank, Account: accounts.Miete, Description: "x"}}},
		{"Invalid pool", []v1.EntryEditable{{Amount: decimal.NewFromFloat(10), Direction: accounts.Income, Pool: "sock", Account: accounts.ErloeseKleinunternehmer, Description: "x"}}},
		{"Missing description", []v1.EntryEditable{{Amount: decimal.NewFromFloat(10), Direction: accounts.Income, Pool: models.PoolBank, Account: accounts.ErloeseKleinunternehmer}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/entries", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}

	// Nothing was written
	var count int64
	suite.Assert().Nil(models.DB.Model(&models.Entry{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestEntriesCreateEmptyBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/entries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEntriesGetSingle() {
	entry := createTestEntry(suite.T(), v1.EntryEditable{Amount: decimal.NewFromFloat(100)})

	r := test.Request(suite.T(), http.MethodGet, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), entry.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestEntriesGetSingleNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/entries/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestEntriesGetFiltered() {
	_ = createTestEntry(suite.T(), v1.EntryEditable{
		Date:        types.NewDay(2024, 1, 10),
		Amount:      decimal.NewFromFloat(500),
		Direction:   accounts.Income,
		Pool:        models.PoolBank,
		Account:     accounts.ErloeseKleinunternehmer,
		Description: "Workshop",
	})
	_ = createTestEntry(suite.T(), v1.EntryEditable{
		Date:        types.NewDay(2024, 2, 1),
		Amount:      decimal.NewFromFloat(300),
		Direction:   accounts.Expense,
		Pool:        models.PoolCash,
		Account:     accounts.Miete,
		Description: "Miete Februar",
	})
	_ = createTestEntry(suite.T(), v1.EntryEditable{
		Date:        types.NewDay(2023, 12, 31),
		Amount:      decimal.NewFromFloat(42),
		Direction:   accounts.Expense,
		Pool:        models.PoolBank,
		Account:     accounts.Ware,
		Description: "Silvester Einkauf",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Direction income", "direction=income", 1},
		{"Direction expense", "direction=expense", 2},
		{"Pool cash", "pool=cash", 1},
		{"Account", "account=miete", 1},
		{"Year", "year=2024", 2},
		{"Description", "description=Miete", 1},
		{"From date", "fromDate=2024-01-01", 2},
		{"Until date", "untilDate=2023-12-31", 1},
		{"Exact date", "date=2024-02-01", 1},
		{"Amount", "amount=500", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
		{"No match", "description=Kaffee", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/entries?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.EntryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestEntriesGetSorted() {
	older := createTestEntry(suite.T(), v1.EntryEditable{Date: types.NewDay(2024, 1, 1), Amount: decimal.NewFromFloat(1)})
	newer := createTestEntry(suite.T(), v1.EntryEditable{Date: types.NewDay(2024, 6, 1), Amount: decimal.NewFromFloat(2)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EntryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), newer.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), older.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestEntriesUpdate() {
	entry := createTestEntry(suite.T(), v1.EntryEditable{
		Amount:      decimal.NewFromFloat(100),
		Description: "Before the edit",
	})

	r := test.Request(suite.T(), http.MethodPatch, entry.Data.Links.Self, map[string]any{
		"description": "After the edit",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	// Identity is stable, fields that were not sent keep their value
	assert.Equal(suite.T(), entry.Data.ID, updated.Data.ID)
	assert.Equal(suite.T(), "After the edit", updated.Data.Description)
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromFloat(100)))
}

// TestEntriesUpdateDirectionSwitch verifies that switching the direction
// without sending an account resets the account to the default of the
// new direction.
func (suite *TestSuiteStandard) TestEntriesUpdateDirectionSwitch() {
	entry := createTestEntry(suite.T(), v1.EntryEditable{
		Amount:    decimal.NewFromFloat(100),
		Direction: accounts.Income,
		Account:   accounts.ErloeseKleinunternehmer,
	})

	r := test.Request(suite.T(), http.MethodPatch, entry.Data.Links.Self, map[string]any{
		"direction": accounts.Expense,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), accounts.Expense, updated.Data.Direction)
	assert.Equal(suite.T(), accounts.DefaultFor(accounts.Expense).ID, updated.Data.Account)
}

func (suite *TestSuiteStandard) TestEntriesUpdateDirectionSwitchWithAccount() {
	entry := createTestEntry(suite.T(), v1.EntryEditable{
		Amount:    decimal.NewFromFloat(100),
		Direction: accounts.Income,
		Account:   accounts.ErloeseKleinunternehmer,
	})

	r := test.Request(suite.T(), http.MethodPatch, entry.Data.Links.Self, map[string]any{
		"direction": accounts.Expense,
		"account":   accounts.Ware,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), accounts.Ware, updated.Data.Account)
}

func (suite *TestSuiteStandard) TestEntriesUpdateInvalid() {
	entry := createTestEntry(suite.T(), v1.EntryEditable{Amount: decimal.NewFromFloat(100)})

	r := test.Request(suite.T(), http.MethodPatch, entry.Data.Links.Self, map[string]any{
		"amount": -1,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The stored booking is unchanged
	r = test.Request(suite.T(), http.MethodGet, entry.Data.Links.Self, "")
	var response v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(100)))
}

func (suite *TestSuiteStandard) TestEntriesUpdateNotFound() {
	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/entries/%s", uuid.New()), map[string]any{
		"description": "x",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestEntriesDelete() {
	entry := createTestEntry(suite.T(), v1.EntryEditable{Amount: decimal.NewFromFloat(100)})

	r := test.Request(suite.T(), http.MethodDelete, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Deleting the same booking again changes nothing and is no error
	r = test.Request(suite.T(), http.MethodDelete, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

// TestEntriesDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconnected.
func (suite *TestSuiteStandard) TestEntriesDatabaseError() {
	tests := []struct {
		name   string // Name of the test
		path   string // Path to send request to
		method string // HTTP method to use
		body   string // The request body
	}{
		{"GET Collection", "", http.MethodGet, ""},
		{"OPTIONS Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodOptions, ""},
		{"GET Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodGet, ""},
		{"PATCH Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodPatch, ""},
		{"DELETE Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodDelete, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/entries%s", tt.path), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}
