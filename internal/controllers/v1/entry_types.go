package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/kleinbuch/backend/internal/accounts"
	"github.com/kleinbuch/backend/internal/models"
	"github.com/kleinbuch/backend/internal/types"
	"github.com/shopspring/decimal"
)

type EntryEditable struct {
	Date types.Day `json:"date" example:"2024-03-01"` // Day the money flowed. Defaults to today

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the booking, always positive

	Direction   accounts.Category `json:"direction" example:"expense"`         // Whether money came in or went out
	Pool        models.Pool       `json:"pool" example:"bank"`                 // The payment pool the booking affects
	Account     accounts.ID       `json:"account" example:"miete"`             // The account of the chart of accounts
	Description string            `json:"description" example:"Miete März"`    // What the booking was for
}

// model returns the database resource for the API representation of the editable fields
func (editable EntryEditable) model() models.Entry {
	return models.Entry{
		Date:        editable.Date,
		Amount:      editable.Amount,
		Direction:   editable.Direction,
		Pool:        editable.Pool,
		Account:     editable.Account,
		Description: editable.Description,
	}
}

type EntryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/entries/d430d7c3-d14c-4712-9336-ee56965a6673"` // The entry itself
}

// Entry is the representation of a booking in API v1.
type Entry struct {
	models.DefaultModel
	EntryEditable
	Links EntryLinks `json:"links"`
}

// newEntry returns the API v1 representation of the resource
func newEntry(c *gin.Context, model models.Entry) Entry {
	url := c.GetString(string(models.DBContextURL))

	return Entry{
		DefaultModel: model.DefaultModel,
		EntryEditable: EntryEditable{
			Date:        model.Date,
			Amount:      model.Amount,
			Direction:   model.Direction,
			Pool:        model.Pool,
			Account:     model.Account,
			Description: model.Description,
		},
		Links: EntryLinks{
			Self: fmt.Sprintf("%s/v1/entries/%s", url, model.ID),
		},
	}
}

type EntryListResponse struct {
	Data       []Entry     `json:"data"`                                                 // List of entries
	Error      *string     `json:"error" example:"the year must be a four digit calendar year"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                           // Pagination information
}

type EntryCreateResponse struct {
	Error *string         `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  []EntryResponse `json:"data"`                                               // List of created entries
}

func (t *EntryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, EntryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EntryResponse struct {
	Error *string `json:"error" example:"there is no entry matching your query"` // The error, if any occurred for this entry
	Data  *Entry  `json:"data"`                                                  // The entry data, if creation was successful
}

type EntryQueryFilter struct {
	Date        types.Day         `form:"date" filterField:"false"`      // Entries booked on this day
	FromDate    types.Day         `form:"fromDate" filterField:"false"`  // Entries at and after this day
	UntilDate   types.Day         `form:"untilDate" filterField:"false"` // Entries before and at this day
	Year        int               `form:"year" filterField:"false"`      // Entries of this calendar year
	Direction   accounts.Category `form:"direction"`                     // Direction of the booking
	Pool        models.Pool       `form:"pool"`                          // Payment pool of the booking
	Account     accounts.ID       `form:"account"`                       // Account of the chart of accounts
	Description string            `form:"description" filterField:"false"` // Description contains this string
	Amount      decimal.Decimal   `form:"amount"`                        // Exact amount
	Offset      uint              `form:"offset" filterField:"false"`    // The offset of the first entry returned. Defaults to 0.
	Limit       int               `form:"limit" filterField:"false"`     // Maximum number of entries to return. Defaults to 50.
}

func (f EntryQueryFilter) model() models.Entry {
	// This does not set the string or date fields since they are
	// handled in the controller function
	return EntryEditable{
		Amount:    f.Amount,
		Direction: f.Direction,
		Pool:      f.Pool,
		Account:   f.Account,
	}.model()
}
