package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/kleinbuch/backend/internal/models"
	"github.com/kleinbuch/backend/internal/types"
	"github.com/shopspring/decimal"
)

type TransferEditable struct {
	Date types.Day `json:"date" example:"2024-03-01"` // Day the money moved. Defaults to today

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"50" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount moved between the pools, always positive

	Direction   models.TransferDirection `json:"direction" example:"bank_to_cash"`            // Which pool the money leaves and which it enters
	Description string                   `json:"description" example:"Barabhebung" default:""` // Defaults to "Barabhebung" or "Bareinzahlung" depending on the direction
}

// model returns the database resource for the API representation of the editable fields
func (editable TransferEditable) model() models.Transfer {
	return models.Transfer{
		Date:        editable.Date,
		Amount:      editable.Amount,
		Direction:   editable.Direction,
		Description: editable.Description,
	}
}

type TransferLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transfers/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transfer itself
}

// Transfer is the representation of a money movement between the two
// pools in API v1.
type Transfer struct {
	models.DefaultModel
	TransferEditable
	Links TransferLinks `json:"links"`
}

// newTransfer returns the API v1 representation of the resource
func newTransfer(c *gin.Context, model models.Transfer) Transfer {
	url := c.GetString(string(models.DBContextURL))

	return Transfer{
		DefaultModel: model.DefaultModel,
		TransferEditable: TransferEditable{
			Date:        model.Date,
			Amount:      model.Amount,
			Direction:   model.Direction,
			Description: model.Description,
		},
		Links: TransferLinks{
			Self: fmt.Sprintf("%s/v1/transfers/%s", url, model.ID),
		},
	}
}

type TransferListResponse struct {
	Data       []Transfer  `json:"data"`                                                    // List of transfers
	Error      *string     `json:"error" example:"the transfer direction is invalid"`       // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                              // Pagination information
}

type TransferCreateResponse struct {
	Error *string            `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  []TransferResponse `json:"data"`                                               // List of created transfers
}

func (t *TransferCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransferResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransferResponse struct {
	Error *string   `json:"error" example:"there is no transfer matching your query"` // The error, if any occurred for this transfer
	Data  *Transfer `json:"data"`                                                     // The transfer data, if creation was successful
}

type TransferQueryFilter struct {
	Date      types.Day                `form:"date" filterField:"false"`      // Transfers on this day
	FromDate  types.Day                `form:"fromDate" filterField:"false"`  // Transfers at and after this day
	UntilDate types.Day                `form:"untilDate" filterField:"false"` // Transfers before and at this day
	Year      int                      `form:"year" filterField:"false"`      // Transfers of this calendar year
	Direction models.TransferDirection `form:"direction"`                     // Direction of the transfer
	Amount    decimal.Decimal          `form:"amount"`                        // Exact amount
	Offset    uint                     `form:"offset" filterField:"false"`    // The offset of the first transfer returned. Defaults to 0.
	Limit     int                      `form:"limit" filterField:"false"`     // Maximum number of transfers to return. Defaults to 50.
}

func (f TransferQueryFilter) model() models.Transfer {
	// This does not set the date fields since they are handled in the
	// controller function
	return TransferEditable{
		Amount:    f.Amount,
		Direction: f.Direction,
	}.model()
}
