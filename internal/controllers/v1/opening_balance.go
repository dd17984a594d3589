package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kleinbuch/backend/internal/httputil"
	"github.com/kleinbuch/backend/internal/models"
	"github.com/shopspring/decimal"
)

// RegisterOpeningBalanceRoutes registers the routes for the opening
// balance with the RouterGroup that is passed.
func RegisterOpeningBalanceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsOpeningBalance)
	r.GET("", GetOpeningBalance)
	r.PUT("", UpdateOpeningBalance)
}

type OpeningBalanceEditable struct {
	Bank decimal.Decimal `json:"bank" example:"1000"` // Money in the bank account before the first booking
	Cash decimal.Decimal `json:"cash" example:"100"`  // Money in the cash box before the first booking
}

type OpeningBalanceLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/opening-balance"` // The opening balance itself
}

// OpeningBalance is the representation of the Anfangsbestand in API v1.
// There is exactly one, it has no id and it is only replaced as a whole.
type OpeningBalance struct {
	OpeningBalanceEditable
	Links OpeningBalanceLinks `json:"links"`
}

func newOpeningBalance(c *gin.Context, model models.OpeningBalance) OpeningBalance {
	url := c.GetString(string(models.DBContextURL))

	return OpeningBalance{
		OpeningBalanceEditable: OpeningBalanceEditable{
			Bank: model.Bank,
			Cash: model.Cash,
		},
		Links: OpeningBalanceLinks{
			Self: fmt.Sprintf("%s/v1/opening-balance", url),
		},
	}
}

type OpeningBalanceResponse struct {
	Error *string         `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  *OpeningBalance `json:"data"`                                               // The opening balance data
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			OpeningBalance
// @Success		204
// @Router			/v1/opening-balance [options]
func OptionsOpeningBalance(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get opening balance
// @Description	Returns the opening balance of both pools. When none has been set, both pools are zero.
// @Tags			OpeningBalance
// @Produce		json
// @Success		200	{object}	OpeningBalanceResponse
// @Failure		500	{object}	OpeningBalanceResponse
// @Router			/v1/opening-balance [get]
func GetOpeningBalance(c *gin.Context) {
	balance, err := models.OpeningBalanceValue(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OpeningBalanceResponse{
			Error: &e,
		})
		return
	}

	data := newOpeningBalance(c, balance)
	c.JSON(http.StatusOK, OpeningBalanceResponse{Data: &data})
}

// @Summary		Set opening balance
// @Description	Replaces the opening balance wholesale. Fields that are not sent are set to zero.
// @Tags			OpeningBalance
// @Accept			json
// @Produce		json
// @Success		200		{object}	OpeningBalanceResponse
// @Failure		400		{object}	OpeningBalanceResponse
// @Failure		500		{object}	OpeningBalanceResponse
// @Param			balance	body		OpeningBalanceEditable	true	"Opening balance"
// @Router			/v1/opening-balance [put]
func UpdateOpeningBalance(c *gin.Context) {
	var editable OpeningBalanceEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OpeningBalanceResponse{
			Error: &e,
		})
		return
	}

	balance, err := models.SetOpeningBalance(models.DB, models.OpeningBalance{
		Bank: editable.Bank,
		Cash: editable.Cash,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OpeningBalanceResponse{
			Error: &e,
		})
		return
	}

	data := newOpeningBalance(c, balance)
	c.JSON(http.StatusOK, OpeningBalanceResponse{Data: &data})
}
