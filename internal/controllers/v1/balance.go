package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kleinbuch/backend/internal/httputil"
	"github.com/kleinbuch/backend/internal/models"
	"github.com/shopspring/decimal"
)

// RegisterBalanceRoutes registers the routes for balances with
// the RouterGroup that is passed.
func RegisterBalanceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBalances)
	r.GET("", GetBalances)
}

// Balances is the derived current state of both pools. It is computed
// from the books on every request and never stored.
type Balances struct {
	Bank  decimal.Decimal `json:"bank" example:"1150"`  // Current balance of the bank account
	Cash  decimal.Decimal `json:"cash" example:"150"`   // Current balance of the cash box
	Total decimal.Decimal `json:"total" example:"1300"` // Sum of both pools
}

type BalancesResponse struct {
	Error *string   `json:"error" example:"an unknown database error occurred"` // The error, if any occurred
	Data  *Balances `json:"data"`                                               // The balances
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Balances
// @Success		204
// @Router			/v1/balances [options]
func OptionsBalances(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get balances
// @Description	Returns the current balance of both pools, derived from the opening balance and all bookings and transfers.
// @Tags			Balances
// @Produce		json
// @Success		200	{object}	BalancesResponse
// @Failure		500	{object}	BalancesResponse
// @Router			/v1/balances [get]
func GetBalances(c *gin.Context) {
	balances, err := models.PoolBalances(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalancesResponse{
			Error: &e,
		})
		return
	}

	data := Balances{
		Bank:  balances.Bank,
		Cash:  balances.Cash,
		Total: balances.Total(),
	}
	c.JSON(http.StatusOK, BalancesResponse{Data: &data})
}
