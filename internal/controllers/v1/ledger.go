package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kleinbuch/backend/internal/httputil"
	"github.com/kleinbuch/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

// RegisterLedgerRoutes registers the routes for the merged ledger view
// with the RouterGroup that is passed.
func RegisterLedgerRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsLedger)
	r.GET("", GetLedger)

	r.OPTIONS("/years", OptionsLedgerYears)
	r.GET("/years", GetLedgerYears)
}

type LedgerQueryFilter struct {
	Year        int                   `form:"year"`        // Lines of this calendar year
	Kind        models.LedgerLineKind `form:"kind"`        // Only entries or only transfers
	Pool        models.Pool           `form:"pool"`        // Lines touching this pool. Transfers touch both pools
	Description string                `form:"description"` // Glob pattern the description must match, e.g. "*Miete*"
}

type LedgerResponse struct {
	Error *string             `json:"error" example:"an unknown database error occurred"` // The error, if any occurred
	Data  []models.LedgerLine `json:"data"`                                               // The ledger lines, newest date first
}

type LedgerYearsResponse struct {
	Error *string `json:"error" example:"an unknown database error occurred"` // The error, if any occurred
	Data  []int   `json:"data" example:"2025,2024"`                           // All years with at least one line, newest first
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledger
// @Success		204
// @Router			/v1/ledger [options]
func OptionsLedger(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledger
// @Success		204
// @Router			/v1/ledger/years [options]
func OptionsLedgerYears(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get ledger
// @Description	Returns bookings and transfers as one list, newest date first. Lines on the same day keep a stable order across requests.
// @Tags			Ledger
// @Produce		json
// @Success		200	{object}	LedgerResponse
// @Failure		400	{object}	LedgerResponse
// @Failure		500	{object}	LedgerResponse
// @Router			/v1/ledger [get]
// @Param			year		query	int		false	"Only lines of this calendar year"
// @Param			kind		query	string	false	"Only lines of this kind (entry or transfer)"
// @Param			pool		query	string	false	"Only lines touching this pool (bank or cash). Transfers touch both pools"
// @Param			description	query	string	false	"Glob pattern the description must match, e.g. *Miete*"
func GetLedger(c *gin.Context) {
	var filter LedgerQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, LedgerResponse{
			Error: &s,
		})
		return
	}

	lines, err := models.Ledger(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &e,
		})
		return
	}

	data := make([]models.LedgerLine, 0, len(lines))
	for _, line := range lines {
		if filter.Year != 0 && line.Date.Year() != filter.Year {
			continue
		}

		if filter.Kind != "" && line.Kind != filter.Kind {
			continue
		}

		// Transfers move money between the pools, they touch both
		if filter.Pool != "" && line.Kind == models.LineEntry && line.Pool != filter.Pool {
			continue
		}

		if filter.Description != "" && !glob.Glob(filter.Description, line.Description) {
			continue
		}

		data = append(data, line)
	}

	c.JSON(http.StatusOK, LedgerResponse{Data: data})
}

// @Summary		Get ledger years
// @Description	Returns all calendar years that have at least one booking or transfer, newest first. A year selector is driven by this.
// @Tags			Ledger
// @Produce		json
// @Success		200	{object}	LedgerYearsResponse
// @Failure		500	{object}	LedgerYearsResponse
// @Router			/v1/ledger/years [get]
func GetLedgerYears(c *gin.Context) {
	years, err := models.Years(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerYearsResponse{
			Error: &e,
		})
		return
	}

	if years == nil {
		years = make([]int, 0)
	}

	c.JSON(http.StatusOK, LedgerYearsResponse{Data: years})
}
