package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kleinbuch/backend/internal/eur"
	"github.com/kleinbuch/backend/internal/httputil"
	"github.com/kleinbuch/backend/internal/models"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:year", OptionsReport)
	r.GET("/:year", GetReport)
}

type ReportResponse struct {
	Error *string        `json:"error" example:"the year must be a four digit calendar year"` // The error, if any occurred
	Data  *models.Report `json:"data"`                                                        // The report data
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Param			year	path	int	true	"Calendar year of the report"
// @Router			/v1/reports/{year} [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get EÜR report
// @Description	Returns the Einnahmen-Überschuss-Rechnung for a calendar year. Every account of the chart of accounts gets a row, zero sums included. With format=text the report is rendered as a German plain-text statement.
// @Tags			Reports
// @Produce		json
// @Produce		plain
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		500		{object}	ReportResponse
// @Param			year	path		int		true	"Calendar year of the report"
// @Param			format	query		string	false	"Response format, 'json' (default) or 'text'"
// @Router			/v1/reports/{year} [get]
func GetReport(c *gin.Context) {
	var uri URIYear
	if err := c.ShouldBindUri(&uri); err != nil {
		e := errYearInvalid.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &e,
		})
		return
	}

	if uri.Year < 1000 || uri.Year > 9999 {
		e := errYearInvalid.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &e,
		})
		return
	}

	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "text" {
		e := errFormatInvalid.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &e,
		})
		return
	}

	report, err := models.BuildReport(models.DB, uri.Year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &e,
		})
		return
	}

	if format == "text" {
		c.String(http.StatusOK, eur.Render(report))
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Data: &report})
}
