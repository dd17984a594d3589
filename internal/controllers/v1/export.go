package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kleinbuch/backend/internal/httputil"
	"github.com/kleinbuch/backend/internal/models"
)

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

type ExportResponse struct {
	Error *string            `json:"error" example:"an unknown database error occurred"` // The error, if any occurred
	Data  *models.ExportData `json:"data"`                                               // The complete books
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export everything
// @Description	Returns all stored data for backups. Derived values are not part of the export, they are recomputed on import.
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	ExportResponse
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	data, err := models.Export(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{
			Error: &e,
		})
		return
	}

	c.Header("content-disposition", `attachment; filename="kleinbuch.json"`)
	c.JSON(http.StatusOK, ExportResponse{Data: &data})
}
