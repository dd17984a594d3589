package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kleinbuch/backend/internal/httputil"
	"github.com/kleinbuch/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterTransferRoutes registers the routes for transfers with
// the RouterGroup that is passed.
func RegisterTransferRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransfers)
		r.GET("", GetTransfers)
		r.POST("", CreateTransfers)
	}

	// Transfer with ID
	{
		r.OPTIONS("/:id", OptionsTransferDetail)
		r.GET("/:id", GetTransfer)
		r.PATCH("/:id", UpdateTransfer)
		r.DELETE("/:id", DeleteTransfer)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Router			/v1/transfers [options]
func OptionsTransfers(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transfers/{id} [options]
func OptionsTransferDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var transfer models.Transfer
	err = models.DB.First(&transfer, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get transfer
// @Description	Returns a specific money movement between the pools
// @Tags			Transfers
// @Produce		json
// @Success		200	{object}	TransferResponse
// @Failure		400	{object}	TransferResponse
// @Failure		404	{object}	TransferResponse
// @Failure		500	{object}	TransferResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transfers/{id} [get]
func GetTransfer(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	var transfer models.Transfer
	err = models.DB.First(&transfer, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	data := newTransfer(c, transfer)
	c.JSON(http.StatusOK, TransferResponse{Data: &data})
}

// @Summary		Get transfers
// @Description	Returns a list of money movements between the pools
// @Tags			Transfers
// @Produce		json
// @Success		200	{object}	TransferListResponse
// @Failure		400	{object}	TransferListResponse
// @Failure		500	{object}	TransferListResponse
// @Router			/v1/transfers [get]
// @Param			date		query	string	false	"Transfers on this day (YYYY-MM-DD)."
// @Param			fromDate	query	string	false	"Transfers at and after this day."
// @Param			untilDate	query	string	false	"Transfers before and at this day."
// @Param			year		query	int		false	"Transfers of this calendar year."
// @Param			direction	query	string	false	"Filter by direction (bank_to_cash or cash_to_bank)"
// @Param			amount		query	string	false	"Filter by amount"
// @Param			offset		query	uint	false	"The offset of the first transfer returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of transfers to return. Defaults to 50."
func GetTransfers(c *gin.Context) {
	var filter TransferQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransferListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()

	var q *gorm.DB
	q = models.DB.Order("datetime(transfers.date) DESC, datetime(transfers.created_at) DESC").Where(&model, queryFields...)

	if !filter.Date.IsZero() {
		q = q.Where("transfers.date >= date(?)", filter.Date.Time()).Where("transfers.date < date(?)", filter.Date.Time().AddDate(0, 0, 1))
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("transfers.date >= date(?)", filter.FromDate.Time())
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("transfers.date < date(?)", filter.UntilDate.Time().AddDate(0, 0, 1))
	}

	if filter.Year != 0 {
		from := time.Date(filter.Year, 1, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("transfers.date >= date(?)", from).Where("transfers.date < date(?)", from.AddDate(1, 0, 0))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 transfers and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var transfers []models.Transfer
	err := q.Find(&transfers).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transfer, 0)
	for _, transfer := range transfers {
		data = append(data, newTransfer(c, transfer))
	}

	c.JSON(http.StatusOK, TransferListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create transfers
// @Description	Creates money movements between the pools from the list of submitted transfer data. The response code is the highest response code number that a single transfer creation would have caused. If it is not equal to 201, at least one transfer has an error.
// @Tags			Transfers
// @Produce		json
// @Success		201			{object}	TransferCreateResponse
// @Failure		400			{object}	TransferCreateResponse
// @Failure		404			{object}	TransferCreateResponse
// @Failure		500			{object}	TransferCreateResponse
// @Param			transfers	body		[]TransferEditable	true	"Transfers"
// @Router			/v1/transfers [post]
func CreateTransfers(c *gin.Context) {
	var editables []TransferEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransferCreateResponse{}

	for _, editable := range editables {
		transfer := editable.model()
		err := models.DB.Create(&transfer).Error
		// Append the error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTransfer(c, transfer)
		r.Data = append(r.Data, TransferResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update transfer
// @Description	Updates an existing money movement. Only values to be updated need to be specified. When the direction changes and the description still is the default of the old direction, the description switches to the default of the new direction.
// @Tags			Transfers
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransferResponse
// @Failure		400			{object}	TransferResponse
// @Failure		404			{object}	TransferResponse
// @Failure		500			{object}	TransferResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transfer	body		TransferEditable	true	"Transfer"
// @Router			/v1/transfers/{id} [patch]
func UpdateTransfer(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	// Get the transfer resource
	var transfer models.Transfer
	err = models.DB.First(&transfer, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, TransferEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	// Bind the update over the current values so that fields the
	// request leaves out keep their value
	update := TransferEditable{
		Date:        transfer.Date,
		Amount:      transfer.Amount,
		Direction:   transfer.Direction,
		Description: transfer.Description,
	}
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	// A direction switch drags the default description along unless the
	// request sets its own
	if update.Direction != transfer.Direction &&
		!slices.Contains(updateFields, "Description") &&
		transfer.Description == models.DefaultTransferDescription(transfer.Direction) {
		update.Description = ""
	}

	replacement := update.model()
	replacement.ID = transfer.ID

	_, err = models.ReplaceTransfer(models.DB, replacement)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&transfer, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	data := newTransfer(c, transfer)
	c.JSON(http.StatusOK, TransferResponse{Data: &data})
}

// @Summary		Delete transfer
// @Description	Deletes a money movement. Deleting a transfer that does not exist is not an error.
// @Tags			Transfers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transfers/{id} [delete]
func DeleteTransfer(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.DeleteTransfer(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
