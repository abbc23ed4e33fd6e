package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiracukai/backend/internal/httputil"
	"github.com/kiracukai/backend/internal/models"
	"github.com/kiracukai/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterCommitmentRoutes registers the routes for commitments with
// the RouterGroup that is passed.
func RegisterCommitmentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCommitmentList)
		r.GET("", GetCommitments)
		r.POST("", CreateCommitments)
	}

	// Commitment with ID
	{
		r.OPTIONS("/:id", OptionsCommitmentDetail)
		r.GET("/:id", GetCommitment)
		r.PATCH("/:id", UpdateCommitment)
		r.DELETE("/:id", DeleteCommitment)
	}

	// Payment record for a specific period
	{
		r.OPTIONS("/:id/payments/:month", OptionsCommitmentPayment)
		r.GET("/:id/payments/:month", GetCommitmentPayment)
		r.PATCH("/:id/payments/:month", UpdateCommitmentPayment)
	}

	// Payment projection
	{
		r.OPTIONS("/:id/projection", OptionsCommitmentProjection)
		r.GET("/:id/projection", GetCommitmentProjection)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Commitments
// @Success		204
// @Router			/v1/commitments [options]
func OptionsCommitmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Commitments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/commitments/{id} [options]
func OptionsCommitmentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Commitment{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create commitments
// @Description	Creates new commitments
// @Tags			Commitments
// @Produce		json
// @Success		201			{object}	CommitmentCreateResponse
// @Failure		400			{object}	CommitmentCreateResponse
// @Failure		404			{object}	CommitmentCreateResponse
// @Failure		500			{object}	CommitmentCreateResponse
// @Param			commitments	body		[]CommitmentEditable	true	"Commitments"
// @Router			/v1/commitments [post]
func CreateCommitments(c *gin.Context) {
	var editables []CommitmentEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CommitmentCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CommitmentCreateResponse{}

	for _, editable := range editables {
		commitment := editable.model()

		err = models.DB.Create(&commitment).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCommitment(c, commitment)
		r.Data = append(r.Data, CommitmentResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get commitments
// @Description	Returns a list of commitments
// @Tags			Commitments
// @Produce		json
// @Success		200	{object}	CommitmentListResponse
// @Failure		400	{object}	CommitmentListResponse
// @Failure		500	{object}	CommitmentListResponse
// @Router			/v1/commitments [get]
// @Param			profile		query	string	false	"Filter by profile ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			frequency	query	string	false	"Filter by frequency"
// @Param			archived	query	bool	false	"Is the commitment archived?"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first Commitment returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Commitments to return. Defaults to 50."
func GetCommitments(c *gin.Context) {
	var filter CommitmentQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Commitments and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var commitments []models.Commitment
	err = q.Find(&commitments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CommitmentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Commitment, 0)
	for _, commitment := range commitments {
		data = append(data, newCommitment(c, commitment))
	}

	c.JSON(http.StatusOK, CommitmentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get commitment
// @Description	Returns a specific commitment
// @Tags			Commitments
// @Produce		json
// @Success		200	{object}	CommitmentResponse
// @Failure		400	{object}	CommitmentResponse
// @Failure		404	{object}	CommitmentResponse
// @Failure		500	{object}	CommitmentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/commitments/{id} [get]
func GetCommitment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentResponse{
			Error: &s,
		})
		return
	}

	var commitment models.Commitment
	err = models.DB.First(&commitment, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentResponse{
			Error: &s,
		})
		return
	}

	data := newCommitment(c, commitment)
	c.JSON(http.StatusOK, CommitmentResponse{Data: &data})
}

// @Summary		Update commitment
// @Description	Update an existing commitment. Only values to be updated need to be specified.
// @Tags			Commitments
// @Accept			json
// @Produce		json
// @Success		200			{object}	CommitmentResponse
// @Failure		400			{object}	CommitmentResponse
// @Failure		404			{object}	CommitmentResponse
// @Failure		500			{object}	CommitmentResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			commitment	body		CommitmentEditable	true	"Commitment"
// @Router			/v1/commitments/{id} [patch]
func UpdateCommitment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentResponse{
			Error: &s,
		})
		return
	}

	var commitment models.Commitment
	err = models.DB.First(&commitment, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CommitmentEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentResponse{
			Error: &s,
		})
		return
	}

	var data CommitmentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&commitment).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentResponse{
			Error: &s,
		})
		return
	}

	r := newCommitment(c, commitment)
	c.JSON(http.StatusOK, CommitmentResponse{Data: &r})
}

// @Summary		Delete commitment
// @Description	Deletes a commitment
// @Tags			Commitments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/commitments/{id} [delete]
func DeleteCommitment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var commitment models.Commitment
	err = models.DB.First(&commitment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&commitment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Commitments
// @Success		204
// @Failure		400		{object}	httpError
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		URIMonth	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/commitments/{id}/payments/{month} [options]
func OptionsCommitmentPayment(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Get payment record
// @Description	Returns the payment record of a commitment for a specific period. If no record exists yet, a record with the zero values is returned.
// @Tags			Commitments
// @Produce		json
// @Success		200		{object}	CommitmentPaymentResponse
// @Failure		400		{object}	CommitmentPaymentResponse
// @Failure		404		{object}	CommitmentPaymentResponse
// @Failure		500		{object}	CommitmentPaymentResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		URIMonth	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/commitments/{id}/payments/{month} [get]
func GetCommitmentPayment(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentPaymentResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Commitment{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentPaymentResponse{
			Error: &s,
		})
		return
	}

	payment, err := getCommitmentPaymentModel(uri.ID.UUID, types.MonthOf(uri.Month))
	var data CommitmentPayment
	if err != nil {
		// If there is no payment record in the database, return one with the zero values
		if errors.Is(err, models.ErrResourceNotFound) {
			data = newCommitmentPayment(c, models.CommitmentPayment{
				CommitmentID: uri.ID.UUID,
				Period:       types.MonthOf(uri.Month),
			})
			c.JSON(http.StatusOK, CommitmentPaymentResponse{Data: &data})
			return
		}

		s := err.Error()
		c.JSON(status(err), CommitmentPaymentResponse{
			Error: &s,
		})
		return
	}

	data = newCommitmentPayment(c, payment)
	c.JSON(http.StatusOK, CommitmentPaymentResponse{Data: &data})
}

// @Summary		Update payment record
// @Description	Changes the payment record of a commitment for a specific period. If there is no record for the period yet, this endpoint transparently creates it.
// @Tags			Commitments
// @Produce		json
// @Success		200		{object}	CommitmentPaymentResponse
// @Success		201		{object}	CommitmentPaymentResponse
// @Failure		400		{object}	CommitmentPaymentResponse
// @Failure		404		{object}	CommitmentPaymentResponse
// @Failure		500		{object}	CommitmentPaymentResponse
// @Param			id		path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		URIMonth					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		CommitmentPaymentEditable	true	"CommitmentPayment"
// @Router			/v1/commitments/{id}/payments/{month} [patch]
func UpdateCommitmentPayment(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentPaymentResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Commitment{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentPaymentResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CommitmentPaymentEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentPaymentResponse{
			Error: &s,
		})
		return
	}

	var data CommitmentPaymentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentPaymentResponse{
			Error: &s,
		})
		return
	}

	payment, err := getCommitmentPaymentModel(uri.ID.UUID, types.MonthOf(uri.Month))

	// If no record exists for the period yet, create one
	if err != nil && errors.Is(err, models.ErrResourceNotFound) {
		model := data.model()
		model.CommitmentID = uri.ID.UUID
		model.Period = types.MonthOf(uri.Month)

		err = models.DB.Create(&model).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CommitmentPaymentResponse{
				Error: &s,
			})
			return
		}

		apiResource := newCommitmentPayment(c, model)
		c.JSON(http.StatusCreated, CommitmentPaymentResponse{Data: &apiResource})
		return
	}

	// Handle all other errors
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentPaymentResponse{
			Error: &s,
		})
		return
	}

	// Perform the actual update
	err = models.DB.Model(&payment).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentPaymentResponse{
			Error: &s,
		})
		return
	}

	apiResource := newCommitmentPayment(c, payment)
	c.JSON(http.StatusOK, CommitmentPaymentResponse{Data: &apiResource})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Commitments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/commitments/{id}/projection [options]
func OptionsCommitmentProjection(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Commitment{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get payment projection
// @Description	Returns the payment progress of a commitment as of a specific date. All periods before the current one count as paid, the current period uses its payment record.
// @Tags			Commitments
// @Produce		json
// @Success		200		{object}	CommitmentProjectionResponse
// @Failure		400		{object}	CommitmentProjectionResponse
// @Failure		404		{object}	CommitmentProjectionResponse
// @Failure		500		{object}	CommitmentProjectionResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			asOf	query		string	false	"The date to compute the projection for, YYYY-MM-DD. Defaults to today."
// @Router			/v1/commitments/{id}/projection [get]
func GetCommitmentProjection(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentProjectionResponse{
			Error: &s,
		})
		return
	}

	var query QueryDate
	err = c.BindQuery(&query)
	if err != nil {
		s := fmt.Errorf("asOf: %w", err).Error()
		c.JSON(http.StatusBadRequest, CommitmentProjectionResponse{
			Error: &s,
		})
		return
	}

	var commitment models.Commitment
	err = models.DB.First(&commitment, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentProjectionResponse{
			Error: &s,
		})
		return
	}

	asOf := query.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	projection, err := commitment.Projection(models.DB, asOf)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommitmentProjectionResponse{
			Error: &s,
		})
		return
	}

	data := CommitmentProjection{
		ID:         commitment.ID,
		Name:       commitment.Name,
		AsOf:       asOf,
		Projection: projection,
	}

	c.JSON(http.StatusOK, CommitmentProjectionResponse{Data: &data})
}
