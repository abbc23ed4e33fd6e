package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiracukai/backend/internal/httputil"
	"github.com/kiracukai/backend/internal/models"
	"github.com/kiracukai/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterPcbRecordRoutes registers the routes for PCB records with
// the RouterGroup that is passed.
func RegisterPcbRecordRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPcbRecordList)
		r.GET("", GetPcbRecords)
	}

	// PCB record for a specific profile and month
	{
		r.OPTIONS("/:id/:month", OptionsPcbRecordDetail)
		r.GET("/:id/:month", GetPcbRecord)
		r.PATCH("/:id/:month", UpdatePcbRecord)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PcbRecords
// @Success		204
// @Router			/v1/pcb-records [options]
func OptionsPcbRecordList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PcbRecords
// @Success		204
// @Failure		400		{object}	httpError
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		URIMonth	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pcb-records/{id}/{month} [options]
func OptionsPcbRecordDetail(c *gin.Context) {
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

// @Summary		Get PCB records
// @Description	Returns a list of PCB records
// @Tags			PcbRecords
// @Produce		json
// @Success		200	{object}	PcbRecordListResponse
// @Failure		400	{object}	PcbRecordListResponse
// @Failure		500	{object}	PcbRecordListResponse
// @Router			/v1/pcb-records [get]
// @Param			profile	query	string	false	"Filter by profile ID"
// @Param			year	query	uint	false	"Filter by year of assessment"
// @Param			offset	query	uint	false	"The offset of the first PCB record returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of PCB records to return. Defaults to 50."
func GetPcbRecords(c *gin.Context) {
	var filter PcbRecordQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PcbRecordListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("month ASC, profile_id ASC").
		Where(&filterModel, queryFields...)

	// Restrict the records to a year of assessment
	if slices.Contains(setFields, "Year") {
		q = q.Where("month >= date(?) AND month < date(?)", types.NewMonth(int(filter.Year), 1), types.NewMonth(int(filter.Year)+1, 1))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 PCB records and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var records []models.PcbRecord
	err = q.Find(&records).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PcbRecordListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PcbRecordListResponse{
			Error: &e,
		})
		return
	}

	data := make([]PcbRecord, 0)
	for _, record := range records {
		data = append(data, newPcbRecord(c, record))
	}

	c.JSON(http.StatusOK, PcbRecordListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get PCB record
// @Description	Returns the PCB record of a profile for a specific month. If no record exists yet, a record with the zero values is returned.
// @Tags			PcbRecords
// @Produce		json
// @Success		200		{object}	PcbRecordResponse
// @Failure		400		{object}	PcbRecordResponse
// @Failure		404		{object}	PcbRecordResponse
// @Failure		500		{object}	PcbRecordResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		URIMonth	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pcb-records/{id}/{month} [get]
func GetPcbRecord(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PcbRecordResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Profile{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PcbRecordResponse{
			Error: &s,
		})
		return
	}

	record, err := getPcbRecordModel(uri.ID.UUID, types.MonthOf(uri.Month))
	var data PcbRecord
	if err != nil {
		// If there is no PCB record in the database, return one with the zero values
		if errors.Is(err, models.ErrResourceNotFound) {
			data = newPcbRecord(c, models.PcbRecord{
				ProfileID: uri.ID.UUID,
				Month:     types.MonthOf(uri.Month),
			})
			c.JSON(http.StatusOK, PcbRecordResponse{Data: &data})
			return
		}

		s := err.Error()
		c.JSON(status(err), PcbRecordResponse{
			Error: &s,
		})
		return
	}

	data = newPcbRecord(c, record)
	c.JSON(http.StatusOK, PcbRecordResponse{Data: &data})
}

// @Summary		Update PCB record
// @Description	Changes the PCB record of a profile for a specific month. If there is no record for the month yet, this endpoint transparently creates it.
// @Tags			PcbRecords
// @Produce		json
// @Success		200			{object}	PcbRecordResponse
// @Success		201			{object}	PcbRecordResponse
// @Failure		400			{object}	PcbRecordResponse
// @Failure		404			{object}	PcbRecordResponse
// @Failure		500			{object}	PcbRecordResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month		path		URIMonth			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			pcbRecord	body		PcbRecordEditable	true	"PcbRecord"
// @Router			/v1/pcb-records/{id}/{month} [patch]
func UpdatePcbRecord(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PcbRecordResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Profile{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PcbRecordResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PcbRecordEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PcbRecordResponse{
			Error: &s,
		})
		return
	}

	var data PcbRecordEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PcbRecordResponse{
			Error: &s,
		})
		return
	}

	record, err := getPcbRecordModel(uri.ID.UUID, types.MonthOf(uri.Month))

	// If no record exists for the month yet, create one
	if err != nil && errors.Is(err, models.ErrResourceNotFound) {
		model := data.model()
		model.ProfileID = uri.ID.UUID
		model.Month = types.MonthOf(uri.Month)

		err = models.DB.Create(&model).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PcbRecordResponse{
				Error: &s,
			})
			return
		}

		apiResource := newPcbRecord(c, model)
		c.JSON(http.StatusCreated, PcbRecordResponse{Data: &apiResource})
		return
	}

	// Handle all other errors
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PcbRecordResponse{
			Error: &s,
		})
		return
	}

	// Perform the actual update
	err = models.DB.Model(&record).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PcbRecordResponse{
			Error: &s,
		})
		return
	}

	apiResource := newPcbRecord(c, record)
	c.JSON(http.StatusOK, PcbRecordResponse{Data: &apiResource})
}
