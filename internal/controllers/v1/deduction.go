package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiracukai/backend/internal/httputil"
	"github.com/kiracukai/backend/internal/models"
	"github.com/kiracukai/backend/internal/tax"
	"golang.org/x/exp/slices"
)

// RegisterDeductionRoutes registers the routes for deductions with
// the RouterGroup that is passed.
func RegisterDeductionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDeductionList)
		r.GET("", GetDeductions)
		r.POST("", CreateDeductions)
	}

	// Deduction with ID
	{
		r.OPTIONS("/:id", OptionsDeductionDetail)
		r.GET("/:id", GetDeduction)
		r.DELETE("/:id", DeleteDeduction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Deductions
// @Success		204
// @Router			/v1/deductions [options]
func OptionsDeductionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Deductions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/deductions/{id} [options]
func OptionsDeductionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Deduction{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create deductions
// @Description	Creates new deductions. The category code of each deduction must exist in the tax schedule for its year of assessment.
// @Tags			Deductions
// @Produce		json
// @Success		201			{object}	DeductionCreateResponse
// @Failure		400			{object}	DeductionCreateResponse
// @Failure		404			{object}	DeductionCreateResponse
// @Failure		500			{object}	DeductionCreateResponse
// @Param			deductions	body		[]DeductionEditable	true	"Deductions"
// @Router			/v1/deductions [post]
func CreateDeductions(c *gin.Context) {
	var editables []DeductionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DeductionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DeductionCreateResponse{}

	for _, editable := range editables {
		deduction := editable.model()

		// A missing year is caught with a more helpful error on create
		if deduction.Year != 0 {
			err := checkCategory(deduction)
			if err != nil {
				status = r.appendError(err, status)
				continue
			}
		}

		err = models.DB.Create(&deduction).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDeduction(c, deduction)
		r.Data = append(r.Data, DeductionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// checkCategory verifies that the category code of the deduction exists
// in the tax schedule for its year of assessment.
func checkCategory(deduction models.Deduction) error {
	schedule, err := schedules.ForYear(int(deduction.Year))
	if err != nil {
		return err
	}

	for _, category := range schedule.Categories {
		if category.Code == deduction.CategoryCode {
			return nil
		}
	}

	return fmt.Errorf("%w: %q", tax.ErrCategoryUnknown, deduction.CategoryCode)
}

// @Summary		Get deductions
// @Description	Returns a list of deductions
// @Tags			Deductions
// @Produce		json
// @Success		200	{object}	DeductionListResponse
// @Failure		400	{object}	DeductionListResponse
// @Failure		500	{object}	DeductionListResponse
// @Router			/v1/deductions [get]
// @Param			profile		query	string	false	"Filter by profile ID"
// @Param			category	query	string	false	"Filter by relief category code"
// @Param			year		query	uint	false	"Filter by year of assessment"
// @Param			month		query	uint8	false	"Filter by month"
// @Param			attribution	query	string	false	"Filter by attribution"
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first Deduction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Deductions to return. Defaults to 50."
func GetDeductions(c *gin.Context) {
	var filter DeductionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DeductionListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("year ASC, month ASC, name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Deductions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var deductions []models.Deduction
	err = q.Find(&deductions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DeductionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DeductionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Deduction, 0)
	for _, deduction := range deductions {
		data = append(data, newDeduction(c, deduction))
	}

	c.JSON(http.StatusOK, DeductionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get deduction
// @Description	Returns a specific deduction
// @Tags			Deductions
// @Produce		json
// @Success		200	{object}	DeductionResponse
// @Failure		400	{object}	DeductionResponse
// @Failure		404	{object}	DeductionResponse
// @Failure		500	{object}	DeductionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/deductions/{id} [get]
func GetDeduction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DeductionResponse{
			Error: &s,
		})
		return
	}

	var deduction models.Deduction
	err = models.DB.First(&deduction, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DeductionResponse{
			Error: &s,
		})
		return
	}

	data := newDeduction(c, deduction)
	c.JSON(http.StatusOK, DeductionResponse{Data: &data})
}

// @Summary		Delete deduction
// @Description	Deletes a deduction. Deductions cannot be updated, a wrong claim is deleted and entered again.
// @Tags			Deductions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/deductions/{id} [delete]
func DeleteDeduction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var deduction models.Deduction
	err = models.DB.First(&deduction, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&deduction).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
