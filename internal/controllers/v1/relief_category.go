package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiracukai/backend/internal/httputil"
	"github.com/shopspring/decimal"
)

// RegisterReliefCategoryRoutes registers the routes for relief categories
// with the RouterGroup that is passed.
func RegisterReliefCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsReliefCategoryList)
	r.GET("", GetReliefCategories)
}

// ReliefCategory is a relief category of the tax schedule together with
// its annual limit.
type ReliefCategory struct {
	Code  string              `json:"code" example:"lifestyle"`                                                              // Code of the category, used in deductions and relief rules
	Name  string              `json:"name" example:"Lifestyle: books, personal computer, smartphone, internet subscription"` // Human readable name from the LHDN relief list
	Limit decimal.NullDecimal `json:"limit" example:"2500" swaggertype:"number"`                                             // The annual limit. Null when the category is uncapped.
}

type ReliefCategoryListResponse struct {
	Data  []ReliefCategory `json:"data"`                                              // List of relief categories
	Error *string          `json:"error" example:"the year parameter must be set"` // The error, if any occurred
}

type ReliefCategoryQuery struct {
	Year int `form:"year"` // The year of assessment to return the categories for
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ReliefCategories
// @Success		204
// @Router			/v1/relief-categories [options]
func OptionsReliefCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get relief categories
// @Description	Returns the relief categories of the tax schedule for a year of assessment
// @Tags			ReliefCategories
// @Produce		json
// @Success		200		{object}	ReliefCategoryListResponse
// @Failure		400		{object}	ReliefCategoryListResponse
// @Failure		404		{object}	ReliefCategoryListResponse
// @Param			year	query		int	true	"The year of assessment"
// @Router			/v1/relief-categories [get]
func GetReliefCategories(c *gin.Context) {
	var query ReliefCategoryQuery
	err := c.BindQuery(&query)
	if err != nil {
		s := fmt.Errorf("year: %w", err).Error()
		c.JSON(http.StatusBadRequest, ReliefCategoryListResponse{
			Error: &s,
		})
		return
	}

	if query.Year == 0 {
		s := errYearParameter.Error()
		c.JSON(http.StatusBadRequest, ReliefCategoryListResponse{
			Error: &s,
		})
		return
	}

	schedule, err := schedules.ForYear(query.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReliefCategoryListResponse{
			Error: &s,
		})
		return
	}

	data := make([]ReliefCategory, 0, len(schedule.Categories))
	for _, category := range schedule.Categories {
		data = append(data, ReliefCategory{
			Code:  category.Code,
			Name:  category.Name,
			Limit: category.Limit,
		})
	}

	c.JSON(http.StatusOK, ReliefCategoryListResponse{Data: data})
}
