package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiracukai/backend/internal/httputil"
	"github.com/kiracukai/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterReliefRuleRoutes registers the routes for relief rules with
// the RouterGroup that is passed.
func RegisterReliefRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsReliefRuleList)
		r.GET("", GetReliefRules)
		r.POST("", CreateReliefRules)
	}

	// ReliefRule with ID
	{
		r.OPTIONS("/:id", OptionsReliefRuleDetail)
		r.GET("/:id", GetReliefRule)
		r.PATCH("/:id", UpdateReliefRule)
		r.DELETE("/:id", DeleteReliefRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ReliefRules
// @Success		204
// @Router			/v1/relief-rules [options]
func OptionsReliefRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ReliefRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/relief-rules/{id} [options]
func OptionsReliefRuleDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.ReliefRule{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create relief rules
// @Description	Creates new relief rules for the import preview
// @Tags			ReliefRules
// @Produce		json
// @Success		201			{object}	ReliefRuleCreateResponse
// @Failure		400			{object}	ReliefRuleCreateResponse
// @Failure		500			{object}	ReliefRuleCreateResponse
// @Param			reliefRules	body		[]ReliefRuleEditable	true	"ReliefRules"
// @Router			/v1/relief-rules [post]
func CreateReliefRules(c *gin.Context) {
	var editables []ReliefRuleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReliefRuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ReliefRuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model()

		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newReliefRule(c, rule)
		r.Data = append(r.Data, ReliefRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get relief rules
// @Description	Returns a list of relief rules
// @Tags			ReliefRules
// @Produce		json
// @Success		200	{object}	ReliefRuleListResponse
// @Failure		400	{object}	ReliefRuleListResponse
// @Failure		500	{object}	ReliefRuleListResponse
// @Router			/v1/relief-rules [get]
// @Param			priority	query	uint	false	"Filter by priority"
// @Param			match		query	string	false	"Filter by match pattern"
// @Param			category	query	string	false	"Filter by relief category code"
// @Param			offset		query	uint	false	"The offset of the first relief rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of relief rules to return. Defaults to 50."
func GetReliefRules(c *gin.Context) {
	var filter ReliefRuleQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReliefRuleListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("priority ASC, match ASC").
		Where(&filterModel, queryFields...)

	// Filter for match containing the query string or explicitly empty one
	if filter.Match != "" {
		q = q.Where("match LIKE ?", fmt.Sprintf("%%%s%%", filter.Match))
	} else if slices.Contains(setFields, "Match") {
		q = q.Where("match = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 relief rules and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var rules []models.ReliefRule
	err = q.Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReliefRuleListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReliefRuleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]ReliefRule, 0)
	for _, rule := range rules {
		data = append(data, newReliefRule(c, rule))
	}

	c.JSON(http.StatusOK, ReliefRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get relief rule
// @Description	Returns a specific relief rule
// @Tags			ReliefRules
// @Produce		json
// @Success		200	{object}	ReliefRuleResponse
// @Failure		400	{object}	ReliefRuleResponse
// @Failure		404	{object}	ReliefRuleResponse
// @Failure		500	{object}	ReliefRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/relief-rules/{id} [get]
func GetReliefRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReliefRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.ReliefRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReliefRuleResponse{
			Error: &s,
		})
		return
	}

	data := newReliefRule(c, rule)
	c.JSON(http.StatusOK, ReliefRuleResponse{Data: &data})
}

// @Summary		Update relief rule
// @Description	Update an existing relief rule. Only values to be updated need to be specified.
// @Tags			ReliefRules
// @Accept			json
// @Produce		json
// @Success		200			{object}	ReliefRuleResponse
// @Failure		400			{object}	ReliefRuleResponse
// @Failure		404			{object}	ReliefRuleResponse
// @Failure		500			{object}	ReliefRuleResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			reliefRule	body		ReliefRuleEditable	true	"ReliefRule"
// @Router			/v1/relief-rules/{id} [patch]
func UpdateReliefRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReliefRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.ReliefRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReliefRuleResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ReliefRuleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReliefRuleResponse{
			Error: &s,
		})
		return
	}

	var data ReliefRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReliefRuleResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReliefRuleResponse{
			Error: &s,
		})
		return
	}

	r := newReliefRule(c, rule)
	c.JSON(http.StatusOK, ReliefRuleResponse{Data: &r})
}

// @Summary		Delete relief rule
// @Description	Deletes a relief rule
// @Tags			ReliefRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/relief-rules/{id} [delete]
func DeleteReliefRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var rule models.ReliefRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
