package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/kiracukai/backend/internal/models"
)

// ReliefRuleEditable represents all user configurable parameters
type ReliefRuleEditable struct {
	Priority     uint   `json:"priority" example:"1"`                    // The priority of the rule, the rule with the lowest priority is checked first
	Match        string `json:"match" example:"Klinik*"`                 // The glob pattern to match the name of an imported line against
	CategoryCode string `json:"categoryCode" example:"medical_serious"` // Code of the relief category matching lines are assigned to
}

// model returns the database resource for the API representation of the editable fields
func (editable ReliefRuleEditable) model() models.ReliefRule {
	return models.ReliefRule{
		Priority:     editable.Priority,
		Match:        editable.Match,
		CategoryCode: editable.CategoryCode,
	}
}

type ReliefRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/relief-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The relief rule itself
}

type ReliefRule struct {
	models.DefaultModel
	ReliefRuleEditable
	Links ReliefRuleLinks `json:"links"`
}

// newReliefRule returns the API v1 representation of the resource
func newReliefRule(c *gin.Context, model models.ReliefRule) ReliefRule {
	url := c.GetString(string(models.DBContextURL))

	return ReliefRule{
		DefaultModel: model.DefaultModel,
		ReliefRuleEditable: ReliefRuleEditable{
			Priority:     model.Priority,
			Match:        model.Match,
			CategoryCode: model.CategoryCode,
		},
		Links: ReliefRuleLinks{
			Self: fmt.Sprintf("%s/v1/relief-rules/%s", url, model.ID),
		},
	}
}

type ReliefRuleListResponse struct {
	Data       []ReliefRule `json:"data"`                                                          // List of relief rules
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type ReliefRuleCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ReliefRuleResponse `json:"data"`                                                          // List of created relief rules
}

func (r *ReliefRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ReliefRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ReliefRuleResponse struct {
	Data  *ReliefRule `json:"data"`                                                          // Data for the relief rule
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ReliefRuleQueryFilter struct {
	Priority     uint   `form:"priority"`                   // By priority
	Match        string `form:"match" filterField:"false"`  // By match pattern
	CategoryCode string `form:"category"`                   // By relief category code
	Offset       uint   `form:"offset" filterField:"false"` // The offset of the first relief rule returned. Defaults to 0.
	Limit        int    `form:"limit" filterField:"false"`  // Maximum number of relief rules to return. Defaults to 50.
}

func (f ReliefRuleQueryFilter) model() (models.ReliefRule, error) {
	// Match is not set here since the controller function
	// handles it with a fuzzy filter
	return models.ReliefRule{
		Priority:     f.Priority,
		CategoryCode: f.CategoryCode,
	}, nil
}
