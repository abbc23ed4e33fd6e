package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiracukai/backend/internal/models"
	kc_uuid "github.com/kiracukai/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	ProfileID uuid.UUID       `json:"profileId" example:"9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"`                                                     // ID of the profile the income belongs to
	Source    string          `json:"source" example:"Rental for the Subang Jaya apartment" default:""`                                            // Where the income comes from
	Amount    decimal.Decimal `json:"amount" example:"1200" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`       // Income amount
	Year      uint            `json:"year" example:"2024"`                                                                                         // The year of assessment the income belongs to
	Month     uint8           `json:"month" example:"3" minimum:"0" maximum:"12" default:"0"`                                                      // The month the income was received in, 0 when it cannot be attributed to a single month
	Note      string          `json:"note" example:"Increased the rent in March" default:""`                                                       // Note about the income
}

// model returns the database resource for the API representation of the editable fields
func (editable IncomeEditable) model() models.Income {
	return models.Income{
		ProfileID: editable.ProfileID,
		Source:    editable.Source,
		Amount:    editable.Amount,
		Year:      editable.Year,
		Month:     editable.Month,
		Note:      editable.Note,
	}
}

type IncomeLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/incomes/2cd0a9bb-7b6c-4cd7-bfa9-c818c0096db5"`    // The income itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profiles/9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"` // The profile this income belongs to
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

// newIncome returns the API v1 representation of the resource
func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			ProfileID: model.ProfileID,
			Source:    model.Source,
			Amount:    model.Amount,
			Year:      model.Year,
			Month:     model.Month,
			Note:      model.Note,
		},
		Links: IncomeLinks{
			Self:    fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
			Profile: fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of Incomes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []IncomeResponse `json:"data"`                                                          // List of created Incomes
}

func (i *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the Income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	ProfileID kc_uuid.UUID `form:"profile"`                    // By ID of the Profile
	Source    string       `form:"source" filterField:"false"` // By source
	Year      uint         `form:"year"`                       // By year of assessment
	Month     uint8        `form:"month"`                      // By month
	Note      string       `form:"note" filterField:"false"`   // By note
	Search    string       `form:"search" filterField:"false"` // By string in source or note
	Offset    uint         `form:"offset" filterField:"false"` // The offset of the first Income returned. Defaults to 0.
	Limit     int          `form:"limit" filterField:"false"`  // Maximum number of Incomes to return. Defaults to 50.
}

func (f IncomeQueryFilter) model() (models.Income, error) {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.Income{
		ProfileID: f.ProfileID.UUID,
		Year:      f.Year,
		Month:     f.Month,
	}, nil
}
