package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiracukai/backend/internal/models"
	kc_uuid "github.com/kiracukai/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// DeductionEditable represents all user configurable parameters
type DeductionEditable struct {
	ProfileID    uuid.UUID          `json:"profileId" example:"9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"`                                               // ID of the profile the deduction belongs to
	Name         string             `json:"name" example:"Annual dental checkup" default:""`                                                       // What was paid for
	CategoryCode string             `json:"categoryCode" example:"lifestyle"`                                                                      // Code of the relief category the deduction is claimed against
	Amount       decimal.Decimal    `json:"amount" example:"150" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`  // Deduction amount
	Year         uint               `json:"year" example:"2024"`                                                                                   // The year of assessment the deduction is claimed for
	Month        uint8              `json:"month" example:"6" minimum:"0" maximum:"12" default:"0"`                                                // The month of the receipt, 0 when it cannot be attributed to a single month
	Attribution  models.Attribution `json:"attribution" example:"self" default:"self"`                                                             // Whose expense the deduction covers
	Note         string             `json:"note" example:"Receipt is in the tax folder" default:""`                                                // Note about the deduction
	ImportHash   string             `json:"importHash" example:"867e3a26dc0c2f76400eb60eb08fe82d4f18f3b8cdf1031284644995a2aa25ec" default:""`      // The SHA256 hash of a unique combination of values to use in duplicate detection
}

// model returns the database resource for the API representation of the editable fields
func (editable DeductionEditable) model() models.Deduction {
	return models.Deduction{
		ProfileID:    editable.ProfileID,
		Name:         editable.Name,
		CategoryCode: editable.CategoryCode,
		Amount:       editable.Amount,
		Year:         editable.Year,
		Month:        editable.Month,
		Attribution:  editable.Attribution,
		Note:         editable.Note,
		ImportHash:   editable.ImportHash,
	}
}

type DeductionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/deductions/d1b4a4d6-476d-4aa8-ab70-2a6204ba6b67"`  // The deduction itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profiles/9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"` // The profile this deduction belongs to
}

type Deduction struct {
	models.DefaultModel
	DeductionEditable
	Links DeductionLinks `json:"links"`
}

// newDeduction returns the API v1 representation of the resource
func newDeduction(c *gin.Context, model models.Deduction) Deduction {
	url := c.GetString(string(models.DBContextURL))

	return Deduction{
		DefaultModel: model.DefaultModel,
		DeductionEditable: DeductionEditable{
			ProfileID:    model.ProfileID,
			Name:         model.Name,
			CategoryCode: model.CategoryCode,
			Amount:       model.Amount,
			Year:         model.Year,
			Month:        model.Month,
			Attribution:  model.Attribution,
			Note:         model.Note,
			ImportHash:   model.ImportHash,
		},
		Links: DeductionLinks{
			Self:    fmt.Sprintf("%s/v1/deductions/%s", url, model.ID),
			Profile: fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
		},
	}
}

type DeductionListResponse struct {
	Data       []Deduction `json:"data"`                                                          // List of Deductions
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DeductionCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []DeductionResponse `json:"data"`                                                          // List of created Deductions
}

func (d *DeductionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	d.Data = append(d.Data, DeductionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DeductionResponse struct {
	Data  *Deduction `json:"data"`                                                          // Data for the Deduction
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DeductionQueryFilter struct {
	ProfileID    kc_uuid.UUID `form:"profile"`                    // By ID of the Profile
	CategoryCode string       `form:"category"`                   // By relief category code
	Year         uint         `form:"year"`                       // By year of assessment
	Month        uint8        `form:"month"`                      // By month
	Attribution  string       `form:"attribution"`                // By attribution
	Name         string       `form:"name" filterField:"false"`   // By name
	Note         string       `form:"note" filterField:"false"`   // By note
	Search       string       `form:"search" filterField:"false"` // By string in name or note
	Offset       uint         `form:"offset" filterField:"false"` // The offset of the first Deduction returned. Defaults to 0.
	Limit        int          `form:"limit" filterField:"false"`  // Maximum number of Deductions to return. Defaults to 50.
}

func (f DeductionQueryFilter) model() (models.Deduction, error) {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.Deduction{
		ProfileID:    f.ProfileID.UUID,
		CategoryCode: f.CategoryCode,
		Year:         f.Year,
		Month:        f.Month,
		Attribution:  models.Attribution(f.Attribution),
	}, nil
}
