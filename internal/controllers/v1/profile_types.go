package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/kiracukai/backend/internal/models"
)

// ProfileEditable represents all user configurable parameters
type ProfileEditable struct {
	Name     string `json:"name" example:"Aisyah" default:""`                           // Name of the profile
	Note     string `json:"note" example:"Main profile for my own taxes" default:""`    // Note about the profile
	Currency string `json:"currency" example:"MYR" default:"MYR"`                       // ISO 4217 code of the currency amounts are entered in
	Archived bool   `json:"archived" example:"true" default:"false"`                    // Is the profile archived?
}

func (editable ProfileEditable) model() models.Profile {
	return models.Profile{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
		Archived: editable.Archived,
	}
}

type ProfileLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/profiles/9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"`            // The profile itself
	Incomes     string `json:"incomes" example:"https://example.com/api/v1/incomes?profile=9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"`  // Incomes for this profile
	Deductions  string `json:"deductions" example:"https://example.com/api/v1/deductions?profile=9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"` // Deductions for this profile
	PcbRecords  string `json:"pcbRecords" example:"https://example.com/api/v1/pcb-records?profile=9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"` // PCB records for this profile
	Commitments string `json:"commitments" example:"https://example.com/api/v1/commitments?profile=9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"` // Commitments for this profile
	TaxYears    string `json:"taxYears" example:"https://example.com/api/v1/tax-years?profile=9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"` // Tax calculations for this profile
}

type Profile struct {
	models.DefaultModel
	ProfileEditable
	Links ProfileLinks `json:"links"`
}

// newProfile returns the API v1 representation of the resource
func newProfile(c *gin.Context, model models.Profile) Profile {
	url := c.GetString(string(models.DBContextURL))

	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
			Archived: model.Archived,
		},
		Links: ProfileLinks{
			Self:        fmt.Sprintf("%s/v1/profiles/%s", url, model.ID),
			Incomes:     fmt.Sprintf("%s/v1/incomes?profile=%s", url, model.ID),
			Deductions:  fmt.Sprintf("%s/v1/deductions?profile=%s", url, model.ID),
			PcbRecords:  fmt.Sprintf("%s/v1/pcb-records?profile=%s", url, model.ID),
			Commitments: fmt.Sprintf("%s/v1/commitments?profile=%s", url, model.ID),
			TaxYears:    fmt.Sprintf("%s/v1/tax-years?profile=%s", url, model.ID),
		},
	}
}

type ProfileListResponse struct {
	Data       []Profile   `json:"data"`                                                          // List of Profiles
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProfileCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ProfileResponse `json:"data"`                                                          // List of created Profiles
}

func (p *ProfileCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ProfileResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`                                                          // Data for the Profile
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProfileQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Currency string `form:"currency"`                   // By currency
	Archived bool   `form:"archived"`                   // Is the profile archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Profile returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Profiles to return. Defaults to 50.
}

func (f ProfileQueryFilter) model() (models.Profile, error) {
	return models.Profile{
		Currency: f.Currency,
		Archived: f.Archived,
	}, nil
}
