package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiracukai/backend/internal/models"
	"github.com/kiracukai/backend/internal/types"
	kc_uuid "github.com/kiracukai/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// PcbRecordEditable represents all user configurable parameters
type PcbRecordEditable struct {
	GrossSalary decimal.Decimal `json:"grossSalary" example:"5200" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Gross base salary for the month
	Bonus       decimal.Decimal `json:"bonus" example:"0" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`          // Bonus payments
	Allowances  decimal.Decimal `json:"allowances" example:"300" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`   // Taxable allowances
	Commission  decimal.Decimal `json:"commission" example:"0" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`     // Commission payments
	EpfEmployee decimal.Decimal `json:"epfEmployee" example:"572" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`  // Employee share of the EPF contribution
	Socso       decimal.Decimal `json:"socso" example:"24.75" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`      // Employee share of the SOCSO contribution
	Eis         decimal.Decimal `json:"eis" example:"9.9" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`          // Employee share of the EIS contribution
	Zakat       decimal.Decimal `json:"zakat" example:"0" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`          // Zakat paid through the payroll
	PcbAmount   decimal.Decimal `json:"pcbAmount" example:"163.45" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // PCB the employer withheld for the month
	Note        string          `json:"note" example:"Includes the annual increment" default:""`                                                    // Note for the record
}

// model returns the database resource for the API representation of the editable fields
func (editable PcbRecordEditable) model() models.PcbRecord {
	return models.PcbRecord{
		GrossSalary: editable.GrossSalary,
		Bonus:       editable.Bonus,
		Allowances:  editable.Allowances,
		Commission:  editable.Commission,
		EpfEmployee: editable.EpfEmployee,
		Socso:       editable.Socso,
		Eis:         editable.Eis,
		Zakat:       editable.Zakat,
		PcbAmount:   editable.PcbAmount,
		Note:        editable.Note,
	}
}

type PcbRecordLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/pcb-records/9e60cfc3-aa81-4f2f-a08a-4324c29f4c28/2024-03"` // The PCB record itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profiles/9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"`         // The profile this record belongs to
}

type PcbRecord struct {
	ProfileID uuid.UUID   `json:"profileId" example:"9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"` // ID of the profile this record belongs to
	Month     types.Month `json:"month" example:"2024-03-01T00:00:00.000000Z"`              // The month. This is always set to 00:00 UTC on the first of the month.
	PcbRecordEditable
	Links PcbRecordLinks `json:"links"`
}

// newPcbRecord returns the API v1 representation of the resource
func newPcbRecord(c *gin.Context, model models.PcbRecord) PcbRecord {
	url := c.GetString(string(models.DBContextURL))

	return PcbRecord{
		ProfileID: model.ProfileID,
		Month:     model.Month,
		PcbRecordEditable: PcbRecordEditable{
			GrossSalary: model.GrossSalary,
			Bonus:       model.Bonus,
			Allowances:  model.Allowances,
			Commission:  model.Commission,
			EpfEmployee: model.EpfEmployee,
			Socso:       model.Socso,
			Eis:         model.Eis,
			Zakat:       model.Zakat,
			PcbAmount:   model.PcbAmount,
			Note:        model.Note,
		},
		Links: PcbRecordLinks{
			Self:    fmt.Sprintf("%s/v1/pcb-records/%s/%s", url, model.ProfileID, model.Month),
			Profile: fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
		},
	}
}

// getPcbRecordModel returns the PCB record for a specific profile and month
//
// It is the PCB record equivalent for getting a model by ID
func getPcbRecordModel(id uuid.UUID, month types.Month) (models.PcbRecord, error) {
	var record models.PcbRecord

	err := models.DB.First(&record, &models.PcbRecord{
		ProfileID: id,
		Month:     month,
	}).Error
	if err != nil {
		return models.PcbRecord{}, err
	}

	return record, nil
}

type PcbRecordResponse struct {
	Data  *PcbRecord `json:"data"`                                                          // Data for the PCB record
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PcbRecordListResponse struct {
	Data       []PcbRecord `json:"data"`                                                          // List of PCB records
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PcbRecordQueryFilter struct {
	ProfileID kc_uuid.UUID `form:"profile"`                    // By ID of the Profile
	Year      uint         `form:"year" filterField:"false"`   // By year of assessment
	Offset    uint         `form:"offset" filterField:"false"` // The offset of the first PCB record returned. Defaults to 0.
	Limit     int          `form:"limit" filterField:"false"`  // Maximum number of PCB records to return. Defaults to 50.
}

func (f PcbRecordQueryFilter) model() (models.PcbRecord, error) {
	// The year is not set here since it filters for a range
	// of months in the controller function
	return models.PcbRecord{
		ProfileID: f.ProfileID.UUID,
	}, nil
}
