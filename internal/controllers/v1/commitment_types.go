package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiracukai/backend/internal/models"
	"github.com/kiracukai/backend/internal/tax"
	"github.com/kiracukai/backend/internal/types"
	kc_uuid "github.com/kiracukai/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// CommitmentEditable represents all user configurable parameters
type CommitmentEditable struct {
	ProfileID uuid.UUID       `json:"profileId" example:"9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"`                                              // ID of the profile the commitment belongs to
	Name      string          `json:"name" example:"Car loan" default:""`                                                                    // Name of the commitment
	Amount    decimal.Decimal `json:"amount" example:"850" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`     // The amount due per payment
	Frequency tax.Frequency   `json:"frequency" example:"monthly"`                                                                           // How often a payment is due. One of monthly, quarterly, yearly or one_time.
	StartDate time.Time       `json:"startDate" example:"2024-01-01T00:00:00Z"`                                                              // The date the first payment is due
	Note      string          `json:"note" example:"7 year tenure, ends 2030" default:""`                                                    // Note about the commitment
	Archived  bool            `json:"archived" example:"true" default:"false"`                                                               // Is the commitment archived?
}

// model returns the database resource for the API representation of the editable fields
func (editable CommitmentEditable) model() models.Commitment {
	return models.Commitment{
		ProfileID: editable.ProfileID,
		Name:      editable.Name,
		Amount:    editable.Amount,
		Frequency: editable.Frequency,
		StartDate: editable.StartDate,
		Note:      editable.Note,
		Archived:  editable.Archived,
	}
}

type CommitmentLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/commitments/110ffd12-5b7a-4e35-b623-6bf26ced9da5"`               // The commitment itself
	Profile    string `json:"profile" example:"https://example.com/api/v1/profiles/9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"`               // The profile this commitment belongs to
	Payments   string `json:"payments" example:"https://example.com/api/v1/commitments/110ffd12-5b7a-4e35-b623-6bf26ced9da5/payments/YYYY-MM"` // The payment records for the commitment
	Projection string `json:"projection" example:"https://example.com/api/v1/commitments/110ffd12-5b7a-4e35-b623-6bf26ced9da5/projection"`     // The payment projection for the commitment
}

type Commitment struct {
	models.DefaultModel
	CommitmentEditable
	Links CommitmentLinks `json:"links"`
}

// newCommitment returns the API v1 representation of the resource
func newCommitment(c *gin.Context, model models.Commitment) Commitment {
	url := c.GetString(string(models.DBContextURL))

	return Commitment{
		DefaultModel: model.DefaultModel,
		CommitmentEditable: CommitmentEditable{
			ProfileID: model.ProfileID,
			Name:      model.Name,
			Amount:    model.Amount,
			Frequency: model.Frequency,
			StartDate: model.StartDate,
			Note:      model.Note,
			Archived:  model.Archived,
		},
		Links: CommitmentLinks{
			Self:       fmt.Sprintf("%s/v1/commitments/%s", url, model.ID),
			Profile:    fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
			Payments:   fmt.Sprintf("%s/v1/commitments/%s/payments/YYYY-MM", url, model.ID),
			Projection: fmt.Sprintf("%s/v1/commitments/%s/projection", url, model.ID),
		},
	}
}

type CommitmentListResponse struct {
	Data       []Commitment `json:"data"`                                                          // List of Commitments
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type CommitmentCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CommitmentResponse `json:"data"`                                                          // List of created Commitments
}

func (c *CommitmentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CommitmentResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CommitmentResponse struct {
	Data  *Commitment `json:"data"`                                                          // Data for the Commitment
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CommitmentQueryFilter struct {
	ProfileID kc_uuid.UUID `form:"profile"`                    // By ID of the Profile
	Name      string       `form:"name" filterField:"false"`   // By name
	Frequency string       `form:"frequency"`                  // By frequency
	Archived  bool         `form:"archived"`                   // Is the commitment archived?
	Note      string       `form:"note" filterField:"false"`   // By note
	Search    string       `form:"search" filterField:"false"` // By string in name or note
	Offset    uint         `form:"offset" filterField:"false"` // The offset of the first Commitment returned. Defaults to 0.
	Limit     int          `form:"limit" filterField:"false"`  // Maximum number of Commitments to return. Defaults to 50.
}

func (f CommitmentQueryFilter) model() (models.Commitment, error) {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.Commitment{
		ProfileID: f.ProfileID.UUID,
		Frequency: tax.Frequency(f.Frequency),
		Archived:  f.Archived,
	}, nil
}

// CommitmentPaymentEditable represents all user configurable parameters
type CommitmentPaymentEditable struct {
	Paid bool   `json:"paid" example:"true" default:"false"`                   // Has the payment for the period been made?
	Note string `json:"note" example:"Paid early with the bonus" default:""` // Note for the payment record
}

// model returns the database resource for the API representation of the editable fields
func (editable CommitmentPaymentEditable) model() models.CommitmentPayment {
	return models.CommitmentPayment{
		Paid: editable.Paid,
		Note: editable.Note,
	}
}

type CommitmentPaymentLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/commitments/110ffd12-5b7a-4e35-b623-6bf26ced9da5/payments/2024-03"` // The payment record itself
	Commitment string `json:"commitment" example:"https://example.com/api/v1/commitments/110ffd12-5b7a-4e35-b623-6bf26ced9da5"`            // The commitment this payment record belongs to
}

type CommitmentPayment struct {
	CommitmentID uuid.UUID   `json:"commitmentId" example:"110ffd12-5b7a-4e35-b623-6bf26ced9da5"` // ID of the commitment this payment record belongs to
	Period       types.Month `json:"period" example:"2024-03-01T00:00:00.000000Z"`                // The payment period. This is always set to 00:00 UTC on the first of the month.
	CommitmentPaymentEditable
	Links CommitmentPaymentLinks `json:"links"`
}

// newCommitmentPayment returns the API v1 representation of the resource
func newCommitmentPayment(c *gin.Context, model models.CommitmentPayment) CommitmentPayment {
	url := c.GetString(string(models.DBContextURL))

	return CommitmentPayment{
		CommitmentID: model.CommitmentID,
		Period:       model.Period,
		CommitmentPaymentEditable: CommitmentPaymentEditable{
			Paid: model.Paid,
			Note: model.Note,
		},
		Links: CommitmentPaymentLinks{
			Self:       fmt.Sprintf("%s/v1/commitments/%s/payments/%s", url, model.CommitmentID, model.Period),
			Commitment: fmt.Sprintf("%s/v1/commitments/%s", url, model.CommitmentID),
		},
	}
}

// getCommitmentPaymentModel returns the payment record for a specific
// commitment and period
func getCommitmentPaymentModel(id uuid.UUID, period types.Month) (models.CommitmentPayment, error) {
	var payment models.CommitmentPayment

	err := models.DB.First(&payment, &models.CommitmentPayment{
		CommitmentID: id,
		Period:       period,
	}).Error
	if err != nil {
		return models.CommitmentPayment{}, err
	}

	return payment, nil
}

type CommitmentPaymentResponse struct {
	Data  *CommitmentPayment `json:"data"`                                                          // Data for the payment record
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// CommitmentProjection is the payment progress of a commitment at a
// point in time. It is computed on request and never stored.
type CommitmentProjection struct {
	ID    uuid.UUID `json:"id" example:"110ffd12-5b7a-4e35-b623-6bf26ced9da5"` // ID of the commitment
	Name  string    `json:"name" example:"Car loan"`                           // Name of the commitment
	AsOf  time.Time `json:"asOf" example:"2024-04-15T00:00:00Z"`               // The date the projection is computed for
	tax.Projection
}

type CommitmentProjectionResponse struct {
	Data  *CommitmentProjection `json:"data"`                                                          // The projection
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
