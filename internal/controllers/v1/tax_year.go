package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiracukai/backend/internal/httputil"
	"github.com/kiracukai/backend/internal/models"
	"github.com/kiracukai/backend/internal/tax"
	kc_uuid "github.com/kiracukai/backend/internal/uuid"
)

// RegisterTaxYearRoutes registers the routes for tax years with
// the RouterGroup that is passed.
func RegisterTaxYearRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTaxYear)
	r.GET("", GetTaxYear)
}

// TaxYear is the complete tax picture of a profile for one year of
// assessment. It is computed on request and never stored.
type TaxYear struct {
	ID   uuid.UUID `json:"id" example:"9e60cfc3-aa81-4f2f-a08a-4324c29f4c28"` // ID of the profile
	Name string    `json:"name" example:"Aisyah binti Rahman"`                // Name of the profile
	tax.Calculation
}

type TaxYearResponse struct {
	Data  *TaxYear `json:"data"`                                              // The tax year
	Error *string  `json:"error" example:"the profile parameter must be set"` // The error, if any occurred
}

type TaxYearQuery struct {
	ProfileID kc_uuid.UUID `form:"profile"` // ID of the profile to compute the tax year for
	Year      int          `form:"year"`    // The year of assessment
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			TaxYears
// @Success		204
// @Router			/v1/tax-years [options]
func OptionsTaxYear(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get tax year
// @Description	Computes the complete tax picture of a profile for a year of assessment: the relief breakdown with category limits applied, the chargeable income, the progressive tax, the savings from relief and the settlement against the PCB withheld.
// @Tags			TaxYears
// @Produce		json
// @Success		200		{object}	TaxYearResponse
// @Failure		400		{object}	TaxYearResponse
// @Failure		404		{object}	TaxYearResponse
// @Failure		500		{object}	TaxYearResponse
// @Param			profile	query		string	true	"ID of the profile"
// @Param			year	query		int		true	"The year of assessment"
// @Router			/v1/tax-years [get]
func GetTaxYear(c *gin.Context) {
	var query TaxYearQuery
	err := c.BindQuery(&query)
	if err != nil {
		s := fmt.Errorf("profile: %w", err).Error()
		c.JSON(http.StatusBadRequest, TaxYearResponse{
			Error: &s,
		})
		return
	}

	if query.ProfileID == kc_uuid.Nil {
		s := errProfileParameter.Error()
		c.JSON(http.StatusBadRequest, TaxYearResponse{
			Error: &s,
		})
		return
	}

	if query.Year == 0 {
		s := errYearParameter.Error()
		c.JSON(http.StatusBadRequest, TaxYearResponse{
			Error: &s,
		})
		return
	}

	var profile models.Profile
	err = models.DB.First(&profile, query.ProfileID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TaxYearResponse{
			Error: &s,
		})
		return
	}

	schedule, err := schedules.ForYear(query.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TaxYearResponse{
			Error: &s,
		})
		return
	}

	grossIncome, err := profile.GrossIncome(models.DB, query.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TaxYearResponse{
			Error: &s,
		})
		return
	}

	claims, err := profile.ReliefClaims(models.DB, query.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TaxYearResponse{
			Error: &s,
		})
		return
	}

	pcbPaid, err := profile.PcbWithheld(models.DB, query.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TaxYearResponse{
			Error: &s,
		})
		return
	}

	calculator, err := tax.NewCalculator(schedule)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TaxYearResponse{
			Error: &s,
		})
		return
	}

	calculation, err := calculator.Calculate(tax.CalculationInput{
		GrossIncome:  grossIncome,
		Deductions:   claims,
		TotalPcbPaid: pcbPaid,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TaxYearResponse{
			Error: &s,
		})
		return
	}

	data := TaxYear{
		ID:          profile.ID,
		Name:        profile.Name,
		Calculation: calculation,
	}

	c.JSON(http.StatusOK, TaxYearResponse{Data: &data})
}
