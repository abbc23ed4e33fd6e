package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiracukai/backend/internal/httputil"
	"github.com/kiracukai/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Commitments      string `json:"commitments" example:"https://example.com/api/v1/commitments"`            // URL of Commitment collection endpoint
	Deductions       string `json:"deductions" example:"https://example.com/api/v1/deductions"`              // URL of Deduction collection endpoint
	Export           string `json:"export" example:"https://example.com/api/v1/export"`                      // URL of the full data export endpoint
	Import           string `json:"import" example:"https://example.com/api/v1/import"`                      // URL of import list endpoint
	Incomes          string `json:"incomes" example:"https://example.com/api/v1/incomes"`                    // URL of Income collection endpoint
	PcbRecords       string `json:"pcbRecords" example:"https://example.com/api/v1/pcb-records"`             // URL of PCB record collection endpoint
	Profiles         string `json:"profiles" example:"https://example.com/api/v1/profiles"`                  // URL of Profile collection endpoint
	ReliefCategories string `json:"reliefCategories" example:"https://example.com/api/v1/relief-categories"` // URL of the relief category list endpoint
	ReliefRules      string `json:"reliefRules" example:"https://example.com/api/v1/relief-rules"`           // URL of Relief Rule collection endpoint
	TaxYears         string `json:"taxYears" example:"https://example.com/api/v1/tax-years"`                 // URL of the tax calculation endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Commitments:      url + "/v1/commitments",
			Deductions:       url + "/v1/deductions",
			Export:           url + "/v1/export",
			Import:           url + "/v1/import",
			Incomes:          url + "/v1/incomes",
			PcbRecords:       url + "/v1/pcb-records",
			Profiles:         url + "/v1/profiles",
			ReliefCategories: url + "/v1/relief-categories",
			ReliefRules:      url + "/v1/relief-rules",
			TaxYears:         url + "/v1/tax-years",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
