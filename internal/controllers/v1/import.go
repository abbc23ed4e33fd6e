package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiracukai/backend/internal/httputil"
	"github.com/kiracukai/backend/internal/importer"
	"github.com/kiracukai/backend/internal/importer/parser/statement"
	"github.com/kiracukai/backend/internal/models"
	kc_uuid "github.com/kiracukai/backend/internal/uuid"
	"github.com/ryanuber/go-glob"
)

type ImportPreviewQuery struct {
	ProfileID kc_uuid.UUID `form:"profile" binding:"required"` // ID of the profile to import the deductions for
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// duplicateDeductions finds duplicate deductions by their import hash. For all input resources,
// existing resources of the profile with the same import hash are searched. If any exist, their
// IDs are set in the DuplicateDeductionIDs field.
func duplicateDeductions(preview *importer.DeductionPreview, profileID uuid.UUID) {
	var duplicates []models.Deduction
	models.DB.
		Where(models.Deduction{
			ProfileID:  profileID,
			ImportHash: preview.Deduction.ImportHash,
		}).
		Find(&duplicates)

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	duplicateIDs := make([]uuid.UUID, 0)
	for _, duplicate := range duplicates {
		duplicateIDs = append(duplicateIDs, duplicate.ID)
	}
	preview.DuplicateDeductionIDs = duplicateIDs
}

// match applies the relief rules to a deduction preview.
func match(preview *importer.DeductionPreview, rules []models.ReliefRule) {
	for _, rule := range rules {
		// Since rules are loaded from the database in priority order,
		// the first match wins
		if glob.Glob(rule.Match, preview.Deduction.Name) {
			preview.Deduction.CategoryCode = rule.CategoryCode
			preview.ReliefRuleID = rule.ID
			return
		}
	}
}

// DeductionPreview is used to preview deductions that will be imported to allow for editing.
type DeductionPreview struct {
	Deduction             Deduction   `json:"deduction"`
	DuplicateDeductionIDs []uuid.UUID `json:"duplicateDeductionIds"`                                       // IDs of deductions that this statement line duplicates
	ReliefRuleID          *uuid.UUID  `json:"reliefRuleId" example:"042d101d-f1de-4403-9295-59dc0ea58677"` // ID of the relief rule that was applied to this deduction preview
}

// newDeductionPreview transforms a DeductionPreview to the API resource
func newDeductionPreview(c *gin.Context, p importer.DeductionPreview) DeductionPreview {
	id := &p.ReliefRuleID
	if p.ReliefRuleID == uuid.Nil {
		id = nil
	}

	return DeductionPreview{
		Deduction:             newDeduction(c, p.Deduction),
		DuplicateDeductionIDs: p.DuplicateDeductionIDs,
		ReliefRuleID:          id,
	}
}

type ImportPreviewList struct {
	Data  []DeductionPreview `json:"data"`                                                          // List of deduction previews
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsImport)
		r.GET("", GetImport)

		r.OPTIONS("/deductions", OptionsImportDeductions)
		r.POST("/deductions", ImportDeductionsPreview)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsGet(c)
}

type ImportResponse struct {
	Links ImportLinks `json:"links"` // Links for the v1 API
}

type ImportLinks struct {
	Deductions string `json:"deductions" example:"https://example.com/api/v1/import/deductions"` // URL of the deduction import preview endpoint
}

// @Summary		Import API overview
// @Description	Returns general information about the import API
// @Tags			Import
// @Success		200	{object}	ImportResponse
// @Router			/v1/import [get]
func GetImport(c *gin.Context) {
	c.JSON(http.StatusOK, ImportResponse{
		Links: ImportLinks{
			Deductions: c.GetString(string(models.DBContextURL)) + "/v1/import/deductions",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/deductions [options]
func OptionsImportDeductions(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Deduction Import Preview
// @Description	Returns a preview of deductions to be imported after parsing a bank or card statement CSV file
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportPreviewList
// @Failure		400		{object}	ImportPreviewList
// @Failure		404		{object}	ImportPreviewList
// @Failure		500		{object}	ImportPreviewList
// @Param			file	formData	file				true	"File to import"
// @Param			profile	query		ImportPreviewQuery	false	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/import/deductions [post]
func ImportDeductionsPreview(c *gin.Context) {
	var query ImportPreviewQuery
	err := c.BindQuery(&query)
	if err != nil {
		s := fmt.Errorf("profile: %w", err).Error()
		c.JSON(http.StatusBadRequest, ImportPreviewList{
			Error: &s,
		})
		return
	}

	if query.ProfileID == kc_uuid.Nil {
		s := errProfileParameter.Error()
		c.JSON(http.StatusBadRequest, ImportPreviewList{
			Error: &s,
		})
		return
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	// Verify that the profile exists
	var profile models.Profile
	err = models.DB.First(&profile, query.ProfileID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	previews, err := statement.Parse(f, profile)
	if err != nil {
		// statement.Parse returns a usable error already, no parsing necessary
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportPreviewList{
			Error: &s,
		})
		return
	}

	// Get all relief rules in priority order
	var reliefRules []models.ReliefRule
	err = models.DB.Order("priority ASC").Find(&reliefRules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	for i, preview := range previews {
		if len(reliefRules) > 0 {
			match(&preview, reliefRules)
		}

		duplicateDeductions(&preview, profile.ID)

		previews[i] = preview
	}

	// Transform the previews to the API resource
	data := make([]DeductionPreview, 0, len(previews))
	for _, p := range previews {
		data = append(data, newDeductionPreview(c, p))
	}

	c.JSON(http.StatusOK, ImportPreviewList{Data: data})
}
