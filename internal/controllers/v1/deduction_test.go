package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/kiracukai/backend/internal/controllers/v1"
	"github.com/kiracukai/backend/internal/models"
	"github.com/kiracukai/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestDeduction(t *testing.T, d v1.DeductionEditable, expectedStatus ...int) v1.DeductionResponse {
	if d.ProfileID == uuid.Nil {
		d.ProfileID = createTestProfile(t, v1.ProfileEditable{}).Data.ID
	}

	if d.Name == "" {
		d.Name = uuid.NewString()
	}

	if d.CategoryCode == "" {
		d.CategoryCode = "lifestyle"
	}

	if d.Year == 0 {
		d.Year = 2024
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.DeductionEditable{d}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/deductions", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var deduction v1.DeductionCreateResponse
	test.DecodeResponse(t, &r, &deduction)

	if r.Code == http.StatusCreated {
		return deduction.Data[0]
	}

	return v1.DeductionResponse{}
}

// TestDeductionsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestDeductionsDBClosed() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestDeduction(t, v1.DeductionEditable{ProfileID: p.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/deductions", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.DeductionListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestDeductionsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestDeductionsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Deductions endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Deduction with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Deduction exists", createTestDeduction(suite.T(), v1.DeductionEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/deductions", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestDeductionsNoPatch verifies that deductions cannot be updated.
func (suite *TestSuiteStandard) TestDeductionsNoPatch() {
	d := createTestDeduction(suite.T(), v1.DeductionEditable{})

	recorder := test.Request(suite.T(), http.MethodPatch, d.Data.Links.Self, `{"name": "Changed"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}

// TestDeductionsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestDeductionsGetSingle() {
	d := createTestDeduction(suite.T(), v1.DeductionEditable{Amount: decimal.NewFromFloat(350)})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Deduction", d.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Deduction with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/deductions/%s", tt.id), "")

			var deduction v1.DeductionResponse
			test.DecodeResponse(t, &r, &deduction)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestDeductionsGetFilter() {
	p1 := createTestProfile(suite.T(), v1.ProfileEditable{})
	p2 := createTestProfile(suite.T(), v1.ProfileEditable{})

	_ = createTestDeduction(suite.T(), v1.DeductionEditable{
		ProfileID:    p1.Data.ID,
		Name:         "Klinik Pergigian Aziz",
		CategoryCode: "medical_serious",
		Amount:       decimal.NewFromFloat(350),
		Year:         2024,
		Month:        3,
		Attribution:  models.AttributionSelf,
	})

	_ = createTestDeduction(suite.T(), v1.DeductionEditable{
		ProfileID:    p2.Data.ID,
		Name:         "MPH Mid Valley",
		CategoryCode: "lifestyle",
		Amount:       decimal.NewFromFloat(84.50),
		Year:         2024,
		Note:         "Books for the kids",
		Attribution:  models.AttributionChild,
	})

	_ = createTestDeduction(suite.T(), v1.DeductionEditable{
		ProfileID:    p2.Data.ID,
		Name:         "Zakat Selangor",
		CategoryCode: "zakat",
		Amount:       decimal.NewFromFloat(200),
		Year:         2024,
		Month:        12,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Profile 1", fmt.Sprintf("profile=%s", p1.Data.ID), 1},
		{"Profile Not Existing", "profile=c9e4ee7a-e702-4f92-b168-11a95b22c7aa", 0},
		{"Category medical_serious", "category=medical_serious", 1},
		{"Category lifestyle", "category=lifestyle", 1},
		{"Year 2024", "year=2024", 3},
		{"Year 2023", "year=2023", 0},
		{"Month 12", "month=12", 1},
		{"Attribution self", "attribution=self", 2},
		{"Attribution child", "attribution=child", 1},
		{"Empty Name", "name=", 0},
		{"Empty Note", "note=", 2},
		{"Fuzzy name", "name=klinik", 1},
		{"Fuzzy note", "note=books", 1},
		{"Search for 'valley'", "search=valley", 1},
		{"Search for 'KIDS'", "search=KIDS", 1},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.DeductionListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/deductions?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestDeductionsCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                              // expected HTTP status
		testFunc func(t *testing.T, d v1.DeductionCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, d v1.DeductionCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field DeductionEditable.note of type string", *d.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, d v1.DeductionCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *d.Error)
			},
		},
		{
			"No Profile",
			`[{ "name": "Klinik Mahsa", "categoryCode": "medical_serious", "year": 2024 }]`,
			http.StatusNotFound,
			func(t *testing.T, d v1.DeductionCreateResponse) {
				assert.Equal(t, "there is no profile matching your query", *d.Data[0].Error)
			},
		},
		{
			"Unknown category",
			[]v1.DeductionEditable{
				{
					ProfileID:    createTestProfile(suite.T(), v1.ProfileEditable{}).Data.ID,
					Name:         "Massage chair",
					CategoryCode: "massage_chairs",
					Year:         2024,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, d v1.DeductionCreateResponse) {
				assert.Equal(t, `there is no relief category with this code in the tax schedule: "massage_chairs"`, *d.Data[0].Error)
			},
		},
		{
			"Year without schedule",
			[]v1.DeductionEditable{
				{
					ProfileID:    createTestProfile(suite.T(), v1.ProfileEditable{}).Data.ID,
					Name:         "Old receipt",
					CategoryCode: "lifestyle",
					Year:         1999,
				},
			},
			http.StatusNotFound,
			func(t *testing.T, d v1.DeductionCreateResponse) {
				assert.Equal(t, "there is no tax schedule for this assessment year: 1999", *d.Data[0].Error)
			},
		},
		{
			"Missing year",
			[]v1.DeductionEditable{
				{
					ProfileID:    createTestProfile(suite.T(), v1.ProfileEditable{}).Data.ID,
					Name:         "No year on this one",
					CategoryCode: "lifestyle",
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, d v1.DeductionCreateResponse) {
				assert.Equal(t, models.ErrDeductionYearMissing.Error(), *d.Data[0].Error)
			},
		},
		{
			"Negative amount",
			[]v1.DeductionEditable{
				{
					ProfileID:    createTestProfile(suite.T(), v1.ProfileEditable{}).Data.ID,
					Name:         "Refund",
					CategoryCode: "lifestyle",
					Amount:       decimal.NewFromFloat(-10),
					Year:         2024,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, d v1.DeductionCreateResponse) {
				assert.Equal(t, models.ErrDeductionAmountNegative.Error(), *d.Data[0].Error)
			},
		},
		{
			"Invalid month",
			[]v1.DeductionEditable{
				{
					ProfileID:    createTestProfile(suite.T(), v1.ProfileEditable{}).Data.ID,
					Name:         "Thirteenth month",
					CategoryCode: "lifestyle",
					Year:         2024,
					Month:        13,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, d v1.DeductionCreateResponse) {
				assert.Equal(t, models.ErrDeductionMonthInvalid.Error(), *d.Data[0].Error)
			},
		},
		{
			"Invalid attribution",
			[]v1.DeductionEditable{
				{
					ProfileID:    createTestProfile(suite.T(), v1.ProfileEditable{}).Data.ID,
					Name:         "For the neighbour",
					CategoryCode: "lifestyle",
					Year:         2024,
					Attribution:  "neighbour",
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, d v1.DeductionCreateResponse) {
				assert.Equal(t, models.ErrDeductionAttributionInvalid.Error(), *d.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/deductions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var d v1.DeductionCreateResponse
			test.DecodeResponse(t, &r, &d)

			if tt.testFunc != nil {
				tt.testFunc(t, d)
			}
		})
	}
}

// TestDeductionsAttributionDefault verifies that the attribution defaults
// to self when it is not specified.
func (suite *TestSuiteStandard) TestDeductionsAttributionDefault() {
	d := createTestDeduction(suite.T(), v1.DeductionEditable{})

	assert.Equal(suite.T(), models.AttributionSelf, d.Data.Attribution)
}

// TestDeductionsDelete verifies all cases for Deduction deletions.
func (suite *TestSuiteStandard) TestDeductionsDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Deduction", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				d := createTestDeduction(t, v1.DeductionEditable{})
				tt.id = d.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/deductions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestDeductionsGetSorted verifies that Deductions are sorted by year, month
// and name.
func (suite *TestSuiteStandard) TestDeductionsGetSorted() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	d1 := createTestDeduction(suite.T(), v1.DeductionEditable{
		ProfileID: p.Data.ID,
		Name:      "Dental checkup",
		Month:     1,
	})

	d2 := createTestDeduction(suite.T(), v1.DeductionEditable{
		ProfileID: p.Data.ID,
		Name:      "Anatomy textbook",
		Month:     4,
	})

	d3 := createTestDeduction(suite.T(), v1.DeductionEditable{
		ProfileID: p.Data.ID,
		Name:      "Badminton racket",
		Month:     4,
	})

	d4 := createTestDeduction(suite.T(), v1.DeductionEditable{
		ProfileID: p.Data.ID,
		Name:      "Zakat payment",
		Month:     12,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/deductions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var deductions v1.DeductionListResponse
	test.DecodeResponse(suite.T(), &r, &deductions)

	assert.Len(suite.T(), deductions.Data, 4, "Deduction list has wrong length")

	assert.Equal(suite.T(), d1.Data.ID, deductions.Data[0].ID)
	assert.Equal(suite.T(), d2.Data.ID, deductions.Data[1].ID)
	assert.Equal(suite.T(), d3.Data.ID, deductions.Data[2].ID)
	assert.Equal(suite.T(), d4.Data.ID, deductions.Data[3].ID)
}

func (suite *TestSuiteStandard) TestDeductionsPagination() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	for i := 0; i < 10; i++ {
		createTestDeduction(suite.T(), v1.DeductionEditable{ProfileID: p.Data.ID, Name: fmt.Sprint(i)})
	}

	tests := []struct {
		name          string
		offset        uint
		limit         int
		expectedCount int
		expectedTotal int64
	}{
		{"All", 0, -1, 10, 10},
		{"First 5", 0, 5, 5, 10},
		{"Last 5", 5, -1, 5, 10},
		{"Offset 3", 3, -1, 7, 10},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/deductions?offset=%d&limit=%d", tt.offset, tt.limit), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var deductions v1.DeductionListResponse
			test.DecodeResponse(t, &r, &deductions)

			assert.Equal(suite.T(), tt.offset, deductions.Pagination.Offset)
			assert.Equal(suite.T(), tt.limit, deductions.Pagination.Limit)
			assert.Equal(suite.T(), tt.expectedCount, deductions.Pagination.Count)
			assert.Equal(suite.T(), tt.expectedTotal, deductions.Pagination.Total)
		})
	}
}
