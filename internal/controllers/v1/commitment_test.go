package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/kiracukai/backend/internal/controllers/v1"
	"github.com/kiracukai/backend/internal/models"
	"github.com/kiracukai/backend/internal/tax"
	"github.com/kiracukai/backend/internal/types"
	"github.com/kiracukai/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCommitment(t *testing.T, c v1.CommitmentEditable, expectedStatus ...int) v1.CommitmentResponse {
	if c.ProfileID == uuid.Nil {
		c.ProfileID = createTestProfile(t, v1.ProfileEditable{}).Data.ID
	}

	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if c.Amount.IsZero() {
		c.Amount = decimal.NewFromFloat(500)
	}

	if c.Frequency == "" {
		c.Frequency = tax.FrequencyMonthly
	}

	if c.StartDate.IsZero() {
		c.StartDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CommitmentEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/commitments", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var commitment v1.CommitmentCreateResponse
	test.DecodeResponse(t, &r, &commitment)

	if r.Code == http.StatusCreated {
		return commitment.Data[0]
	}

	return v1.CommitmentResponse{}
}

func patchTestCommitmentPayment(t *testing.T, commitmentID uuid.UUID, period types.Month, e v1.CommitmentPaymentEditable, expectedStatus ...int) v1.CommitmentPaymentResponse {
	// Default to 200 OK or 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK, http.StatusCreated)
	}

	path := fmt.Sprintf("http://example.com/v1/commitments/%s/payments/%s", commitmentID, period)

	r := test.Request(t, http.MethodPatch, path, e)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var payment v1.CommitmentPaymentResponse
	test.DecodeResponse(t, &r, &payment)

	return payment
}

// TestCommitmentsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCommitmentsDBClosed() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestCommitment(t, v1.CommitmentEditable{ProfileID: p.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/commitments", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CommitmentListResponse
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

// TestCommitmentsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCommitmentsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Commitments endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Commitment with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Commitment exists", createTestCommitment(suite.T(), v1.CommitmentEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/commitments", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestCommitmentsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestCommitmentsGetSingle() {
	c := createTestCommitment(suite.T(), v1.CommitmentEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Commitment", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Commitment with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/commitments/%s", tt.id), "")

			var commitment v1.CommitmentResponse
			test.DecodeResponse(t, &r, &commitment)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCommitmentsGetFilter() {
	p1 := createTestProfile(suite.T(), v1.ProfileEditable{})
	p2 := createTestProfile(suite.T(), v1.ProfileEditable{})

	_ = createTestCommitment(suite.T(), v1.CommitmentEditable{
		ProfileID: p1.Data.ID,
		Name:      "Proton X50 loan",
		Amount:    decimal.NewFromFloat(890),
		Frequency: tax.FrequencyMonthly,
		Note:      "Ends 2031",
		Archived:  true,
	})

	_ = createTestCommitment(suite.T(), v1.CommitmentEditable{
		ProfileID: p2.Data.ID,
		Name:      "PTPTN repayment",
		Amount:    decimal.NewFromFloat(150),
		Frequency: tax.FrequencyMonthly,
	})

	_ = createTestCommitment(suite.T(), v1.CommitmentEditable{
		ProfileID: p2.Data.ID,
		Name:      "Takaful premium",
		Amount:    decimal.NewFromFloat(2400),
		Frequency: tax.FrequencyYearly,
		Note:      "Renews every January",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Profile 1", fmt.Sprintf("profile=%s", p1.Data.ID), 1},
		{"Profile Not Existing", "profile=c9e4ee7a-e702-4f92-b168-11a95b22c7aa", 0},
		{"Frequency monthly", "frequency=monthly", 2},
		{"Frequency yearly", "frequency=yearly", 1},
		{"Empty Name", "name=", 0},
		{"Empty Note", "note=", 1},
		{"Fuzzy name", "name=p", 3},
		{"Fuzzy note", "note=renews", 1},
		{"Not archived", "archived=false", 2},
		{"Archived", "archived=true", 1},
		{"Search for 'loan'", "search=loan", 1},
		{"Search for 'JANUARY'", "search=JANUARY", 1},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.CommitmentListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/commitments?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestCommitmentsCreateFails() {
	// Test commitment for uniqueness
	c := createTestCommitment(suite.T(), v1.CommitmentEditable{
		Name: "Unique Commitment Name for Profile",
	})

	tests := []struct {
		name     string
		body     any
		status   int                                               // expected HTTP status
		testFunc func(t *testing.T, c v1.CommitmentCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, c v1.CommitmentCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field CommitmentEditable.note of type string", *c.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, c v1.CommitmentCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *c.Error)
			},
		},
		{
			"No Profile",
			`[{ "name": "Some commitment" }]`,
			http.StatusNotFound,
			func(t *testing.T, c v1.CommitmentCreateResponse) {
				assert.Equal(t, "there is no profile matching your query", *c.Data[0].Error)
			},
		},
		{
			"Duplicate name for profile",
			[]v1.CommitmentEditable{
				{
					ProfileID: c.Data.ProfileID,
					Name:      c.Data.Name,
					Amount:    decimal.NewFromFloat(500),
					Frequency: tax.FrequencyMonthly,
					StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, c v1.CommitmentCreateResponse) {
				assert.Equal(t, models.ErrCommitmentNameNotUnique.Error(), *c.Data[0].Error)
			},
		},
		{
			"Amount zero",
			[]v1.CommitmentEditable{
				{
					ProfileID: c.Data.ProfileID,
					Name:      "Zero amount",
					Frequency: tax.FrequencyMonthly,
					StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, c v1.CommitmentCreateResponse) {
				assert.Equal(t, models.ErrCommitmentAmountNotPositive.Error(), *c.Data[0].Error)
			},
		},
		{
			"Invalid frequency",
			[]v1.CommitmentEditable{
				{
					ProfileID: c.Data.ProfileID,
					Name:      "Fortnightly",
					Amount:    decimal.NewFromFloat(100),
					Frequency: "fortnightly",
					StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, c v1.CommitmentCreateResponse) {
				assert.Equal(t, models.ErrCommitmentFrequencyInvalid.Error(), *c.Data[0].Error)
			},
		},
		{
			"Missing start date",
			[]v1.CommitmentEditable{
				{
					ProfileID: c.Data.ProfileID,
					Name:      "No start",
					Amount:    decimal.NewFromFloat(100),
					Frequency: tax.FrequencyMonthly,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, c v1.CommitmentCreateResponse) {
				assert.Equal(t, models.ErrCommitmentStartDateMissing.Error(), *c.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/commitments", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var c v1.CommitmentCreateResponse
			test.DecodeResponse(t, &r, &c)

			if tt.testFunc != nil {
				tt.testFunc(t, c)
			}
		})
	}
}

// Verify that updating commitments works as desired
func (suite *TestSuiteStandard) TestCommitmentsUpdate() {
	commitment := createTestCommitment(suite.T(), v1.CommitmentEditable{Name: "Name of the commitment"})

	tests := []struct {
		name       string                                      // name of the test
		commitment map[string]any                              // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc   func(t *testing.T, c v1.CommitmentResponse) // tests to perform against the updated commitment resource
	}{
		{
			"Name, Note",
			map[string]any{
				"name": "Another name",
				"note": "New note!",
			},
			func(t *testing.T, c v1.CommitmentResponse) {
				assert.Equal(t, "New note!", c.Data.Note)
				assert.Equal(t, "Another name", c.Data.Name)
			},
		},
		{
			"Amount",
			map[string]any{
				"amount": 612.18,
			},
			func(t *testing.T, c v1.CommitmentResponse) {
				assert.True(t, decimal.NewFromFloat(612.18).Equal(c.Data.Amount), "Expected an amount of 612.18, got %s", c.Data.Amount)
			},
		},
		{
			"Archived",
			map[string]any{
				"archived": true,
			},
			func(t *testing.T, c v1.CommitmentResponse) {
				assert.True(t, c.Data.Archived)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, commitment.Data.Links.Self, tt.commitment)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var c v1.CommitmentResponse
			test.DecodeResponse(t, &r, &c)

			if tt.testFunc != nil {
				tt.testFunc(t, c)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCommitmentsUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Commitment", uuid.New().String(), `{"name": "Not found"}`, http.StatusNotFound},
		{"Set Profile to uuid.Nil", "", `{"profileId": "00000000-0000-0000-0000-000000000000"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				commitment := createTestCommitment(suite.T(), v1.CommitmentEditable{
					Note: "Auto-created for test",
				})

				tt.id = commitment.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/commitments/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCommitmentsDelete verifies all cases for Commitment deletions.
func (suite *TestSuiteStandard) TestCommitmentsDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Commitment", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				c := createTestCommitment(t, v1.CommitmentEditable{})
				tt.id = c.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/commitments/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCommitmentsGetSorted verifies that Commitments are sorted by name.
func (suite *TestSuiteStandard) TestCommitmentsGetSorted() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	c1 := createTestCommitment(suite.T(), v1.CommitmentEditable{
		ProfileID: p.Data.ID,
		Name:      "Alphabetically first",
	})

	c2 := createTestCommitment(suite.T(), v1.CommitmentEditable{
		ProfileID: p.Data.ID,
		Name:      "Second in creation, third in list",
	})

	c3 := createTestCommitment(suite.T(), v1.CommitmentEditable{
		ProfileID: p.Data.ID,
		Name:      "First is alphabetically second",
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/commitments", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var commitments v1.CommitmentListResponse
	test.DecodeResponse(suite.T(), &r, &commitments)

	require.Len(suite.T(), commitments.Data, 3, "Commitment list has wrong length")

	assert.Equal(suite.T(), c1.Data.Name, commitments.Data[0].Name)
	assert.Equal(suite.T(), c2.Data.Name, commitments.Data[2].Name)
	assert.Equal(suite.T(), c3.Data.Name, commitments.Data[1].Name)
}

// TestCommitmentPaymentsOptions verifies that OPTIONS requests are handled
// correctly. There is no existence check for the payment record since a
// record that does not exist yet can still be written to with PATCH.
func (suite *TestSuiteStandard) TestCommitmentPaymentsOptions() {
	tests := []struct {
		name   string
		path   string
		status int // Expected HTTP status code
	}{
		{"Payment record does not exist", fmt.Sprintf("%s/payments/2024-03", uuid.New()), http.StatusNoContent},
		{"Not a valid UUID", "NotParseableAsUUID/payments/2024-03", http.StatusBadRequest},
		{"Not a valid month", fmt.Sprintf("%s/payments/2024-13", uuid.New()), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/commitments", tt.path)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH", r.Header().Get("allow"))
			}
		})
	}
}

// TestCommitmentPaymentsGet verifies that payment records are returned
// correctly, with zero values for periods that have no record yet.
func (suite *TestSuiteStandard) TestCommitmentPaymentsGet() {
	c := createTestCommitment(suite.T(), v1.CommitmentEditable{})

	_ = patchTestCommitmentPayment(suite.T(), c.Data.ID, types.NewMonth(2024, 3), v1.CommitmentPaymentEditable{
		Paid: true,
		Note: "Paid at the bank counter",
	}, http.StatusCreated)

	// The recorded period
	path := strings.Replace(c.Data.Links.Payments, "YYYY-MM", "2024-03", 1)
	r := test.Request(suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var payment v1.CommitmentPaymentResponse
	test.DecodeResponse(suite.T(), &r, &payment)

	assert.True(suite.T(), payment.Data.Paid)
	assert.Equal(suite.T(), "Paid at the bank counter", payment.Data.Note)

	// A period without a record returns the zero values
	path = strings.Replace(c.Data.Links.Payments, "YYYY-MM", "2024-04", 1)
	r = test.Request(suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &payment)

	require.NotNil(suite.T(), payment.Data)
	assert.False(suite.T(), payment.Data.Paid)
	assert.Equal(suite.T(), c.Data.ID, payment.Data.CommitmentID)
	assert.True(suite.T(), payment.Data.Period.Equal(types.NewMonth(2024, 4)), "Period is %s, expected 2024-04", payment.Data.Period)

	// An unknown commitment is an error
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/commitments/%s/payments/2024-03", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestCommitmentPaymentsUpsert verifies that the PATCH endpoint creates
// payment records transparently and updates existing ones.
func (suite *TestSuiteStandard) TestCommitmentPaymentsUpsert() {
	c := createTestCommitment(suite.T(), v1.CommitmentEditable{})

	// The first PATCH creates the record
	payment := patchTestCommitmentPayment(suite.T(), c.Data.ID, types.NewMonth(2024, 3), v1.CommitmentPaymentEditable{
		Paid: true,
	}, http.StatusCreated)

	assert.True(suite.T(), payment.Data.Paid)

	// The second PATCH updates it
	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/commitments/%s/payments/2024-03", c.Data.ID), map[string]any{
		"note": "Paid late",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CommitmentPaymentResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.True(suite.T(), updated.Data.Paid, "The paid flag must not change when only the note is updated")
	assert.Equal(suite.T(), "Paid late", updated.Data.Note)
}

// TestCommitmentProjection verifies the payment projection computation
// through the API.
func (suite *TestSuiteStandard) TestCommitmentProjection() {
	c := createTestCommitment(suite.T(), v1.CommitmentEditable{
		Name:      "Car loan",
		Amount:    decimal.NewFromFloat(500),
		Frequency: tax.FrequencyMonthly,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?asOf=2024-04-15", c.Data.Links.Projection), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CommitmentProjectionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), c.Data.ID, response.Data.ID)
	assert.Equal(suite.T(), "Car loan", response.Data.Name)
	assert.Equal(suite.T(), 4, response.Data.MonthsElapsed)
	assert.Equal(suite.T(), 4, response.Data.TotalExpected)
	assert.Equal(suite.T(), 3, response.Data.PaymentsMade)
	assert.True(suite.T(), decimal.NewFromFloat(1500).Equal(response.Data.TotalPaid), "Expected a total paid of 1500, got %s", response.Data.TotalPaid)

	// Recording the payment for the current period changes the projection
	_ = patchTestCommitmentPayment(suite.T(), c.Data.ID, types.NewMonth(2024, 4), v1.CommitmentPaymentEditable{Paid: true}, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?asOf=2024-04-15", c.Data.Links.Projection), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 4, response.Data.PaymentsMade)
	assert.True(suite.T(), decimal.NewFromFloat(2000).Equal(response.Data.TotalPaid), "Expected a total paid of 2000, got %s", response.Data.TotalPaid)
}

func (suite *TestSuiteStandard) TestCommitmentProjectionFails() {
	c := createTestCommitment(suite.T(), v1.CommitmentEditable{})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Non-existing Commitment", fmt.Sprintf("%s/projection", uuid.New()), http.StatusNotFound},
		{"Invalid UUID", "NotParseableAsUUID/projection", http.StatusBadRequest},
		{"Invalid asOf date", fmt.Sprintf("%s/projection?asOf=often", c.Data.ID), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/commitments/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestCommitmentProjectionOptions verifies that OPTIONS requests are handled
// correctly for the projection endpoint.
func (suite *TestSuiteStandard) TestCommitmentProjectionOptions() {
	tests := []struct {
		name   string
		id     string
		status int // Expected HTTP status code
	}{
		{"No Commitment with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Commitment exists", createTestCommitment(suite.T(), v1.CommitmentEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/commitments/%s/projection", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
			}
		})
	}
}
