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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProfile(t *testing.T, p v1.ProfileEditable, expectedStatus ...int) v1.ProfileResponse {
	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ProfileEditable{p}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/profiles", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var profile v1.ProfileCreateResponse
	test.DecodeResponse(t, &r, &profile)

	if r.Code == http.StatusCreated {
		return profile.Data[0]
	}

	return v1.ProfileResponse{}
}

// TestProfilesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestProfilesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestProfile(t, v1.ProfileEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/profiles", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ProfileListResponse
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

// TestProfilesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestProfilesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Profiles endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Profile with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Profile exists", createTestProfile(suite.T(), v1.ProfileEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/profiles", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestProfilesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestProfilesGetSingle() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Profile", p.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Profile with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodPatch},
		{"PATCH Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/profiles/%s", tt.id), "")

			var profile v1.ProfileResponse
			test.DecodeResponse(t, &r, &profile)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesGetFilter() {
	_ = createTestProfile(suite.T(), v1.ProfileEditable{
		Name:     "Aisyah",
		Note:     "Main profile for my own taxes",
		Currency: "MYR",
		Archived: true,
	})

	_ = createTestProfile(suite.T(), v1.ProfileEditable{
		Name:     "Hafiz",
		Note:     "Taxes for my husband",
		Currency: "MYR",
	})

	_ = createTestProfile(suite.T(), v1.ProfileEditable{
		Name:     "Mak",
		Note:     "I file for my mother, too",
		Currency: "SGD",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Currency MYR", "currency=MYR", 2},
		{"Currency SGD", "currency=SGD", 1},
		{"Empty Note", "note=", 0},
		{"Empty Name", "name=", 0},
		{"Name & Note", "name=Aisyah&note=Main profile for my own taxes", 1},
		{"Fuzzy name", "name=a", 3},
		{"Fuzzy note", "note=taxes", 2},
		{"Not archived", "archived=false", 2},
		{"Archived", "archived=true", 1},
		{"Search for 'my'", "search=my", 3},
		{"Search for 'HUSBAND'", "search=HUSBAND", 1},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.ProfileListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/profiles?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesCreateFails() {
	// Test profile for uniqueness
	p := createTestProfile(suite.T(), v1.ProfileEditable{
		Name: "Unique Profile Name",
	})

	tests := []struct {
		name     string
		body     any
		status   int                                            // expected HTTP status
		testFunc func(t *testing.T, p v1.ProfileCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, p v1.ProfileCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field ProfileEditable.note of type string", *p.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, p v1.ProfileCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *p.Error)
			},
		},
		{
			"Duplicate name",
			[]v1.ProfileEditable{
				{
					Name: p.Data.Name,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, p v1.ProfileCreateResponse) {
				assert.Equal(t, models.ErrProfileNameNotUnique.Error(), *p.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/profiles", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var p v1.ProfileCreateResponse
			test.DecodeResponse(t, &r, &p)

			if tt.testFunc != nil {
				tt.testFunc(t, p)
			}
		})
	}
}

// Verify that updating profiles works as desired
func (suite *TestSuiteStandard) TestProfilesUpdate() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Name of the profile"})

	tests := []struct {
		name     string                                   // name of the test
		profile  map[string]any                           // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, p v1.ProfileResponse) // tests to perform against the updated profile resource
	}{
		{
			"Name, Note",
			map[string]any{
				"name": "Another name",
				"note": "New note!",
			},
			func(t *testing.T, p v1.ProfileResponse) {
				assert.Equal(t, "New note!", p.Data.Note)
				assert.Equal(t, "Another name", p.Data.Name)
			},
		},
		{
			"Currency",
			map[string]any{
				"currency": "SGD",
			},
			func(t *testing.T, p v1.ProfileResponse) {
				assert.Equal(t, "SGD", p.Data.Currency)
			},
		},
		{
			"Archived",
			map[string]any{
				"archived": true,
			},
			func(t *testing.T, p v1.ProfileResponse) {
				assert.True(t, p.Data.Archived)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, profile.Data.Links.Self, tt.profile)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var p v1.ProfileResponse
			test.DecodeResponse(t, &r, &p)

			if tt.testFunc != nil {
				tt.testFunc(t, p)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Profile", uuid.New().String(), `{"name": "Not found"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				profile := createTestProfile(suite.T(), v1.ProfileEditable{
					Note: "Auto-created for test",
				})

				tt.id = profile.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/profiles/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestProfilesDelete verifies all cases for Profile deletions.
func (suite *TestSuiteStandard) TestProfilesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Profile", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				p := createTestProfile(t, v1.ProfileEditable{})
				tt.id = p.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/profiles/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestProfilesGetSorted verifies that Profiles are sorted by name.
func (suite *TestSuiteStandard) TestProfilesGetSorted() {
	p1 := createTestProfile(suite.T(), v1.ProfileEditable{
		Name: "Alphabetically first",
	})

	p2 := createTestProfile(suite.T(), v1.ProfileEditable{
		Name: "Second in creation, third in list",
	})

	p3 := createTestProfile(suite.T(), v1.ProfileEditable{
		Name: "First is alphabetically second",
	})

	p4 := createTestProfile(suite.T(), v1.ProfileEditable{
		Name: "Zulu is the last one",
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profiles", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var profiles v1.ProfileListResponse
	test.DecodeResponse(suite.T(), &r, &profiles)

	require.Len(suite.T(), profiles.Data, 4, "Profile list has wrong length")

	assert.Equal(suite.T(), p1.Data.Name, profiles.Data[0].Name)
	assert.Equal(suite.T(), p2.Data.Name, profiles.Data[2].Name)
	assert.Equal(suite.T(), p3.Data.Name, profiles.Data[1].Name)
	assert.Equal(suite.T(), p4.Data.Name, profiles.Data[3].Name)
}

func (suite *TestSuiteStandard) TestProfilesPagination() {
	for i := 0; i < 10; i++ {
		createTestProfile(suite.T(), v1.ProfileEditable{Name: fmt.Sprint(i)})
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
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/profiles?offset=%d&limit=%d", tt.offset, tt.limit), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var profiles v1.ProfileListResponse
			test.DecodeResponse(t, &r, &profiles)

			assert.Equal(suite.T(), tt.offset, profiles.Pagination.Offset)
			assert.Equal(suite.T(), tt.limit, profiles.Pagination.Limit)
			assert.Equal(suite.T(), tt.expectedCount, profiles.Pagination.Count)
			assert.Equal(suite.T(), tt.expectedTotal, profiles.Pagination.Total)
		})
	}
}
