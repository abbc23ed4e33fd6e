package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/kiracukai/backend/internal/controllers/v1"
	"github.com/kiracukai/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestReliefCategoriesGet() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/relief-categories?year=2024", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReliefCategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 17) {
		return
	}

	individual := response.Data[0]
	assert.Equal(suite.T(), "individual", individual.Code)
	assert.Equal(suite.T(), "Individual and dependent relatives", individual.Name)
	assert.True(suite.T(), individual.Limit.Valid)
	assert.True(suite.T(), decimal.NewFromFloat(9000).Equal(individual.Limit.Decimal), "Expected limit of 9000, got %s", individual.Limit.Decimal)

	for _, category := range response.Data {
		switch category.Code {
		case "lifestyle":
			assert.True(suite.T(), category.Limit.Valid)
			assert.True(suite.T(), decimal.NewFromFloat(2500).Equal(category.Limit.Decimal), "Expected limit of 2500, got %s", category.Limit.Decimal)

		// zakat and donations are deductible without a limit
		case "zakat", "donations":
			assert.False(suite.T(), category.Limit.Valid, "Expected no limit for %s", category.Code)
		}
	}
}

func (suite *TestSuiteStandard) TestReliefCategoriesGetFails() {
	tests := []struct {
		name   string
		query  string
		status int
		error  string
	}{
		{"No year parameter", "", http.StatusBadRequest, "the year parameter must be set"},
		{"Invalid year parameter", "year=banana", http.StatusBadRequest, "year:"},
		{"Year without a schedule", "year=1999", http.StatusNotFound, "there is no tax schedule for this assessment year: 1999"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/relief-categories?"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)

			var response v1.ReliefCategoryListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Contains(t, *response.Error, tt.error)
		})
	}
}
