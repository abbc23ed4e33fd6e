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

func (suite *TestSuiteStandard) TestImportGet() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "http://example.com/v1/import/deductions", response.Links.Deductions)
}

func (suite *TestSuiteStandard) TestImportDeductionsPreview() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})

	body, headers := test.LoadTestFile(suite.T(), "importer/statement/maybank-statement.csv")
	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import/deductions?profile=%s", profile.Data.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportPreviewList
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 3) {
		return
	}

	tests := []struct {
		name   string
		amount float64
		month  uint8
	}{
		{"Klinik Pergigian Aziz", 350, 3},
		{"Fitness First Bangsar", 179, 4},
		{"MPH Mid Valley", 84.5, 5},
	}

	for i, tt := range tests {
		preview := response.Data[i].Deduction

		assert.Equal(suite.T(), tt.name, preview.Name)
		assert.True(suite.T(), decimal.NewFromFloat(tt.amount).Equal(preview.Amount), "Expected amount of %v, got %s", tt.amount, preview.Amount)
		assert.Equal(suite.T(), uint(2024), preview.Year)
		assert.Equal(suite.T(), tt.month, preview.Month)
		assert.Equal(suite.T(), profile.Data.ID, preview.ProfileID)
		assert.Equal(suite.T(), models.AttributionSelf, preview.Attribution)
		assert.NotEmpty(suite.T(), preview.ImportHash)

		// Without relief rules, no category is suggested
		assert.Equal(suite.T(), "", preview.CategoryCode)
		assert.Nil(suite.T(), response.Data[i].ReliefRuleID)
		assert.Empty(suite.T(), response.Data[i].DuplicateDeductionIDs)
	}
}

func (suite *TestSuiteStandard) TestImportDeductionsPreviewRules() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})

	clinics := createTestReliefRule(suite.T(), v1.ReliefRuleEditable{Priority: 1, Match: "Klinik*", CategoryCode: "medical_serious"})
	sports := createTestReliefRule(suite.T(), v1.ReliefRuleEditable{Priority: 2, Match: "Fitness*", CategoryCode: "lifestyle_sports"})
	catchAll := createTestReliefRule(suite.T(), v1.ReliefRuleEditable{Priority: 10, Match: "*", CategoryCode: "lifestyle"})

	body, headers := test.LoadTestFile(suite.T(), "importer/statement/maybank-statement.csv")
	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import/deductions?profile=%s", profile.Data.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportPreviewList
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 3) {
		return
	}

	// The first matching rule in priority order wins
	tests := []struct {
		name         string
		categoryCode string
		reliefRuleID uuid.UUID
	}{
		{"Klinik Pergigian Aziz", "medical_serious", clinics.Data.ID},
		{"Fitness First Bangsar", "lifestyle_sports", sports.Data.ID},
		{"MPH Mid Valley", "lifestyle", catchAll.Data.ID},
	}

	for i, tt := range tests {
		preview := response.Data[i]

		assert.Equal(suite.T(), tt.name, preview.Deduction.Name)
		assert.Equal(suite.T(), tt.categoryCode, preview.Deduction.CategoryCode)

		if assert.NotNil(suite.T(), preview.ReliefRuleID) {
			assert.Equal(suite.T(), tt.reliefRuleID, *preview.ReliefRuleID)
		}
	}
}

func (suite *TestSuiteStandard) TestImportDeductionsPreviewDuplicates() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})

	body, headers := test.LoadTestFile(suite.T(), "importer/statement/maybank-statement.csv")
	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import/deductions?profile=%s", profile.Data.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportPreviewList
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 3) {
		return
	}

	// The client creates a deduction from the first preview, hash included
	preview := response.Data[0].Deduction
	deduction := createTestDeduction(suite.T(), v1.DeductionEditable{
		ProfileID:    profile.Data.ID,
		Name:         preview.Name,
		CategoryCode: "medical_serious",
		Amount:       preview.Amount,
		Year:         preview.Year,
		Month:        preview.Month,
		ImportHash:   preview.ImportHash,
	})

	// Importing the same statement again flags the line as a duplicate
	body, headers = test.LoadTestFile(suite.T(), "importer/statement/maybank-statement.csv")
	recorder = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import/deductions?profile=%s", profile.Data.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var reimport v1.ImportPreviewList
	test.DecodeResponse(suite.T(), &recorder, &reimport)

	if !assert.Len(suite.T(), reimport.Data, 3) {
		return
	}

	assert.Equal(suite.T(), []uuid.UUID{deduction.Data.ID}, reimport.Data[0].DuplicateDeductionIDs)
	assert.Empty(suite.T(), reimport.Data[1].DuplicateDeductionIDs)
	assert.Empty(suite.T(), reimport.Data[2].DuplicateDeductionIDs)
}

func (suite *TestSuiteStandard) TestImportDeductionsPreviewEmptyFile() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []string{
		"importer/statement/empty.csv",
		"importer/statement/header-only.csv",
	}

	for _, file := range tests {
		suite.T().Run(file, func(t *testing.T) {
			body, headers := test.LoadTestFile(t, file)
			recorder := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/import/deductions?profile=%s", profile.Data.ID), body, headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.ImportPreviewList
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0)
		})
	}
}

func (suite *TestSuiteStandard) TestImportDeductionsPreviewFails() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})
	profileQuery := fmt.Sprintf("profile=%s", profile.Data.ID)

	tests := []struct {
		name   string
		file   string
		query  string
		status int
		error  string
	}{
		{"No profile parameter", "importer/statement/maybank-statement.csv", "", http.StatusBadRequest, "profile:"},
		{"Profile that is not a UUID", "importer/statement/maybank-statement.csv", "profile=NotAUUID", http.StatusBadRequest, "invalid UUID"},
		{"Unknown profile", "importer/statement/maybank-statement.csv", fmt.Sprintf("profile=%s", uuid.New()), http.StatusNotFound, "there is no profile matching your query"},
		{"No file", "", profileQuery, http.StatusBadRequest, "you must send a file to this endpoint"},
		{"Wrong file suffix", "importer/wrong-suffix.txt", profileQuery, http.StatusBadRequest, "this endpoint only supports files of the following types"},
		{"Date in the wrong format", "importer/statement/error-date.csv", profileQuery, http.StatusBadRequest, "error in line 4 of the CSV: could not parse time"},
		{"Amount of zero", "importer/statement/error-amount-zero.csv", profileQuery, http.StatusBadRequest, "error in line 4 of the CSV: the amount for a statement line must be positive"},
		{"Amount that is not a decimal", "importer/statement/error-decimal.csv", profileQuery, http.StatusBadRequest, "error in line 2 of the CSV: amount could not be parsed to a decimal"},
		{"Missing amount", "importer/statement/error-missing-amount.csv", profileQuery, http.StatusBadRequest, "error in line 3 of the CSV: no amount is set for the statement line"},
		{"Missing name", "importer/statement/error-missing-name.csv", profileQuery, http.StatusBadRequest, "error in line 3 of the CSV: no name is set for the statement line"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.file != "" {
				body, headers := test.LoadTestFile(t, tt.file)
				recorder = test.Request(t, http.MethodPost, "http://example.com/v1/import/deductions?"+tt.query, body, headers)
			} else {
				recorder = test.Request(t, http.MethodPost, "http://example.com/v1/import/deductions?"+tt.query, "")
			}

			test.AssertHTTPStatus(t, &recorder, tt.status)

			var response v1.ImportPreviewList
			test.DecodeResponse(t, &recorder, &response)
			assert.Contains(t, *response.Error, tt.error)
		})
	}
}

func (suite *TestSuiteStandard) TestImportDBClosed() {
	suite.CloseDB()

	body, headers := test.LoadTestFile(suite.T(), "importer/statement/maybank-statement.csv")
	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import/deductions?profile=%s", uuid.New()), body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.ImportPreviewList
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}
