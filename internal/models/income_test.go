package models_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/kiracukai/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestIncomeBeforeCreate() {
	profile := suite.createTestProfile(models.Profile{})

	tests := []struct {
		name      string
		profileID uuid.UUID
		err       error
	}{
		{"Valid profile ID", profile.ID, nil},
		{"Invalid profile ID", uuid.New(), models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			income := models.Income{
				ProfileID: tt.profileID,
				Source:    "Rental",
				Amount:    decimal.NewFromFloat(1200),
				Year:      2024,
			}
			err := models.DB.Create(&income).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeUpdateProfile() {
	profile := suite.createTestProfile(models.Profile{})
	income := suite.createTestIncome(models.Income{
		ProfileID: profile.ID,
		Amount:    decimal.NewFromFloat(800),
	})

	tests := []struct {
		name      string
		profileID uuid.UUID
		err       error
	}{
		{
			"Valid profile ID",
			suite.createTestProfile(models.Profile{}).ID,
			nil,
		},
		{
			"Invalid profile ID",
			uuid.New(),
			models.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			update := models.Income{
				ProfileID: tt.profileID,
			}
			err := models.DB.Model(&income).Updates(update).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeAfterSave() {
	tests := []struct {
		amount decimal.Decimal
		year   uint
		month  uint8
		err    error
	}{
		{decimal.NewFromFloat(-10), 2024, 0, models.ErrIncomeAmountNegative},
		{decimal.NewFromFloat(100), 0, 0, models.ErrIncomeYearMissing},
		{decimal.NewFromFloat(100), 2024, 13, models.ErrIncomeMonthInvalid},
		{decimal.NewFromFloat(100), 2024, 12, nil},
		{decimal.NewFromFloat(0), 2024, 0, nil},
	}

	for _, tt := range tests {
		i := models.Income{
			Amount: tt.amount,
			Year:   tt.year,
			Month:  tt.month,
		}

		err := i.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestIncomeTrimWhitespace() {
	source := "  Freelance work\t"
	note := " Whitespace    "

	income := suite.createTestIncome(models.Income{
		ProfileID: suite.createTestProfile(models.Profile{}).ID,
		Amount:    decimal.NewFromFloat(500),
		Source:    source,
		Note:      note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(source), income.Source)
	assert.Equal(suite.T(), strings.TrimSpace(note), income.Note)
}

func (suite *TestSuiteStandard) TestIncomeExport() {
	t := suite.T()

	profile := suite.createTestProfile(models.Profile{})

	for i := range 2 {
		_ = suite.createTestIncome(models.Income{ProfileID: profile.ID, Source: fmt.Sprint(i), Amount: decimal.NewFromFloat(950)})
	}

	raw, err := models.Income{}.Export()
	if err != nil {
		require.Fail(t, "income export failed", err)
	}

	var incomes []models.Income
	err = json.Unmarshal(raw, &incomes)
	if err != nil {
		require.Fail(t, "JSON could not be unmarshaled", err)
	}

	require.Len(t, incomes, 2, "Number of incomes in export is wrong")
}
