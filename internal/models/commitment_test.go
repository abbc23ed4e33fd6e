package models_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kiracukai/backend/internal/models"
	"github.com/kiracukai/backend/internal/tax"
	"github.com/kiracukai/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestCommitmentBeforeCreate() {
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
			commitment := models.Commitment{
				ProfileID: tt.profileID,
				Name:      tt.name,
				Amount:    decimal.NewFromFloat(620),
				Frequency: tax.FrequencyMonthly,
				StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			}
			err := models.DB.Create(&commitment).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestCommitmentUpdateProfile() {
	profile := suite.createTestProfile(models.Profile{})
	commitment := suite.createTestCommitment(models.Commitment{
		ProfileID: profile.ID,
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
			update := models.Commitment{
				ProfileID: tt.profileID,
			}
			err := models.DB.Model(&commitment).Updates(update).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestCommitmentAfterSave() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		amount    decimal.Decimal
		frequency tax.Frequency
		startDate time.Time
		err       error
	}{
		{decimal.NewFromFloat(0), tax.FrequencyMonthly, startDate, models.ErrCommitmentAmountNotPositive},
		{decimal.NewFromFloat(-100), tax.FrequencyMonthly, startDate, models.ErrCommitmentAmountNotPositive},
		{decimal.NewFromFloat(100), "weekly", startDate, models.ErrCommitmentFrequencyInvalid},
		{decimal.NewFromFloat(100), tax.FrequencyYearly, time.Time{}, models.ErrCommitmentStartDateMissing},
		{decimal.NewFromFloat(100), tax.FrequencyYearly, startDate, nil},
	}

	for _, tt := range tests {
		c := models.Commitment{
			Amount:    tt.amount,
			Frequency: tt.frequency,
			StartDate: tt.startDate,
		}

		err := c.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestCommitmentTrimWhitespace() {
	name := "  PTPTN repayment \t"
	note := " Whitespace    "

	commitment := suite.createTestCommitment(models.Commitment{
		ProfileID: suite.createTestProfile(models.Profile{}).ID,
		Name:      name,
		Note:      note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), commitment.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), commitment.Note)
}

func (suite *TestSuiteStandard) TestCommitmentStartDateUTC() {
	kl, err := time.LoadLocation("Asia/Kuala_Lumpur")
	require.Nil(suite.T(), err)

	commitment := suite.createTestCommitment(models.Commitment{
		ProfileID: suite.createTestProfile(models.Profile{}).ID,
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, kl),
	})

	assert.Equal(suite.T(), time.UTC, commitment.StartDate.Location())
}

func (suite *TestSuiteStandard) TestCommitmentNameNotUnique() {
	profile := suite.createTestProfile(models.Profile{})
	_ = suite.createTestCommitment(models.Commitment{ProfileID: profile.ID, Name: "Car loan"})

	commitment := models.Commitment{
		ProfileID: profile.ID,
		Name:      "Car loan",
		Amount:    decimal.NewFromFloat(620),
		Frequency: tax.FrequencyMonthly,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	err := models.DB.Create(&commitment).Error
	assert.ErrorIs(suite.T(), err, models.ErrCommitmentNameNotUnique, "Error is: %s", err)

	// The same name is fine for another profile
	_ = suite.createTestCommitment(models.Commitment{
		ProfileID: suite.createTestProfile(models.Profile{}).ID,
		Name:      "Car loan",
	})
}

func (suite *TestSuiteStandard) TestCommitmentPayment() {
	commitment := suite.createTestCommitment(models.Commitment{
		ProfileID: suite.createTestProfile(models.Profile{}).ID,
	})

	_ = suite.createTestCommitmentPayment(models.CommitmentPayment{
		CommitmentID: commitment.ID,
		Period:       types.NewMonth(2024, time.February),
		Paid:         true,
	})

	payment, found, err := commitment.Payment(models.DB, types.NewMonth(2024, time.February))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), found)
	assert.True(suite.T(), payment.Paid)

	_, found, err = commitment.Payment(models.DB, types.NewMonth(2024, time.March))
	require.Nil(suite.T(), err)
	assert.False(suite.T(), found, "There is no payment record for this period")
}

func (suite *TestSuiteStandard) TestCommitmentPaymentDBError() {
	commitment := suite.createTestCommitment(models.Commitment{
		ProfileID: suite.createTestProfile(models.Profile{}).ID,
	})

	suite.CloseDB()

	_, _, err := commitment.Payment(models.DB, types.NewMonth(2024, time.January))
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestCommitmentProjection() {
	commitment := suite.createTestCommitment(models.Commitment{
		ProfileID: suite.createTestProfile(models.Profile{}).ID,
		Amount:    decimal.NewFromFloat(500),
		Frequency: tax.FrequencyMonthly,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	asOf := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	// Without a payment record, the current period counts as unpaid
	projection, err := commitment.Projection(models.DB, asOf)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 4, projection.MonthsElapsed)
	assert.Equal(suite.T(), 4, projection.TotalExpected)
	assert.Equal(suite.T(), 3, projection.PaymentsMade)
	assert.True(suite.T(), decimal.NewFromFloat(1500).Equal(projection.TotalPaid), "Expected a total paid of 1500, got %s", projection.TotalPaid)

	_ = suite.createTestCommitmentPayment(models.CommitmentPayment{
		CommitmentID: commitment.ID,
		Period:       types.NewMonth(2024, time.April),
		Paid:         true,
	})

	projection, err = commitment.Projection(models.DB, asOf)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 4, projection.MonthsElapsed)
	assert.Equal(suite.T(), 4, projection.TotalExpected)
	assert.Equal(suite.T(), 4, projection.PaymentsMade)
	assert.True(suite.T(), decimal.NewFromFloat(2000).Equal(projection.TotalPaid), "Expected a total paid of 2000, got %s", projection.TotalPaid)
}

func (suite *TestSuiteStandard) TestCommitmentExport() {
	t := suite.T()

	profile := suite.createTestProfile(models.Profile{})

	for i := range 2 {
		_ = suite.createTestCommitment(models.Commitment{ProfileID: profile.ID, Name: fmt.Sprint(i)})
	}

	raw, err := models.Commitment{}.Export()
	if err != nil {
		require.Fail(t, "commitment export failed", err)
	}

	var commitments []models.Commitment
	err = json.Unmarshal(raw, &commitments)
	if err != nil {
		require.Fail(t, "JSON could not be unmarshaled", err)
	}

	require.Len(t, commitments, 2, "Number of commitments in export is wrong")
}
