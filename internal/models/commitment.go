package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kiracukai/backend/internal/tax"
	"github.com/kiracukai/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Commitment is a recurring financial obligation, e.g. a car loan, a
// PTPTN repayment or an insurance premium.
type Commitment struct {
	DefaultModel
	Profile   Profile         `json:"-"`
	ProfileID uuid.UUID       `gorm:"uniqueIndex:commitment_name_profile_id"`
	Name      string          `gorm:"uniqueIndex:commitment_name_profile_id"`
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The amount due per payment
	Frequency tax.Frequency
	StartDate time.Time
	Note      string
	Archived  bool
}

var (
	ErrCommitmentNameNotUnique     = errors.New("the commitment name must be unique for the profile")
	ErrCommitmentAmountNotPositive = errors.New("commitment amounts must be larger than zero")
	ErrCommitmentFrequencyInvalid  = errors.New("the commitment frequency must be monthly, quarterly, yearly or one_time")
	ErrCommitmentStartDateMissing  = errors.New("commitments must have a start date")
)

func (c *Commitment) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Commitment)
	return c.checkIntegrity(tx, *toSave)
}

func (c *Commitment) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Commitment)

	if tx.Statement.Changed("ProfileID") {
		err := c.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (c *Commitment) checkIntegrity(tx *gorm.DB, toSave Commitment) error {
	return tx.First(&Profile{}, toSave.ProfileID).Error
}

// BeforeSave sets the timezone for the start date to UTC.
func (c *Commitment) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if !c.StartDate.IsZero() {
		c.StartDate = c.StartDate.In(time.UTC)
	}

	return nil
}

func (c *Commitment) AfterSave(_ *gorm.DB) error {
	if !c.Amount.IsPositive() {
		return ErrCommitmentAmountNotPositive
	}

	if !c.Frequency.Valid() {
		return ErrCommitmentFrequencyInvalid
	}

	if c.StartDate.IsZero() {
		return ErrCommitmentStartDateMissing
	}

	return nil
}

// AfterFind updates the start date to use UTC as timezone, not +0000.
func (c *Commitment) AfterFind(tx *gorm.DB) error {
	err := c.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	c.StartDate = c.StartDate.In(time.UTC)
	return nil
}

// Payment returns the payment record for a period. The bool is false when
// no payment has been recorded for the period yet.
func (c Commitment) Payment(db *gorm.DB, period types.Month) (CommitmentPayment, bool, error) {
	var payment CommitmentPayment

	err := db.First(&payment, &CommitmentPayment{CommitmentID: c.ID, Period: period}).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return CommitmentPayment{}, false, nil
		}

		return CommitmentPayment{}, false, err
	}

	return payment, true, nil
}

// Projection computes the payment progress of the commitment as of a
// specific date. All periods before the current one count as paid, only
// the current period's recorded flag is consulted.
func (c Commitment) Projection(db *gorm.DB, asOf time.Time) (tax.Projection, error) {
	paid := false

	period, due := tax.CurrentPeriod(c.Frequency, c.StartDate, asOf)
	if due {
		payment, found, err := c.Payment(db, period)
		if err != nil {
			return tax.Projection{}, err
		}

		paid = found && payment.Paid
	}

	return tax.ProjectPayments(c.Frequency, c.Amount, c.StartDate, asOf, paid)
}

// Returns all commitments on this instance for export
func (Commitment) Export() (json.RawMessage, error) {
	var commitments []Commitment
	err := DB.Unscoped().Where(&Commitment{}).Find(&commitments).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&commitments)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
