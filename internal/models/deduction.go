package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Attribution states whose expense a deduction covers. Several relief
// categories allow claims for family members, so this is tracked for the
// user's records. The tax calculation does not differentiate.
type Attribution string

const (
	AttributionSelf   Attribution = "self"
	AttributionSpouse Attribution = "spouse"
	AttributionChild  Attribution = "child"
	AttributionParent Attribution = "parent"
)

// Valid reports whether the attribution is one of the known values.
func (a Attribution) Valid() bool {
	switch a {
	case AttributionSelf, AttributionSpouse, AttributionChild, AttributionParent:
		return true
	}

	return false
}

// Deduction is a single relief claim: an expense the taxpayer wants to
// claim against a relief category for a year of assessment.
//
// Deductions are created and deleted, never updated. A claim that was
// entered wrongly is deleted and entered again.
type Deduction struct {
	DefaultModel
	Profile      Profile `json:"-"`
	ProfileID    uuid.UUID
	Name         string
	CategoryCode string
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Year         uint
	Month        uint8 // 0 when the receipt cannot be attributed to a single month
	Attribution  Attribution
	Note         string
	ImportHash   string // A SHA256 hash of a unique combination of values to use in duplicate detection for imports
}

var (
	ErrDeductionAmountNegative     = errors.New("deduction amounts must not be negative")
	ErrDeductionYearMissing        = errors.New("deductions must have a year of assessment")
	ErrDeductionMonthInvalid       = errors.New("the deduction month must be between 1 and 12")
	ErrDeductionAttributionInvalid = errors.New("the deduction attribution must be self, spouse, child or parent")
)

func (d *Deduction) BeforeCreate(tx *gorm.DB) error {
	_ = d.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Deduction)
	return d.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (d *Deduction) checkIntegrity(tx *gorm.DB, toSave Deduction) error {
	return tx.First(&Profile{}, toSave.ProfileID).Error
}

func (d *Deduction) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.CategoryCode = strings.TrimSpace(d.CategoryCode)
	d.Note = strings.TrimSpace(d.Note)
	d.ImportHash = strings.TrimSpace(d.ImportHash)

	if d.Attribution == "" {
		d.Attribution = AttributionSelf
	}

	return nil
}

func (d *Deduction) AfterSave(_ *gorm.DB) error {
	if d.Amount.IsNegative() {
		return ErrDeductionAmountNegative
	}

	if d.Year == 0 {
		return ErrDeductionYearMissing
	}

	if d.Month > 12 {
		return ErrDeductionMonthInvalid
	}

	if !d.Attribution.Valid() {
		return ErrDeductionAttributionInvalid
	}

	return nil
}

// Returns all deductions on this instance for export
func (Deduction) Export() (json.RawMessage, error) {
	var deductions []Deduction
	err := DB.Unscoped().Where(&Deduction{}).Find(&deductions).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&deductions)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
