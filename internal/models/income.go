package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income represents income from sources other than employment, e.g.
// rental or freelance work. Employment income is captured through the
// monthly PCB records.
type Income struct {
	DefaultModel
	Profile   Profile `json:"-"`
	ProfileID uuid.UUID
	Source    string
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Year      uint
	Month     uint8 // 0 when the income cannot be attributed to a single month
	Note      string
}

var (
	ErrIncomeAmountNegative = errors.New("income amounts must not be negative")
	ErrIncomeYearMissing    = errors.New("incomes must have a year of assessment")
	ErrIncomeMonthInvalid   = errors.New("the income month must be between 1 and 12")
)

func (i *Income) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Income)
	return i.checkIntegrity(tx, *toSave)
}

func (i *Income) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Income)

	if tx.Statement.Changed("ProfileID") {
		err := i.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (i *Income) checkIntegrity(tx *gorm.DB, toSave Income) error {
	return tx.First(&Profile{}, toSave.ProfileID).Error
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Source = strings.TrimSpace(i.Source)
	i.Note = strings.TrimSpace(i.Note)

	return nil
}

func (i *Income) AfterSave(_ *gorm.DB) error {
	if i.Amount.IsNegative() {
		return ErrIncomeAmountNegative
	}

	if i.Year == 0 {
		return ErrIncomeYearMissing
	}

	if i.Month > 12 {
		return ErrIncomeMonthInvalid
	}

	return nil
}

// Returns all incomes on this instance for export
func (Income) Export() (json.RawMessage, error) {
	var incomes []Income
	err := DB.Unscoped().Where(&Income{}).Find(&incomes).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&incomes)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
