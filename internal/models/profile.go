package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/kiracukai/backend/internal/tax"
	"github.com/kiracukai/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Profile represents a taxpayer.
//
// A profile is the highest level of organization in KiraCukai, all other
// resources reference it directly or transitively.
type Profile struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Note     string
	Currency string
	Archived bool
}

var (
	ErrProfileNameNotUnique   = errors.New("the profile name must be unique")
	ErrProfileCurrencyInvalid = errors.New("the profile currency must be a valid ISO 4217 code")
)

// BeforeSave trims whitespace and defaults the currency to Malaysian
// Ringgit since that is what PCB is withheld in.
func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))

	if p.Currency == "" {
		p.Currency = "MYR"
	}

	if _, err := currency.ParseISO(p.Currency); err != nil {
		return ErrProfileCurrencyInvalid
	}

	return nil
}

// EmploymentIncome returns the sum of all salary components from the
// profile's PCB records for a year of assessment.
func (p Profile) EmploymentIncome(db *gorm.DB, year int) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Select("SUM(gross_salary + bonus + allowances + commission)").
		Where("profile_id = ?", p.ID).
		Where("month >= date(?) AND month < date(?)", types.NewMonth(year, 1), types.NewMonth(year+1, 1)).
		Where("deleted_at IS NULL").
		Table("pcb_records").
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no records are found, the value is nil
	if !sum.Valid {
		return decimal.NewFromFloat(0), nil
	}

	return sum.Decimal, nil
}

// OtherIncome returns the sum of all income outside employment for a year
// of assessment.
func (p Profile) OtherIncome(db *gorm.DB, year int) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Select("SUM(amount)").
		Where("profile_id = ?", p.ID).
		Where("year = ?", year).
		Where("deleted_at IS NULL").
		Table("incomes").
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	if !sum.Valid {
		return decimal.NewFromFloat(0), nil
	}

	return sum.Decimal, nil
}

// GrossIncome returns the total income for a year of assessment that the
// tax calculation runs on.
func (p Profile) GrossIncome(db *gorm.DB, year int) (decimal.Decimal, error) {
	employment, err := p.EmploymentIncome(db, year)
	if err != nil {
		return decimal.Zero, err
	}

	other, err := p.OtherIncome(db, year)
	if err != nil {
		return decimal.Zero, err
	}

	return employment.Add(other), nil
}

// PcbWithheld returns the sum of all PCB amounts the employer withheld
// over a year of assessment.
func (p Profile) PcbWithheld(db *gorm.DB, year int) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Select("SUM(pcb_amount)").
		Where("profile_id = ?", p.ID).
		Where("month >= date(?) AND month < date(?)", types.NewMonth(year, 1), types.NewMonth(year+1, 1)).
		Where("deleted_at IS NULL").
		Table("pcb_records").
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	if !sum.Valid {
		return decimal.NewFromFloat(0), nil
	}

	return sum.Decimal, nil
}

// ReliefClaims returns the profile's deductions for a year of assessment
// in the form the tax engine consumes.
func (p Profile) ReliefClaims(db *gorm.DB, year int) ([]tax.Deduction, error) {
	var deductions []Deduction

	err := db.Where(&Deduction{ProfileID: p.ID, Year: uint(year)}).Find(&deductions).Error
	if err != nil {
		return nil, err
	}

	claims := make([]tax.Deduction, 0, len(deductions))
	for _, deduction := range deductions {
		claims = append(claims, tax.Deduction{CategoryCode: deduction.CategoryCode, Amount: deduction.Amount})
	}

	return claims, nil
}

// Returns all profiles on this instance for export
func (Profile) Export() (json.RawMessage, error) {
	var profiles []Profile
	err := DB.Unscoped().Where(&Profile{}).Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&profiles)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
