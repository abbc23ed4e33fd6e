package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/kiracukai/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PcbRecord is one month's payslip for a profile: the salary components,
// the statutory contributions and the PCB amount the employer withheld.
// There is exactly one record per profile and month.
type PcbRecord struct {
	Timestamps
	Profile     Profile         `json:"-"`
	ProfileID   uuid.UUID       `gorm:"primaryKey"` // ID of the profile
	Month       types.Month     `gorm:"primaryKey"`
	GrossSalary decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Bonus       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Allowances  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Commission  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	EpfEmployee decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Socso       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Eis         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Zakat       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PcbAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note        string
}

var (
	ErrPcbRecordMonthNotUnique = errors.New("you can not create multiple PCB records for the same profile and month")
	ErrPcbRecordAmountNegative = errors.New("PCB record amounts must not be negative")
)

func (p *PcbRecord) BeforeSave(_ *gorm.DB) error {
	p.Note = strings.TrimSpace(p.Note)
	return nil
}

func (p *PcbRecord) AfterSave(_ *gorm.DB) error {
	amounts := []decimal.Decimal{
		p.GrossSalary,
		p.Bonus,
		p.Allowances,
		p.Commission,
		p.EpfEmployee,
		p.Socso,
		p.Eis,
		p.Zakat,
		p.PcbAmount,
	}

	for _, amount := range amounts {
		if amount.IsNegative() {
			return ErrPcbRecordAmountNegative
		}
	}

	return nil
}

// Returns all PCB records on this instance for export
func (PcbRecord) Export() (json.RawMessage, error) {
	var pcbRecords []PcbRecord
	err := DB.Unscoped().Where(&PcbRecord{}).Find(&pcbRecords).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&pcbRecords)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
