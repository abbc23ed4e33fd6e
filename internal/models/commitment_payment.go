package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/kiracukai/backend/internal/types"
	"gorm.io/gorm"
)

// CommitmentPayment records whether the payment due in a period has been
// made. The projection only consults the current period, earlier records
// are kept for the user's reference.
type CommitmentPayment struct {
	Timestamps
	Commitment   Commitment  `json:"-"`
	CommitmentID uuid.UUID   `gorm:"primaryKey"` // ID of the commitment
	Period       types.Month `gorm:"primaryKey"`
	Paid         bool
	Note         string
}

var ErrCommitmentPaymentPeriodNotUnique = errors.New("you can not create multiple payment records for the same commitment and period")

func (p *CommitmentPayment) BeforeSave(_ *gorm.DB) error {
	p.Note = strings.TrimSpace(p.Note)
	return nil
}

// Returns all commitment payments on this instance for export
func (CommitmentPayment) Export() (json.RawMessage, error) {
	var payments []CommitmentPayment
	err := DB.Unscoped().Where(&CommitmentPayment{}).Find(&payments).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&payments)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
