package importer

import (
	"github.com/google/uuid"
	"github.com/kiracukai/backend/internal/models"
)

// DeductionPreview is used to preview deductions that will be imported to allow for editing.
type DeductionPreview struct {
	Deduction             models.Deduction `json:"deduction"`
	DuplicateDeductionIDs []uuid.UUID      `json:"duplicateDeductionIds"`                                       // IDs of deductions that this statement line duplicates
	ReliefRuleID          uuid.UUID        `json:"reliefRuleId" example:"042d101d-f1de-4403-9295-59dc0ea58677"` // ID of the relief rule that was applied to this deduction preview
}
