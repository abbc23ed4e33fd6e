package models

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ReliefRule maps statement line names to relief categories during the
// import preview. Rules are checked in ascending priority order, the
// first matching glob pattern wins.
type ReliefRule struct {
	DefaultModel
	Priority     uint
	Match        string // Glob pattern matched against the name of an imported line
	CategoryCode string
}

var ErrReliefRuleMatchEmpty = errors.New("relief rules must have a match pattern")

func (r *ReliefRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	r.CategoryCode = strings.TrimSpace(r.CategoryCode)

	return nil
}

func (r *ReliefRule) AfterSave(_ *gorm.DB) error {
	if r.Match == "" {
		return ErrReliefRuleMatchEmpty
	}

	return nil
}

// Returns all relief rules on this instance for export
func (ReliefRule) Export() (json.RawMessage, error) {
	var reliefRules []ReliefRule
	err := DB.Unscoped().Where(&ReliefRule{}).Find(&reliefRules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&reliefRules)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
