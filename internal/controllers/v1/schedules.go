package v1

import (
	"github.com/kiracukai/backend/internal/tax"
)

// schedules holds the tax schedules served by the API, one per Year of
// Assessment. It is set during router configuration.
var schedules tax.Registry

// RegisterSchedules sets the schedule registry that the deduction, relief
// category and tax year endpoints read from.
func RegisterSchedules(registry tax.Registry) {
	schedules = registry
}
