package tax

import "errors"

var (
	ErrAmountNegative   = errors.New("amounts must not be negative")
	ErrCategoryUnknown  = errors.New("there is no relief category with this code in the tax schedule")
	ErrFrequencyInvalid = errors.New("the specified commitment frequency is invalid")
	ErrNoSchedule       = errors.New("there is no tax schedule for this assessment year")
)

// Schedule validation errors. Any of these is a configuration error and
// fatal at startup.
var (
	ErrScheduleYearMissing      = errors.New("the tax schedule must specify an assessment year")
	ErrScheduleNoBrackets       = errors.New("the tax schedule must contain at least one bracket")
	ErrScheduleNoCategories     = errors.New("the tax schedule must contain at least one relief category")
	ErrScheduleDuplicateYear    = errors.New("there are multiple tax schedules for the same assessment year")
	ErrScheduleNumberInvalid    = errors.New("the tax schedule contains a value that is not a valid decimal number")
	ErrBracketFirstMin          = errors.New("the first tax bracket must start at zero")
	ErrBracketNotContiguous     = errors.New("tax brackets must be contiguous and in ascending order")
	ErrBracketUnbounded         = errors.New("only the last tax bracket may be unbounded")
	ErrBracketLastBounded       = errors.New("the last tax bracket must be unbounded")
	ErrBracketRateInvalid       = errors.New("tax bracket rates must be between 0 and 1")
	ErrCategoryCodeEmpty        = errors.New("relief categories must have a code")
	ErrCategoryCodeDuplicate    = errors.New("relief category codes must be unique")
	ErrCategoryLimitNotPositive = errors.New("relief category limits must be larger than zero")
)
