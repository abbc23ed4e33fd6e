package tax

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ReliefCategory is a statutory deduction bucket from the LHDN relief list.
// A category without a limit is uncapped, e.g. zakat or donations.
type ReliefCategory struct {
	Code  string
	Name  string
	Limit decimal.NullDecimal
}

// Bracket is one band of the progressive tax schedule. The last bracket
// has no upper bound.
type Bracket struct {
	Min  decimal.Decimal
	Max  decimal.NullDecimal
	Rate decimal.Decimal
}

// Schedule is the complete tax configuration for one Year of Assessment:
// the relief categories with their annual limits and the progressive
// brackets. It is plain data, loaded once at startup and passed into the
// engine explicitly.
type Schedule struct {
	Year       int
	Categories []ReliefCategory
	Brackets   []Bracket
}

// Validate checks the schedule for consistency. All returned errors are
// configuration errors, the caller is expected to abort on them.
func (s Schedule) Validate() error {
	if s.Year == 0 {
		return ErrScheduleYearMissing
	}

	if len(s.Brackets) == 0 {
		return ErrScheduleNoBrackets
	}

	if !s.Brackets[0].Min.IsZero() {
		return ErrBracketFirstMin
	}

	one := decimal.NewFromInt(1)
	for i, bracket := range s.Brackets {
		if bracket.Rate.IsNegative() || bracket.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: bracket %d", ErrBracketRateInvalid, i+1)
		}

		last := i == len(s.Brackets)-1
		if !bracket.Max.Valid {
			if !last {
				return ErrBracketUnbounded
			}
			continue
		}

		if last {
			return ErrBracketLastBounded
		}

		if bracket.Max.Decimal.LessThanOrEqual(bracket.Min) {
			return fmt.Errorf("%w: bracket %d", ErrBracketNotContiguous, i+1)
		}

		if !s.Brackets[i+1].Min.Equal(bracket.Max.Decimal) {
			return fmt.Errorf("%w: bracket %d", ErrBracketNotContiguous, i+2)
		}
	}

	if len(s.Categories) == 0 {
		return ErrScheduleNoCategories
	}

	codes := make(map[string]bool, len(s.Categories))
	for _, category := range s.Categories {
		if category.Code == "" {
			return ErrCategoryCodeEmpty
		}

		if codes[category.Code] {
			return fmt.Errorf("%w: %s", ErrCategoryCodeDuplicate, category.Code)
		}
		codes[category.Code] = true

		if category.Limit.Valid && !category.Limit.Decimal.IsPositive() {
			return fmt.Errorf("%w: %s", ErrCategoryLimitNotPositive, category.Code)
		}
	}

	return nil
}

// Registry holds one validated schedule per Year of Assessment.
type Registry struct {
	schedules map[int]Schedule
}

// NewRegistry builds a registry from the schedules passed in. Every
// schedule is validated, years must be unique.
func NewRegistry(schedules ...Schedule) (Registry, error) {
	r := Registry{schedules: make(map[int]Schedule, len(schedules))}

	for _, schedule := range schedules {
		if err := schedule.Validate(); err != nil {
			return Registry{}, fmt.Errorf("schedule for %d: %w", schedule.Year, err)
		}

		if _, ok := r.schedules[schedule.Year]; ok {
			return Registry{}, fmt.Errorf("%w: %d", ErrScheduleDuplicateYear, schedule.Year)
		}
		r.schedules[schedule.Year] = schedule
	}

	return r, nil
}

// ForYear returns the schedule for the Year of Assessment. There is no
// fallback to another year since relief limits and brackets change between
// years.
func (r Registry) ForYear(year int) (Schedule, error) {
	schedule, ok := r.schedules[year]
	if !ok {
		return Schedule{}, fmt.Errorf("%w: %d", ErrNoSchedule, year)
	}

	return schedule, nil
}

// scheduleFile is the YAML representation of a schedule. All numbers are
// read as strings and parsed into decimals so that no precision is lost.
type scheduleFile struct {
	Year       int `yaml:"year"`
	Categories []struct {
		Code  string  `yaml:"code"`
		Name  string  `yaml:"name"`
		Limit *string `yaml:"limit"`
	} `yaml:"categories"`
	Brackets []struct {
		Min  string  `yaml:"min"`
		Max  *string `yaml:"max"`
		Rate string  `yaml:"rate"`
	} `yaml:"brackets"`
}

func (f scheduleFile) schedule() (Schedule, error) {
	schedule := Schedule{Year: f.Year}

	parse := func(raw string) (decimal.Decimal, error) {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrScheduleNumberInvalid, raw)
		}
		return d, nil
	}

	for _, category := range f.Categories {
		c := ReliefCategory{Code: category.Code, Name: category.Name}

		if category.Limit != nil {
			limit, err := parse(*category.Limit)
			if err != nil {
				return Schedule{}, err
			}
			c.Limit = decimal.NewNullDecimal(limit)
		}

		schedule.Categories = append(schedule.Categories, c)
	}

	for _, bracket := range f.Brackets {
		b := Bracket{}

		var err error
		b.Min, err = parse(bracket.Min)
		if err != nil {
			return Schedule{}, err
		}

		b.Rate, err = parse(bracket.Rate)
		if err != nil {
			return Schedule{}, err
		}

		if bracket.Max != nil {
			upper, err := parse(*bracket.Max)
			if err != nil {
				return Schedule{}, err
			}
			b.Max = decimal.NewNullDecimal(upper)
		}

		schedule.Brackets = append(schedule.Brackets, b)
	}

	return schedule, nil
}

// LoadFile reads a single schedule from a YAML file. The schedule is not
// validated, use NewRegistry for that.
func LoadFile(path string) (Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schedule{}, err
	}

	var file scheduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Schedule{}, fmt.Errorf("parsing %s failed: %w", path, err)
	}

	schedule, err := file.schedule()
	if err != nil {
		return Schedule{}, fmt.Errorf("%s: %w", path, err)
	}

	return schedule, nil
}

// LoadDir reads all *.yaml files in a directory into a registry, one
// schedule per file.
func LoadDir(dir string) (Registry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return Registry{}, err
	}

	schedules := make([]Schedule, 0, len(paths))
	for _, path := range paths {
		schedule, err := LoadFile(path)
		if err != nil {
			return Registry{}, err
		}
		schedules = append(schedules, schedule)
	}

	return NewRegistry(schedules...)
}

// DefaultRegistry returns a registry with the built-in schedules.
func DefaultRegistry() (Registry, error) {
	return NewRegistry(YA2024())
}

// YA2024 returns the official schedule for the Year of Assessment 2024:
// the resident individual tax rates and the relief list published by LHDN.
func YA2024() Schedule {
	capped := func(v int64) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.NewFromInt(v))
	}

	return Schedule{
		Year: 2024,
		Brackets: []Bracket{
			{decimal.Zero, capped(5000), decimal.Zero},
			{decimal.NewFromInt(5000), capped(20000), decimal.NewFromFloat(0.01)},
			{decimal.NewFromInt(20000), capped(35000), decimal.NewFromFloat(0.03)},
			{decimal.NewFromInt(35000), capped(50000), decimal.NewFromFloat(0.06)},
			{decimal.NewFromInt(50000), capped(70000), decimal.NewFromFloat(0.11)},
			{decimal.NewFromInt(70000), capped(100000), decimal.NewFromFloat(0.19)},
			{decimal.NewFromInt(100000), capped(400000), decimal.NewFromFloat(0.25)},
			{decimal.NewFromInt(400000), capped(600000), decimal.NewFromFloat(0.26)},
			{decimal.NewFromInt(600000), capped(2000000), decimal.NewFromFloat(0.28)},
			{decimal.NewFromInt(2000000), decimal.NullDecimal{}, decimal.NewFromFloat(0.30)},
		},
		Categories: []ReliefCategory{
			{Code: "individual", Name: "Individual and dependent relatives", Limit: capped(9000)},
			{Code: "medical_parents", Name: "Medical treatment, special needs and carer expenses for parents", Limit: capped(8000)},
			{Code: "disabled_equipment", Name: "Basic supporting equipment for disabled self, spouse, child or parent", Limit: capped(6000)},
			{Code: "education_self", Name: "Education fees (self)", Limit: capped(7000)},
			{Code: "medical_serious", Name: "Medical expenses on serious diseases, fertility treatment, vaccination and screening", Limit: capped(10000)},
			{Code: "lifestyle", Name: "Lifestyle: books, personal computer, smartphone, internet subscription", Limit: capped(2500)},
			{Code: "lifestyle_sports", Name: "Additional lifestyle relief for sports equipment and activities", Limit: capped(1000)},
			{Code: "breastfeeding_equipment", Name: "Breastfeeding equipment", Limit: capped(1000)},
			{Code: "childcare", Name: "Child care fees for a child up to six years of age", Limit: capped(3000)},
			{Code: "sspn", Name: "Net deposit in Skim Simpanan Pendidikan Nasional", Limit: capped(8000)},
			{Code: "life_insurance_epf", Name: "Life insurance premiums and EPF contributions", Limit: capped(7000)},
			{Code: "prs_annuity", Name: "Private retirement scheme and deferred annuity", Limit: capped(3000)},
			{Code: "education_medical_insurance", Name: "Education and medical insurance premiums", Limit: capped(3000)},
			{Code: "socso", Name: "SOCSO and EIS contributions", Limit: capped(350)},
			{Code: "ev_charging", Name: "Expenses for electric vehicle charging facilities", Limit: capped(2500)},
			{Code: "zakat", Name: "Zakat and fitrah"},
			{Code: "donations", Name: "Donations to approved institutions and organisations"},
		},
	}
}
