package statement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kiracukai/backend/internal/importer"
	"github.com/kiracukai/backend/internal/importer/helpers"
	"github.com/kiracukai/backend/internal/models"
	"github.com/shopspring/decimal"
)

// The column indices of the statement format
const (
	Date int = iota
	Name
	Amount
)

// Parse parses a bank or card statement CSV file into deduction previews
// for the profile. Dates are expected in DD/MM/YYYY format.
func Parse(f io.Reader, profile models.Profile) ([]importer.DeductionPreview, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	var deductions []importer.DeductionPreview

	// Skip the first line
	_, err := reader.Read()
	if err == io.EOF {
		return []importer.DeductionPreview{}, nil
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		date, err := time.Parse("02/01/2006", record[Date])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not parse time: %w", err))
		}

		if record[Name] == "" {
			return csvReadError(reader, errors.New("no name is set for the statement line"))
		}

		if record[Amount] == "" {
			return csvReadError(reader, errors.New("no amount is set for the statement line"))
		}

		amount, err := decimal.NewFromString(record[Amount])
		if err != nil {
			return csvReadError(reader, errors.New("amount could not be parsed to a decimal"))
		}

		if !amount.IsPositive() {
			return csvReadError(reader, errors.New("the amount for a statement line must be positive"))
		}

		deductions = append(deductions, importer.DeductionPreview{
			Deduction: models.Deduction{
				ProfileID:   profile.ID,
				Name:        record[Name],
				Amount:      amount,
				Year:        uint(date.Year()),
				Month:       uint8(date.Month()),
				Attribution: models.AttributionSelf,
				ImportHash:  helpers.Sha256String(strings.Join(record, ",")),
			},
		})
	}

	return deductions, nil
}

// csvReadError returns the an error with the format string, including the line of the input
// the error occurred in in the message.
func csvReadError(r *csv.Reader, err error) ([]importer.DeductionPreview, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return []importer.DeductionPreview{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
