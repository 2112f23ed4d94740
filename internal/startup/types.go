// Package startup defines the startup-company record shape shared by the
// loaders, the document store, and the analysis code, plus the file loaders
// that produce records from CSV and JSON exports.
package startup

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FundingRound is one raised round: its name, the amount in USD, and the
// ISO-8601 close date.
type FundingRound struct {
	Round     string  `bson:"round" json:"round"`
	AmountUSD float64 `bson:"amount_usd" json:"amount_usd"`
	Date      string  `bson:"date" json:"date"`
}

// Startup is one company record as stored in the collection.
type Startup struct {
	Name            string         `bson:"name" json:"name" validate:"required"`
	FoundedYear     int            `bson:"founded_year" json:"founded_year" validate:"required,gte=1800,lte=2100"`
	Country         string         `bson:"country" json:"country" validate:"required"`
	City            string         `bson:"city" json:"city"`
	Industry        []string       `bson:"industry" json:"industry"`
	FundingRounds   []FundingRound `bson:"funding_rounds,omitempty" json:"funding_rounds,omitempty"`
	Investors       []string       `bson:"investors,omitempty" json:"investors,omitempty"`
	TotalFundingUSD float64        `bson:"total_funding_usd" json:"total_funding_usd" validate:"gte=0"`
	EmployeeCount   int            `bson:"employee_count" json:"employee_count" validate:"gte=0"`
	Status          string         `bson:"status" json:"status" validate:"required,oneof=Operating Acquired Closed"`
}

var validate = validator.New()

// Validate checks a record against the field rules. The returned error names
// the offending record to keep batch-load diagnostics readable.
func (s Startup) Validate() error {
	if err := validate.Struct(s); err != nil {
		name := s.Name
		if name == "" {
			name = "(unnamed)"
		}
		return fmt.Errorf("invalid record %s: %w", name, err)
	}
	return nil
}

// ValidateAll validates every record and returns the first error found.
func ValidateAll(records []Startup) error {
	for _, s := range records {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
