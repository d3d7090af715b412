// Package taxtable holds the published SARS tax tables compiled into the binary.
//
// Each table is validated when the package initialises. A table that fails
// validation is a build defect, so initialisation panics rather than letting
// the calculator run against a broken schedule.
package taxtable

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
)

// CurrentYear is the tax year (ending February) used when none is requested
const CurrentYear = 2025

var registry = map[int]*domain.TaxTable{}

func init() {
	for _, t := range builtIn() {
		mustRegister(t)
	}
}

func mustRegister(t *domain.TaxTable) {
	if err := t.Validate(); err != nil {
		panic(err)
	}
	if _, exists := registry[t.Year]; exists {
		panic(fmt.Sprintf("tax table for %d registered twice", t.Year))
	}
	registry[t.Year] = t
}

// Current returns a copy of the default tax table
func Current() *domain.TaxTable {
	t, err := ForYear(CurrentYear)
	if err != nil {
		panic(err)
	}
	return t
}

// ForYear returns a copy of the table for the tax year ending in February of year
func ForYear(year int) (*domain.TaxTable, error) {
	t, ok := registry[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d (available: %v)", domain.ErrUnknownTaxYear, year, Years())
	}
	return t.Clone(), nil
}

// ForDate returns the table for the tax year containing date.
// The South African tax year runs from 1 March to the end of February.
func ForDate(date time.Time) (*domain.TaxTable, error) {
	return ForYear(YearOf(date))
}

// YearOf maps a date to the tax year it falls in
func YearOf(date time.Time) int {
	if date.Month() >= time.March {
		return date.Year() + 1
	}
	return date.Year()
}

// Years lists the registered tax years in ascending order
func Years() []int {
	years := make([]int, 0, len(registry))
	for y := range registry {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func upTo(v int64) *decimal.Decimal {
	upper := decimal.NewFromInt(v)
	return &upper
}

func rate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
