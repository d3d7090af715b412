package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
	"github.com/smbledger/sapayroll/internal/taxtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTaxTable_Validate(t *testing.T) {
	require.NoError(t, taxtable.Current().Validate(), "built-in table should be valid")

	tests := []struct {
		name    string
		mutate  func(*domain.TaxTable)
		message string
	}{
		{"zero year", func(tt *domain.TaxTable) { tt.Year = 0 }, "year must be positive"},
		{"no brackets", func(tt *domain.TaxTable) { tt.Brackets = nil }, "at least one bracket"},
		{"first bracket above zero", func(tt *domain.TaxTable) { tt.Brackets[0].Min = dec("1") }, "must start at 0"},
		{"first bracket base tax", func(tt *domain.TaxTable) { tt.Brackets[0].BaseTax = dec("10") }, "base tax must be 0"},
		{"rate above one", func(tt *domain.TaxTable) { tt.Brackets[2].Rate = dec("1.2") }, "rate must be between 0 and 1"},
		{"negative rate", func(tt *domain.TaxTable) { tt.Brackets[2].Rate = dec("-0.1") }, "rate must be between 0 and 1"},
		{"gap between brackets", func(tt *domain.TaxTable) { tt.Brackets[1].Min = tt.Brackets[1].Min.Add(dec("5")) }, "bracket 1: must start at"},
		{"overlapping brackets", func(tt *domain.TaxTable) { tt.Brackets[2].Min = tt.Brackets[2].Min.Sub(dec("1")) }, "bracket 2: must start at"},
		{"inconsistent base tax", func(tt *domain.TaxTable) { tt.Brackets[3].BaseTax = tt.Brackets[3].BaseTax.Add(dec("1")) }, "does not match cumulative tax"},
		{"unbounded middle bracket", func(tt *domain.TaxTable) { tt.Brackets[1].Max = nil }, "only the last bracket may be unbounded"},
		{"bounded last bracket", func(tt *domain.TaxTable) {
			upper := dec("99999999")
			tt.Brackets[len(tt.Brackets)-1].Max = &upper
		}, "last bracket must be unbounded"},
		{"negative rebate", func(tt *domain.TaxTable) { tt.Rebates.Tertiary = dec("-1") }, "rebates cannot be negative"},
		{"negative threshold", func(tt *domain.TaxTable) { tt.Thresholds.Under65 = dec("-1") }, "thresholds cannot be negative"},
		{"decreasing thresholds", func(tt *domain.TaxTable) { tt.Thresholds.Age75Plus = dec("100") }, "must not decrease with age"},
		{"UIF rate", func(tt *domain.TaxTable) { tt.UIFRate = dec("2") }, "UIF rate"},
		{"UIF cap", func(tt *domain.TaxTable) { tt.UIFMonthlyEarningsCap = decimal.Zero }, "UIF monthly earnings cap"},
		{"SDL rate", func(tt *domain.TaxTable) { tt.SDLRate = dec("-0.01") }, "SDL rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table := taxtable.Current()
			tc.mutate(table)

			err := table.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidTaxTable)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestTaxTable_Dates(t *testing.T) {
	leap := &domain.TaxTable{Year: 2024}
	assert.Equal(t, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), leap.StartDate())
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), leap.EndDate())

	common := &domain.TaxTable{Year: 2025}
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), common.EndDate())
}

func TestTaxTable_Name(t *testing.T) {
	assert.Equal(t, "2024/2025", (&domain.TaxTable{Year: 2025}).Name())
	assert.Equal(t, "2025 budget", (&domain.TaxTable{Year: 2025, Label: "2025 budget"}).Name())
}

func TestTaxTable_BandFor(t *testing.T) {
	table := taxtable.Current()

	tests := []struct {
		age       int
		threshold string
		rebate    string
	}{
		{0, "95750", "17235"},
		{64, "95750", "17235"},
		{65, "148217", "26679"},
		{74, "148217", "26679"},
		{75, "165689", "29824"},
		{101, "165689", "29824"},
	}

	for _, tc := range tests {
		band := table.BandFor(tc.age)
		assert.True(t, band.Threshold.Equal(dec(tc.threshold)), "age %d threshold %s", tc.age, band.Threshold)
		assert.True(t, band.Rebate.Equal(dec(tc.rebate)), "age %d rebate %s", tc.age, band.Rebate)
	}
}

func TestTaxTable_BracketFor(t *testing.T) {
	table := taxtable.Current()

	tests := []struct {
		income string
		min    string
	}{
		{"0", "0"},
		{"237100", "0"},
		{"237100.50", "0"},
		{"237101", "237101"},
		{"1817000", "857901"},
		{"1817001", "1817001"},
		{"50000000", "1817001"},
	}

	for _, tc := range tests {
		b, err := table.BracketFor(dec(tc.income))
		require.NoError(t, err, "income %s", tc.income)
		assert.True(t, b.Min.Equal(dec(tc.min)), "income %s: bracket min %s, expected %s", tc.income, b.Min, tc.min)
	}

	_, err := table.BracketFor(dec("-1"))
	assert.ErrorIs(t, err, domain.ErrNoBracket)
}

func TestTaxTable_Clone(t *testing.T) {
	original := taxtable.Current()
	clone := original.Clone()
	require.Equal(t, original, clone)

	*clone.Brackets[0].Max = dec("1")
	clone.Brackets[1].Rate = decimal.Zero
	clone.Rebates.Primary = decimal.Zero

	assert.True(t, original.Brackets[0].Max.Equal(dec("237100")))
	assert.True(t, original.Brackets[1].Rate.Equal(dec("0.26")))
	assert.True(t, original.Rebates.Primary.Equal(dec("17235")))
}

func TestPayrollValueHelpers(t *testing.T) {
	uif := domain.UIFContribution{Employee: dec("177.12"), Employer: dec("177.12")}
	assert.True(t, uif.Total().Equal(dec("354.24")))

	slip := domain.PayslipResult{GrossPay: dec("23000"), UIFEmployer: dec("177.12"), SDL: dec("230")}
	assert.True(t, slip.EmployerCost().Equal(dec("23407.12")))
}
