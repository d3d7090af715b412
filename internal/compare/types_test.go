package compare

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
	"github.com/smbledger/sapayroll/internal/taxtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func compareInput() domain.PayrollInput {
	return domain.PayrollInput{AnnualGrossSalary: dec("300000"), AgeAtEndOfTaxYear: 30}
}

func TestCompareEngine_Compare(t *testing.T) {
	engine := NewCompareEngine()

	set, err := engine.Compare(compareInput(), CompareOptions{BaseYear: 2025, Years: []int{2023, 2025}})
	require.NoError(t, err)

	require.NotNil(t, set.BaseResult)
	assert.Equal(t, 2025, set.BaseYear)
	assert.Equal(t, "2024/2025", set.BaseResult.TaxYear)
	assert.True(t, set.BaseResult.AnnualPAYE.Equal(dec("41797")))
	assert.True(t, set.BaseResult.MonthlyNet.Equal(dec("21339.80")), "base net %s", set.BaseResult.MonthlyNet)
	assert.True(t, set.BaseResult.PAYEDiffFromBase.IsZero())

	require.Len(t, set.AlternativeResults, 1, "base year is not repeated as an alternative")
	alt := set.AlternativeResults[0]
	assert.Equal(t, 2023, alt.Year)
	assert.Equal(t, "2022/2023", alt.TaxYear)
	assert.True(t, alt.AnnualPAYE.Equal(dec("43495")))
	assert.True(t, alt.PAYEDiffFromBase.Equal(dec("1698")), "paye diff %s", alt.PAYEDiffFromBase)
	assert.True(t, alt.NetDiffFromBase.Equal(dec("-141.50")), "net diff %s", alt.NetDiffFromBase)
	assert.True(t, alt.NetPctFromBase.Equal(dec("-0.66")), "net pct %s", alt.NetPctFromBase)
	assert.True(t, alt.EffectiveRate.Equal(dec("0.145")), "effective %s", alt.EffectiveRate)
	assert.True(t, alt.MarginalRate.Equal(dec("0.26")))
}

func TestCompareEngine_UnknownYear(t *testing.T) {
	engine := NewCompareEngine()

	set, err := engine.Compare(compareInput(), CompareOptions{BaseYear: 2025, Years: []int{2010}})
	assert.Nil(t, set)
	assert.ErrorIs(t, err, domain.ErrUnknownTaxYear)
	assert.Contains(t, err.Error(), "failed to calculate year 2010")

	set, err = engine.Compare(compareInput(), CompareOptions{BaseYear: 2010})
	assert.Nil(t, set)
	assert.Contains(t, err.Error(), "failed to calculate base year 2010")
}

func TestCompareEngine_CustomTables(t *testing.T) {
	engine := &CompareEngine{
		Tables: func(year int) (*domain.TaxTable, error) {
			if year != 2099 {
				return taxtable.ForYear(year)
			}
			table := taxtable.Current()
			table.Year = 2099
			table.Rebates.Primary = table.Rebates.Primary.Add(dec("1200"))
			return table, nil
		},
	}

	set, err := engine.Compare(compareInput(), CompareOptions{BaseYear: 2025, Years: []int{2099}})
	require.NoError(t, err)
	alt := set.AlternativeResults[0]
	assert.True(t, alt.PAYEDiffFromBase.Equal(dec("-1200")), "paye diff %s", alt.PAYEDiffFromBase)
	assert.True(t, alt.NetDiffFromBase.Equal(dec("100")), "net diff %s", alt.NetDiffFromBase)
}

func TestCompareEngine_InvalidTable(t *testing.T) {
	engine := &CompareEngine{Tables: func(int) (*domain.TaxTable, error) {
		return &domain.TaxTable{Year: 2025}, nil
	}}

	_, err := engine.Compare(compareInput(), CompareOptions{BaseYear: 2025})
	assert.True(t, errors.Is(err, domain.ErrInvalidTaxTable))
}

func TestComparisonSet_All(t *testing.T) {
	set := &ComparisonSet{
		BaseResult:         &ComparisonResult{TaxYear: "base"},
		AlternativeResults: []ComparisonResult{{TaxYear: "a"}, {TaxYear: "b"}},
	}

	var names []string
	for _, r := range set.All() {
		names = append(names, r.TaxYear)
	}
	assert.Equal(t, []string{"base", "a", "b"}, names)

	assert.Empty(t, (&ComparisonSet{}).All())
}
