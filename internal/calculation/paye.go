package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
)

// PAYE CALCULATION ASSUMPTIONS:
//
// 1. Brackets follow the SARS publication convention: BaseTax is the tax owed
//    at Min-1, so gross tax is BaseTax + (income - Min + 1) * Rate. This is
//    deliberately not the continuous form; it matches the published tables.
//
// 2. Rebates stack by age at the end of the tax year: primary always,
//    secondary from 65, tertiary from 75. Thresholds use the same bands.
//
// 3. Income at or below the age threshold pays nothing. That check runs
//    before any bracket lookup.
//
// 4. Rounding happens once, at the end, half-up to the cent.

var (
	half           = decimal.NewFromFloat(0.5)
	one            = decimal.NewFromInt(1)
	monthsPerYear  = decimal.NewFromInt(12)
	pensionCapRate = decimal.NewFromFloat(0.275)
	pensionCapMax  = decimal.NewFromInt(350000)
)

// DefaultAgeAtEndOfTaxYear is used when an input leaves the age unset (0)
const DefaultAgeAtEndOfTaxYear = 30

// Round2 rounds to the cent with halves going up (floor(x*100 + 0.5) / 100)
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Add(half).Floor().Shift(-2)
}

// effectiveAge substitutes the default policy age for an unset age
func effectiveAge(age int) int {
	if age == 0 {
		return DefaultAgeAtEndOfTaxYear
	}
	return age
}

// ComputePAYE returns the annual PAYE owed on annualTaxableIncome for a
// taxpayer of the given age at the end of the tax year.
//
// A table without a bracket for a positive income is a configuration defect
// and panics; validated tables always cover [0, +inf).
func ComputePAYE(annualTaxableIncome decimal.Decimal, ageAtEndOfTaxYear int, table *domain.TaxTable) decimal.Decimal {
	if annualTaxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	band := table.BandFor(ageAtEndOfTaxYear)
	if annualTaxableIncome.LessThanOrEqual(band.Threshold) {
		return decimal.Zero
	}

	gross := grossTax(annualTaxableIncome, table)
	tax := gross.Sub(band.Rebate)
	if tax.IsNegative() {
		tax = decimal.Zero
	}
	return Round2(tax)
}

// grossTax applies the bracket formula before rebates
func grossTax(income decimal.Decimal, table *domain.TaxTable) decimal.Decimal {
	bracket, err := table.BracketFor(income)
	if err != nil {
		panic(err)
	}
	return bracket.BaseTax.Add(income.Sub(bracket.Min).Add(one).Mul(bracket.Rate))
}

// MarginalRate returns the rate of the bracket containing income, or zero
// when income is not positive
func MarginalRate(annualTaxableIncome decimal.Decimal, table *domain.TaxTable) decimal.Decimal {
	if annualTaxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	bracket, err := table.BracketFor(annualTaxableIncome)
	if err != nil {
		panic(err)
	}
	return bracket.Rate
}

// EffectiveRate is annual PAYE as a fraction of taxable income, rounded to 4 places
func EffectiveRate(annualTaxableIncome decimal.Decimal, ageAtEndOfTaxYear int, table *domain.TaxTable) decimal.Decimal {
	if annualTaxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	tax := ComputePAYE(annualTaxableIncome, ageAtEndOfTaxYear, table)
	return tax.Div(annualTaxableIncome).Round(4)
}
