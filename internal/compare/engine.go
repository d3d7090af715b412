package compare

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/calculation"
	"github.com/smbledger/sapayroll/internal/domain"
	"github.com/smbledger/sapayroll/internal/taxtable"
)

// TableSource resolves a tax table by year
type TableSource func(year int) (*domain.TaxTable, error)

// CompareEngine runs one payroll input against several tax years
type CompareEngine struct {
	Tables TableSource
	Logger calculation.Logger
}

// NewCompareEngine creates a comparison engine over the built-in tables
func NewCompareEngine() *CompareEngine {
	return &CompareEngine{Tables: taxtable.ForYear, Logger: calculation.NopLogger{}}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseYear int   // Tax year the others are measured against
	Years    []int // Alternative tax years
}

// Compare calculates the input in the base year and every alternative year
func (ce *CompareEngine) Compare(input domain.PayrollInput, options CompareOptions) (*ComparisonSet, error) {
	base, err := ce.calculate(input, options.BaseYear)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base year %d: %w", options.BaseYear, err)
	}

	set := &ComparisonSet{Input: input, BaseYear: options.BaseYear, BaseResult: base}
	for _, year := range options.Years {
		if year == options.BaseYear {
			continue
		}
		alt, err := ce.calculate(input, year)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate year %d: %w", year, err)
		}
		alt.PAYEDiffFromBase = alt.AnnualPAYE.Sub(base.AnnualPAYE)
		alt.NetDiffFromBase = alt.MonthlyNet.Sub(base.MonthlyNet)
		if !base.MonthlyNet.IsZero() {
			alt.NetPctFromBase = alt.NetDiffFromBase.Div(base.MonthlyNet).Mul(decimal.NewFromInt(100)).Round(2)
		}
		set.AlternativeResults = append(set.AlternativeResults, *alt)
		ce.logger().Debugf("compare %s vs %s: paye %s, net %s", alt.TaxYear, base.TaxYear, alt.PAYEDiffFromBase, alt.NetDiffFromBase)
	}
	return set, nil
}

func (ce *CompareEngine) calculate(input domain.PayrollInput, year int) (*ComparisonResult, error) {
	table, err := ce.Tables(year)
	if err != nil {
		return nil, err
	}
	engine, err := calculation.NewEngineWithTable(table)
	if err != nil {
		return nil, err
	}
	result := engine.CalculatePayroll(input)
	return &ComparisonResult{
		TaxYear:         result.TaxYear,
		Year:            table.Year,
		Result:          result,
		AnnualPAYE:      result.AnnualPAYE,
		MonthlyNet:      result.MonthlyNet,
		MonthlyCostToCo: result.MonthlyEmployerCost,
		EffectiveRate:   engine.EffectiveRate(result.AnnualTaxableIncome, input.AgeAtEndOfTaxYear),
		MarginalRate:    engine.MarginalRate(result.AnnualTaxableIncome),
	}, nil
}

func (ce *CompareEngine) logger() calculation.Logger {
	if ce.Logger == nil {
		return calculation.NopLogger{}
	}
	return ce.Logger
}
