package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
	"github.com/smbledger/sapayroll/internal/taxtable"
)

// Engine binds the payroll calculations to one tax table.
// It holds no mutable calculation state and may be shared between goroutines
// once configured.
type Engine struct {
	table  *domain.TaxTable
	Logger Logger
	Debug  bool // Log intermediate figures at debug level
}

// NewEngine creates an engine for the current tax year
func NewEngine() *Engine {
	return &Engine{table: taxtable.Current(), Logger: NopLogger{}}
}

// NewEngineWithTable creates an engine for a caller supplied table.
// The table is validated and copied; later changes to it are not observed.
func NewEngineWithTable(table *domain.TaxTable) (*Engine, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil table", domain.ErrInvalidTaxTable)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &Engine{table: table.Clone(), Logger: NopLogger{}}, nil
}

// NewEngineForYear creates an engine for a registered tax year
func NewEngineForYear(year int) (*Engine, error) {
	table, err := taxtable.ForYear(year)
	if err != nil {
		return nil, err
	}
	return &Engine{table: table, Logger: NopLogger{}}, nil
}

// SetLogger installs a logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Table returns a copy of the engine's tax table
func (e *Engine) Table() *domain.TaxTable {
	return e.table.Clone()
}

// TaxYear returns the display name of the engine's tax year
func (e *Engine) TaxYear() string {
	return e.table.Name()
}

// ComputePAYE returns annual PAYE for the engine's tax year
func (e *Engine) ComputePAYE(annualTaxableIncome decimal.Decimal, ageAtEndOfTaxYear int) decimal.Decimal {
	tax := ComputePAYE(annualTaxableIncome, ageAtEndOfTaxYear, e.table)
	if e.Debug {
		band := e.table.BandFor(ageAtEndOfTaxYear)
		e.Logger.Debugf("PAYE %s: income=%s age=%d threshold=%s rebate=%s tax=%s",
			e.table.Name(), annualTaxableIncome, ageAtEndOfTaxYear, band.Threshold, band.Rebate, tax)
	}
	return tax
}

// QuotePAYE computes annual PAYE together with the band and rates behind it
func (e *Engine) QuotePAYE(annualTaxableIncome decimal.Decimal, ageAtEndOfTaxYear int) domain.PAYEQuote {
	age := effectiveAge(ageAtEndOfTaxYear)
	band := e.table.BandFor(age)
	tax := e.ComputePAYE(annualTaxableIncome, age)
	return domain.PAYEQuote{
		TaxYear:       e.table.Name(),
		TaxableIncome: annualTaxableIncome,
		Age:           age,
		Threshold:     band.Threshold,
		Rebate:        band.Rebate,
		AnnualTax:     tax,
		MonthlyTax:    Round2(tax.Div(monthsPerYear)),
		MarginalRate:  e.MarginalRate(annualTaxableIncome),
		EffectiveRate: e.EffectiveRate(annualTaxableIncome, age),
	}
}

// CalculateUIF returns the mirrored UIF contribution on monthly gross
func (e *Engine) CalculateUIF(monthlyGross decimal.Decimal) domain.UIFContribution {
	return CalculateUIF(monthlyGross, e.table)
}

// CalculateSDL returns the employer SDL on monthly gross
func (e *Engine) CalculateSDL(monthlyGross decimal.Decimal) decimal.Decimal {
	return CalculateSDL(monthlyGross, e.table)
}

// CalculatePayroll runs the annual-salary payroll calculation
func (e *Engine) CalculatePayroll(input domain.PayrollInput) domain.PayrollResult {
	result := CalculatePayroll(input, e.table)
	if e.Debug {
		e.Logger.Debugf("payroll %s: gross=%s pension_deduction=%s taxable=%s annual_paye=%s net=%s",
			result.TaxYear, result.MonthlyGross, result.PensionDeduction, result.AnnualTaxableIncome,
			result.AnnualPAYE, result.MonthlyNet)
	}
	if result.MonthlyNet.IsNegative() {
		e.Logger.Warnf("payroll %s: deductions exceed gross, net pay is %s", result.TaxYear, result.MonthlyNet)
	}
	return result
}

// CalculatePayslipAmounts runs the itemised single period calculation
func (e *Engine) CalculatePayslipAmounts(input domain.PayslipInput) domain.PayslipResult {
	result := CalculatePayslipAmounts(input, e.table)
	if e.Debug {
		e.Logger.Debugf("payslip %s: gross=%s paye=%s uif=%s sdl=%s net=%s",
			e.table.Name(), result.GrossPay, result.PAYE, result.UIFEmployee, result.SDL, result.NetPay)
	}
	if result.NetPay.IsNegative() {
		e.Logger.Warnf("payslip %s: deductions exceed gross, net pay is %s", e.table.Name(), result.NetPay)
	}
	return result
}

// MarginalRate returns the bracket rate that applies to the next rand of income
func (e *Engine) MarginalRate(annualTaxableIncome decimal.Decimal) decimal.Decimal {
	return MarginalRate(annualTaxableIncome, e.table)
}

// EffectiveRate returns annual PAYE as a fraction of taxable income
func (e *Engine) EffectiveRate(annualTaxableIncome decimal.Decimal, ageAtEndOfTaxYear int) decimal.Decimal {
	return EffectiveRate(annualTaxableIncome, ageAtEndOfTaxYear, e.table)
}
