package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
)

// CappedPensionDeduction limits the annual pension deduction allowed for tax
// to the lowest of the contribution itself, 27.5% of gross and R350 000
func CappedPensionDeduction(monthlyContribution, annualGross decimal.Decimal) decimal.Decimal {
	annualContribution := monthlyContribution.Mul(monthsPerYear)
	return decimal.Min(annualContribution, annualGross.Mul(pensionCapRate), pensionCapMax)
}

// CalculatePayroll derives monthly and annual payroll figures from an annual
// gross salary. Monthly PAYE is the annual liability divided by twelve, not a
// monthly recalculation.
func CalculatePayroll(input domain.PayrollInput, table *domain.TaxTable) domain.PayrollResult {
	age := effectiveAge(input.AgeAtEndOfTaxYear)
	monthlyGross := Round2(input.AnnualGrossSalary.Div(monthsPerYear))

	pensionDeduction := CappedPensionDeduction(input.PensionContributionEmployee, input.AnnualGrossSalary)
	taxable := input.AnnualGrossSalary.Sub(pensionDeduction)
	annualPAYE := ComputePAYE(taxable, age, table)
	monthlyPAYE := Round2(annualPAYE.Div(monthsPerYear))

	uif := CalculateUIF(monthlyGross, table)
	sdl := CalculateSDL(monthlyGross, table)

	// the raw employee contribution is deducted from pay; only the tax base uses the cap
	totalDeductions := Round2(monthlyPAYE.
		Add(uif.Employee).
		Add(input.PensionContributionEmployee).
		Add(input.MedicalAidContribution).
		Add(input.OtherDeductions))
	net := Round2(monthlyGross.Sub(totalDeductions))

	employerCost := Round2(monthlyGross.
		Add(uif.Employer).
		Add(sdl).
		Add(input.PensionContributionEmployer))

	return domain.PayrollResult{
		TaxYear:                table.Name(),
		MonthlyGross:           monthlyGross,
		AnnualGross:            input.AnnualGrossSalary,
		PensionDeduction:       pensionDeduction,
		AnnualTaxableIncome:    taxable,
		MonthlyPAYE:            monthlyPAYE,
		AnnualPAYE:             annualPAYE,
		UIFEmployee:            uif.Employee,
		UIFEmployer:            uif.Employer,
		SDL:                    sdl,
		PensionEmployee:        input.PensionContributionEmployee,
		PensionEmployer:        input.PensionContributionEmployer,
		MedicalAid:             input.MedicalAidContribution,
		OtherDeductions:        input.OtherDeductions,
		TotalMonthlyDeductions: totalDeductions,
		MonthlyNet:             net,
		AnnualNet:              Round2(net.Mul(monthsPerYear)),
		MonthlyEmployerCost:    employerCost,
		AnnualEmployerCost:     Round2(employerCost.Mul(monthsPerYear)),
	}
}

// CalculatePayslipAmounts computes a single pay period from itemised monthly
// components.
//
// NOTE: unlike CalculatePayroll, the pension contribution reduces the tax base
// without the 27.5% / R350 000 cap. Existing payslips were issued this way, so
// the two paths intentionally differ until that is settled.
func CalculatePayslipAmounts(input domain.PayslipInput, table *domain.TaxTable) domain.PayslipResult {
	age := effectiveAge(input.AgeAtEndOfTaxYear)
	grossPay := input.BasicSalary.
		Add(input.Overtime).
		Add(input.Bonus).
		Add(input.Commission).
		Add(input.Allowances)

	annualGross := grossPay.Mul(monthsPerYear)
	taxable := annualGross.Sub(input.PensionEmployee.Mul(monthsPerYear))
	paye := Round2(ComputePAYE(taxable, age, table).Div(monthsPerYear))

	uif := CalculateUIF(grossPay, table)
	sdl := CalculateSDL(grossPay, table)

	totalDeductions := Round2(paye.
		Add(uif.Employee).
		Add(input.PensionEmployee).
		Add(input.MedicalAid).
		Add(input.OtherDeductions))

	return domain.PayslipResult{
		GrossPay:        grossPay,
		PAYE:            paye,
		UIFEmployee:     uif.Employee,
		UIFEmployer:     uif.Employer,
		SDL:             sdl,
		PensionEmployee: input.PensionEmployee,
		MedicalAid:      input.MedicalAid,
		OtherDeductions: input.OtherDeductions,
		TotalDeductions: totalDeductions,
		NetPay:          Round2(grossPay.Sub(totalDeductions)),
	}
}
