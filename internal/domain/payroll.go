package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollInput drives the annual-salary payroll calculation.
// All contribution and deduction amounts are monthly.
type PayrollInput struct {
	AnnualGrossSalary           decimal.Decimal `yaml:"annual_gross_salary" json:"annual_gross_salary"`
	AgeAtEndOfTaxYear           int             `yaml:"age_at_end_of_tax_year,omitempty" json:"age_at_end_of_tax_year,omitempty"`
	PensionContributionEmployee decimal.Decimal `yaml:"pension_contribution_employee" json:"pension_contribution_employee"`
	MedicalAidContribution      decimal.Decimal `yaml:"medical_aid_contribution" json:"medical_aid_contribution"`
	OtherDeductions             decimal.Decimal `yaml:"other_deductions" json:"other_deductions"`
	PensionContributionEmployer decimal.Decimal `yaml:"pension_contribution_employer" json:"pension_contribution_employer"`
}

// PayrollResult holds monthly and annual figures derived from a PayrollInput
type PayrollResult struct {
	TaxYear string `yaml:"tax_year" json:"tax_year"`

	MonthlyGross decimal.Decimal `yaml:"monthly_gross" json:"monthly_gross"`
	AnnualGross  decimal.Decimal `yaml:"annual_gross" json:"annual_gross"`

	PensionDeduction    decimal.Decimal `yaml:"pension_deduction" json:"pension_deduction"`
	AnnualTaxableIncome decimal.Decimal `yaml:"annual_taxable_income" json:"annual_taxable_income"`

	MonthlyPAYE decimal.Decimal `yaml:"monthly_paye" json:"monthly_paye"`
	AnnualPAYE  decimal.Decimal `yaml:"annual_paye" json:"annual_paye"`

	UIFEmployee decimal.Decimal `yaml:"uif_employee" json:"uif_employee"`
	UIFEmployer decimal.Decimal `yaml:"uif_employer" json:"uif_employer"`
	SDL         decimal.Decimal `yaml:"sdl" json:"sdl"`

	PensionEmployee decimal.Decimal `yaml:"pension_employee" json:"pension_employee"`
	PensionEmployer decimal.Decimal `yaml:"pension_employer" json:"pension_employer"`
	MedicalAid      decimal.Decimal `yaml:"medical_aid" json:"medical_aid"`
	OtherDeductions decimal.Decimal `yaml:"other_deductions" json:"other_deductions"`

	TotalMonthlyDeductions decimal.Decimal `yaml:"total_monthly_deductions" json:"total_monthly_deductions"`
	MonthlyNet             decimal.Decimal `yaml:"monthly_net" json:"monthly_net"`
	AnnualNet              decimal.Decimal `yaml:"annual_net" json:"annual_net"`

	MonthlyEmployerCost decimal.Decimal `yaml:"monthly_employer_cost" json:"monthly_employer_cost"`
	AnnualEmployerCost  decimal.Decimal `yaml:"annual_employer_cost" json:"annual_employer_cost"`
}

// PayslipInput carries itemised, already-monthly compensation components
type PayslipInput struct {
	BasicSalary       decimal.Decimal `yaml:"basic_salary" json:"basic_salary"`
	Overtime          decimal.Decimal `yaml:"overtime" json:"overtime"`
	Bonus             decimal.Decimal `yaml:"bonus" json:"bonus"`
	Commission        decimal.Decimal `yaml:"commission" json:"commission"`
	Allowances        decimal.Decimal `yaml:"allowances" json:"allowances"`
	PensionEmployee   decimal.Decimal `yaml:"pension_employee" json:"pension_employee"`
	MedicalAid        decimal.Decimal `yaml:"medical_aid" json:"medical_aid"`
	OtherDeductions   decimal.Decimal `yaml:"other_deductions" json:"other_deductions"`
	AgeAtEndOfTaxYear int             `yaml:"age_at_end_of_tax_year,omitempty" json:"age_at_end_of_tax_year,omitempty"`
}

// PayslipResult is the single pay period outcome of a PayslipInput
type PayslipResult struct {
	GrossPay        decimal.Decimal `yaml:"gross_pay" json:"gross_pay"`
	PAYE            decimal.Decimal `yaml:"paye" json:"paye"`
	UIFEmployee     decimal.Decimal `yaml:"uif_employee" json:"uif_employee"`
	UIFEmployer     decimal.Decimal `yaml:"uif_employer" json:"uif_employer"`
	SDL             decimal.Decimal `yaml:"sdl" json:"sdl"`
	PensionEmployee decimal.Decimal `yaml:"pension_employee" json:"pension_employee"`
	MedicalAid      decimal.Decimal `yaml:"medical_aid" json:"medical_aid"`
	OtherDeductions decimal.Decimal `yaml:"other_deductions" json:"other_deductions"`
	TotalDeductions decimal.Decimal `yaml:"total_deductions" json:"total_deductions"`
	NetPay          decimal.Decimal `yaml:"net_pay" json:"net_pay"`
}

// EmployerCost is gross pay plus the employer's statutory levies
func (r PayslipResult) EmployerCost() decimal.Decimal {
	return r.GrossPay.Add(r.UIFEmployer).Add(r.SDL)
}

// UIFContribution is the mirrored employee/employer UIF amount
type UIFContribution struct {
	Employee decimal.Decimal `yaml:"employee" json:"employee"`
	Employer decimal.Decimal `yaml:"employer" json:"employer"`
}

// Total returns both legs combined
func (u UIFContribution) Total() decimal.Decimal {
	return u.Employee.Add(u.Employer)
}

// Employee is one roster entry for a pay run
type Employee struct {
	ID           string       `yaml:"id" json:"id"`
	Name         string       `yaml:"name" json:"name"`
	TaxNumber    string       `yaml:"tax_number,omitempty" json:"tax_number,omitempty"`
	BirthDate    time.Time    `yaml:"birth_date" json:"birth_date"`
	Compensation PayslipInput `yaml:"compensation" json:"compensation"`
}

// Roster is the employee list for one employer
type Roster struct {
	Employer      string     `yaml:"employer" json:"employer"`
	PAYEReference string     `yaml:"paye_reference,omitempty" json:"paye_reference,omitempty"`
	Employees     []Employee `yaml:"employees" json:"employees"`
}

// PayRunLine is one employee's payslip within a pay run
type PayRunLine struct {
	PayslipID    string        `yaml:"payslip_id" json:"payslip_id"`
	EmployeeID   string        `yaml:"employee_id" json:"employee_id"`
	EmployeeName string        `yaml:"employee_name" json:"employee_name"`
	Age          int           `yaml:"age" json:"age"`
	Payslip      PayslipResult `yaml:"payslip" json:"payslip"`
}

// EmployerDeclaration totals the employer's monthly statutory liability
type EmployerDeclaration struct {
	PAYE         decimal.Decimal `yaml:"paye" json:"paye"`
	UIF          decimal.Decimal `yaml:"uif" json:"uif"`
	SDL          decimal.Decimal `yaml:"sdl" json:"sdl"`
	Total        decimal.Decimal `yaml:"total" json:"total"`
	Employees    int             `yaml:"employees" json:"employees"`
	GrossPay     decimal.Decimal `yaml:"gross_pay" json:"gross_pay"`
	NetPay       decimal.Decimal `yaml:"net_pay" json:"net_pay"`
	EmployerCost decimal.Decimal `yaml:"employer_cost" json:"employer_cost"`
}

// PayRun is the result of computing payslips for a roster in one period
type PayRun struct {
	ID          string              `yaml:"id" json:"id"`
	Employer    string              `yaml:"employer" json:"employer"`
	Period      time.Time           `yaml:"period" json:"period"`
	TaxYear     string              `yaml:"tax_year" json:"tax_year"`
	Lines       []PayRunLine        `yaml:"lines" json:"lines"`
	Declaration EmployerDeclaration `yaml:"declaration" json:"declaration"`
}

// PAYEQuote explains an annual PAYE figure
type PAYEQuote struct {
	TaxYear       string          `yaml:"tax_year" json:"tax_year"`
	TaxableIncome decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	Age           int             `yaml:"age" json:"age"`
	Threshold     decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rebate        decimal.Decimal `yaml:"rebate" json:"rebate"`
	AnnualTax     decimal.Decimal `yaml:"annual_tax" json:"annual_tax"`
	MonthlyTax    decimal.Decimal `yaml:"monthly_tax" json:"monthly_tax"`
	MarginalRate  decimal.Decimal `yaml:"marginal_rate" json:"marginal_rate"`
	EffectiveRate decimal.Decimal `yaml:"effective_rate" json:"effective_rate"`
}

// GrossUp records the gross found for a desired monthly net pay
type GrossUp struct {
	Basis       string          `yaml:"basis" json:"basis"`
	TargetNet   decimal.Decimal `yaml:"target_net" json:"target_net"`
	Gross       decimal.Decimal `yaml:"gross" json:"gross"`
	AchievedNet decimal.Decimal `yaml:"achieved_net" json:"achieved_net"`
	Iterations  int             `yaml:"iterations" json:"iterations"`
}
