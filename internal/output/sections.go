package output

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
)

type item struct {
	Label   string
	Value   string
	Amount  decimal.Decimal
	IsMoney bool
}

type section struct {
	Title string
	Items []item
}

func money(label string, v decimal.Decimal) item {
	return item{Label: label, Value: v.StringFixed(2), Amount: v, IsMoney: true}
}

func text(label, v string) item {
	return item{Label: label, Value: v}
}

// sections flattens the single-subject payloads into labelled amounts.
// Pay runs are tabular and handled by each formatter directly.
func sections(r *Report) []section {
	var out []section
	if g := r.GrossUp; g != nil {
		out = append(out, section{Title: "Gross-up", Items: []item{
			text("Solved for", grossUpLabel(g.Basis)),
			money("Target net pay", g.TargetNet),
			money("Gross", g.Gross),
			money("Achieved net pay", g.AchievedNet),
			text("Iterations", strconv.Itoa(g.Iterations)),
		}})
	}
	if q := r.PAYE; q != nil {
		out = append(out, section{Title: "PAYE", Items: []item{
			text("Tax year", q.TaxYear),
			money("Annual taxable income", q.TaxableIncome),
			text("Age at end of tax year", strconv.Itoa(q.Age)),
			money("Tax threshold", q.Threshold),
			money("Total rebate", q.Rebate),
			money("Annual PAYE", q.AnnualTax),
			money("Monthly PAYE", q.MonthlyTax),
			text("Marginal rate", FormatPercentage(q.MarginalRate)),
			text("Effective rate", FormatPercentage(q.EffectiveRate)),
		}})
	}
	if p := r.Payroll; p != nil {
		out = append(out,
			section{Title: "Earnings", Items: []item{
				text("Tax year", p.TaxYear),
				money("Annual gross", p.AnnualGross),
				money("Monthly gross", p.MonthlyGross),
				money("Pension deduction for tax", p.PensionDeduction),
				money("Annual taxable income", p.AnnualTaxableIncome),
				money("Annual PAYE", p.AnnualPAYE),
			}},
			section{Title: "Monthly deductions", Items: []item{
				money("PAYE", p.MonthlyPAYE),
				money("UIF", p.UIFEmployee),
				money("Pension", p.PensionEmployee),
				money("Medical aid", p.MedicalAid),
				money("Other", p.OtherDeductions),
				money("Total deductions", p.TotalMonthlyDeductions),
				money("Net pay", p.MonthlyNet),
				money("Annual net pay", p.AnnualNet),
			}},
			section{Title: "Employer contributions", Items: []item{
				money("UIF", p.UIFEmployer),
				money("SDL", p.SDL),
				money("Pension", p.PensionEmployer),
				money("Monthly cost to company", p.MonthlyEmployerCost),
				money("Annual cost to company", p.AnnualEmployerCost),
			}},
		)
	}
	if s := r.Payslip; s != nil {
		out = append(out, payslipSections(*s)...)
	}
	return out
}

func grossUpLabel(basis string) string {
	if basis == "payroll" {
		return "Annual gross salary"
	}
	return "Monthly basic salary"
}

func payslipSections(s domain.PayslipResult) []section {
	return []section{
		{Title: "Payslip", Items: []item{
			money("Gross pay", s.GrossPay),
			money("PAYE", s.PAYE),
			money("UIF", s.UIFEmployee),
			money("Pension", s.PensionEmployee),
			money("Medical aid", s.MedicalAid),
			money("Other", s.OtherDeductions),
			money("Total deductions", s.TotalDeductions),
			money("Net pay", s.NetPay),
		}},
		{Title: "Employer contributions", Items: []item{
			money("UIF", s.UIFEmployer),
			money("SDL", s.SDL),
			money("Cost to company", s.EmployerCost()),
		}},
	}
}

func declarationItems(d domain.EmployerDeclaration) []item {
	return []item{
		text("Employees", strconv.Itoa(d.Employees)),
		money("Gross pay", d.GrossPay),
		money("Net pay", d.NetPay),
		money("PAYE", d.PAYE),
		money("UIF", d.UIF),
		money("SDL", d.SDL),
		money("Total payable to SARS", d.Total),
		money("Cost to company", d.EmployerCost),
	}
}

var payRunHeader = []string{"PayslipID", "EmployeeID", "Employee", "Age", "GrossPay", "PAYE", "UIFEmployee", "UIFEmployer", "SDL", "TotalDeductions", "NetPay"}

func payRunRow(l domain.PayRunLine) []string {
	p := l.Payslip
	return []string{
		l.PayslipID,
		l.EmployeeID,
		l.EmployeeName,
		strconv.Itoa(l.Age),
		p.GrossPay.StringFixed(2),
		p.PAYE.StringFixed(2),
		p.UIFEmployee.StringFixed(2),
		p.UIFEmployer.StringFixed(2),
		p.SDL.StringFixed(2),
		p.TotalDeductions.StringFixed(2),
		p.NetPay.StringFixed(2),
	}
}
