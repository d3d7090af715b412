package output

import (
	"fmt"

	"github.com/smbledger/sapayroll/internal/domain"
)

// Assumptions lists the statutory parameters and policies behind a report,
// rendered in the console and HTML outputs
func Assumptions(table *domain.TaxTable) []string {
	primary := table.Rebates.Primary
	secondary := primary.Add(table.Rebates.Secondary)
	tertiary := secondary.Add(table.Rebates.Tertiary)
	return []string{
		fmt.Sprintf("Tax year %s: %s to %s", table.Name(),
			table.StartDate().Format("2 January 2006"), table.EndDate().Format("2 January 2006")),
		fmt.Sprintf("Rebates: %s under 65, %s from 65, %s from 75",
			FormatCurrency(primary), FormatCurrency(secondary), FormatCurrency(tertiary)),
		fmt.Sprintf("Tax thresholds: %s under 65, %s from 65, %s from 75",
			FormatCurrency(table.Thresholds.Under65), FormatCurrency(table.Thresholds.Age65To74), FormatCurrency(table.Thresholds.Age75Plus)),
		fmt.Sprintf("UIF: %s each for employee and employer, on earnings up to %s per month",
			FormatPercentage(table.UIFRate), FormatCurrency(table.UIFMonthlyEarningsCap)),
		fmt.Sprintf("SDL: %s of monthly gross, paid by the employer", FormatPercentage(table.SDLRate)),
		"Payroll pension deduction for tax: lowest of contributions, 27.5% of gross and R 350 000 a year",
		"Payslip pension deduction for tax: full employee contribution, uncapped",
		"Age at end of tax year defaults to 30 when not supplied",
	}
}
