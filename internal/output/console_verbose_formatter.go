package output

import (
	"bytes"
	"fmt"
	"strings"
)

// ConsoleFormatter renders a plain-text report for terminals
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintf(&buf, "SOUTH AFRICAN PAYROLL - TAX YEAR %s\n", report.TaxYear)
	fmt.Fprintln(&buf, strings.Repeat("=", 60))

	for _, s := range sections(report) {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, strings.ToUpper(s.Title))
		fmt.Fprintln(&buf, strings.Repeat("-", len(s.Title)))
		for _, it := range s.Items {
			fmt.Fprintf(&buf, "  %-28s %s\n", it.Label+":", consoleValue(it))
		}
	}

	if run := report.PayRun; run != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "PAY RUN %s\n", run.ID)
		fmt.Fprintf(&buf, "Employer: %s   Period: %s\n", run.Employer, run.Period.Format("January 2006"))
		fmt.Fprintln(&buf, strings.Repeat("-", 60))
		fmt.Fprintf(&buf, "%-20s %12s %10s %8s %12s\n", "Employee", "Gross", "PAYE", "UIF", "Net")
		for _, l := range run.Lines {
			p := l.Payslip
			fmt.Fprintf(&buf, "%-20s %12s %10s %8s %12s\n", truncate(l.EmployeeName, 20),
				p.GrossPay.StringFixed(2), p.PAYE.StringFixed(2), p.UIFEmployee.StringFixed(2), p.NetPay.StringFixed(2))
		}
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "EMPLOYER DECLARATION")
		fmt.Fprintln(&buf, strings.Repeat("-", 20))
		for _, it := range declarationItems(run.Declaration) {
			fmt.Fprintf(&buf, "  %-28s %s\n", it.Label+":", consoleValue(it))
		}
	}

	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "ASSUMPTIONS")
		fmt.Fprintln(&buf, strings.Repeat("-", 11))
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

// consoleValue shows amounts as currency and leaves other text alone.
// The PDF formatter uses it too.
func consoleValue(it item) string {
	if it.IsMoney {
		return FormatCurrency(it.Amount)
	}
	return it.Value
}

// truncate shortens s to n characters, marking the cut with "~"
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
