package output

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
)

// Report is what formatters render. Exactly one of the payload fields is
// normally set; formatters render whichever are present.
type Report struct {
	TaxYear     string                `json:"tax_year" yaml:"tax_year"`
	GeneratedAt time.Time             `json:"generated_at" yaml:"generated_at"`
	PAYE        *domain.PAYEQuote     `json:"paye,omitempty" yaml:"paye,omitempty"`
	Payroll     *domain.PayrollResult `json:"payroll,omitempty" yaml:"payroll,omitempty"`
	Payslip     *domain.PayslipResult `json:"payslip,omitempty" yaml:"payslip,omitempty"`
	PayRun      *domain.PayRun        `json:"pay_run,omitempty" yaml:"pay_run,omitempty"`
	GrossUp     *domain.GrossUp       `json:"gross_up,omitempty" yaml:"gross_up,omitempty"`
	Assumptions []string              `json:"assumptions,omitempty" yaml:"assumptions,omitempty"`
}

// Kind names the payload the report carries
func (r *Report) Kind() string {
	switch {
	case r.GrossUp != nil:
		return "grossup"
	case r.PayRun != nil:
		return "payrun"
	case r.Payslip != nil:
		return "payslip"
	case r.Payroll != nil:
		return "payroll"
	case r.PAYE != nil:
		return "paye"
	default:
		return "empty"
	}
}

// FormatCurrency formats a rand amount with space-grouped thousands, e.g. R 1 234.56
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	intPart, frac := fixed[:len(fixed)-3], fixed[len(fixed)-3:]

	var sb strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(c)
	}
	return sign + "R " + sb.String() + frac
}

// FormatPercentage formats a fraction (0.26) as a percentage (26.00%)
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
