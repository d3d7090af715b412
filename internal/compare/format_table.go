package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing tax years
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("TAX YEAR COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Annual gross salary: %s\n", compSet.Input.AnnualGrossSalary.StringFixed(2)))
	if compSet.BaseResult != nil {
		sb.WriteString(fmt.Sprintf("Base tax year: %s\n", compSet.BaseResult.TaxYear))
	}
	sb.WriteString("\n")

	nameWidth := 12
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Tax Year",
		numWidth, "Annual PAYE",
		numWidth, "Monthly Net",
		numWidth, "Cost to Co",
		numWidth, "Effective"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	for _, r := range compSet.All() {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
			nameWidth, r.TaxYear,
			numWidth, r.AnnualPAYE.StringFixed(2),
			numWidth, r.MonthlyNet.StringFixed(2),
			numWidth, r.MonthlyCostToCo.StringFixed(2),
			numWidth, r.EffectiveRate.Mul(decimal.NewFromInt(100)).StringFixed(2)+"%"))
	}
	sb.WriteString(strings.Repeat("=", 72) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("%s:\n", alt.TaxYear))
			sb.WriteString(fmt.Sprintf("  Annual PAYE:  %s%s\n", tf.deltaSymbol(alt.PAYEDiffFromBase), alt.PAYEDiffFromBase.Abs().StringFixed(2)))
			sb.WriteString(fmt.Sprintf("  Monthly Net:  %s%s (%s%%)\n", tf.deltaSymbol(alt.NetDiffFromBase), alt.NetDiffFromBase.Abs().StringFixed(2), alt.NetPctFromBase.StringFixed(2)))
		}
	}
	return sb.String()
}

func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	switch {
	case d.IsPositive():
		return "+"
	case d.IsNegative():
		return "-"
	default:
		return ""
	}
}
