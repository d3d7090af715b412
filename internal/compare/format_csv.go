package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Tax Year",
		"Type",
		"Annual PAYE",
		"Monthly Net",
		"Monthly Cost To Company",
		"Effective Rate",
		"Marginal Rate",
		"PAYE Diff from Base",
		"Net Diff from Base",
		"Net % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}
	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, kind string) []string {
	return []string{
		result.TaxYear,
		kind,
		result.AnnualPAYE.StringFixed(2),
		result.MonthlyNet.StringFixed(2),
		result.MonthlyCostToCo.StringFixed(2),
		result.EffectiveRate.StringFixed(4),
		result.MarginalRate.StringFixed(2),
		result.PAYEDiffFromBase.StringFixed(2),
		result.NetDiffFromBase.StringFixed(2),
		result.NetPctFromBase.StringFixed(2),
	}
}
