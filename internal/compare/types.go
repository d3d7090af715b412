package compare

import (
	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
)

// ComparisonResult is one tax year's payroll outcome for the compared input
type ComparisonResult struct {
	TaxYear string               `json:"taxYear"`
	Year    int                  `json:"year"`
	Result  domain.PayrollResult `json:"result"`

	// Key Metrics
	AnnualPAYE      decimal.Decimal `json:"annualPAYE"`
	MonthlyNet      decimal.Decimal `json:"monthlyNet"`
	MonthlyCostToCo decimal.Decimal `json:"monthlyCostToCompany"`
	EffectiveRate   decimal.Decimal `json:"effectiveRate"`
	MarginalRate    decimal.Decimal `json:"marginalRate"`

	// Comparison to Base
	PAYEDiffFromBase decimal.Decimal `json:"payeDiffFromBase"`
	NetDiffFromBase  decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase   decimal.Decimal `json:"netPctFromBase"`
}

// ComparisonSet holds the base year and the alternative years measured against it
type ComparisonSet struct {
	Input              domain.PayrollInput `json:"input"`
	BaseYear           int                 `json:"baseYear"`
	BaseResult         *ComparisonResult   `json:"baseResult"`
	AlternativeResults []ComparisonResult  `json:"alternativeResults"`
}

// All returns the base result followed by the alternatives
func (cs *ComparisonSet) All() []ComparisonResult {
	out := make([]ComparisonResult, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil {
		out = append(out, *cs.BaseResult)
	}
	return append(out, cs.AlternativeResults...)
}
