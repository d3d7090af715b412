package compare

import (
	"encoding/json"
	"fmt"
)

// yearJSON is one tax year's row with amounts fixed to the cent
type yearJSON struct {
	TaxYear              string `json:"taxYear"`
	Year                 int    `json:"year"`
	Kind                 string `json:"kind"`
	AnnualPAYE           string `json:"annualPAYE"`
	MonthlyNet           string `json:"monthlyNet"`
	MonthlyCostToCompany string `json:"monthlyCostToCompany"`
	EffectiveRate        string `json:"effectiveRate"`
	MarginalRate         string `json:"marginalRate"`
	PAYEDiffFromBase     string `json:"payeDiffFromBase"`
	NetDiffFromBase      string `json:"netDiffFromBase"`
	NetPctFromBase       string `json:"netPctFromBase"`
}

type comparisonJSON struct {
	AnnualGrossSalary string     `json:"annualGrossSalary"`
	BaseYear          int        `json:"baseYear"`
	BaseTaxYear       string     `json:"baseTaxYear"`
	Years             []yearJSON `json:"years"`
}

// JSONFormatter renders a comparison as a flat list of tax years, base first
type JSONFormatter struct {
	Pretty bool
}

func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	if compSet.BaseResult == nil {
		return "", fmt.Errorf("comparison has no base year")
	}

	payload := comparisonJSON{
		AnnualGrossSalary: compSet.Input.AnnualGrossSalary.StringFixed(2),
		BaseYear:          compSet.BaseYear,
		BaseTaxYear:       compSet.BaseResult.TaxYear,
		Years:             []yearJSON{yearRow(compSet.BaseResult, "base")},
	}
	for i := range compSet.AlternativeResults {
		payload.Years = append(payload.Years, yearRow(&compSet.AlternativeResults[i], "alternative"))
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(payload, "", "  ")
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode comparison: %w", err)
	}
	return string(data), nil
}

func yearRow(r *ComparisonResult, kind string) yearJSON {
	return yearJSON{
		TaxYear:              r.TaxYear,
		Year:                 r.Year,
		Kind:                 kind,
		AnnualPAYE:           r.AnnualPAYE.StringFixed(2),
		MonthlyNet:           r.MonthlyNet.StringFixed(2),
		MonthlyCostToCompany: r.MonthlyCostToCo.StringFixed(2),
		EffectiveRate:        r.EffectiveRate.StringFixed(4),
		MarginalRate:         r.MarginalRate.StringFixed(2),
		PAYEDiffFromBase:     r.PAYEDiffFromBase.StringFixed(2),
		NetDiffFromBase:      r.NetDiffFromBase.StringFixed(2),
		NetPctFromBase:       r.NetPctFromBase.StringFixed(2),
	}
}
