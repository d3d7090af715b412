package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes Section,Item,Amount rows, or one row per payslip for a pay run
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if run := report.PayRun; run != nil {
		if err := w.Write(payRunHeader); err != nil {
			return nil, err
		}
		for _, l := range run.Lines {
			if err := w.Write(payRunRow(l)); err != nil {
				return nil, err
			}
		}
		w.Flush()
		return buf.Bytes(), w.Error()
	}

	if err := w.Write([]string{"Section", "Item", "Value"}); err != nil {
		return nil, err
	}
	for _, s := range sections(report) {
		for _, it := range s.Items {
			if err := w.Write([]string{s.Title, it.Label, it.Value}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
