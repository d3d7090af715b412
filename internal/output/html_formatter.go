package output

import (
	"bytes"
	_ "embed"
	"html/template"
)

// HTMLFormatter produces a standalone HTML report
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"value": consoleValue,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*Report
		Sections    []section
		Declaration []item
	}{Report: report, Sections: sections(report)}
	if report.PayRun != nil {
		data.Declaration = declarationItems(report.PayRun.Declaration)
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
