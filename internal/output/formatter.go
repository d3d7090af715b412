package output

import (
	"fmt"
	"os"
	"sort"
	"time"
)

// Formatter renders a report into bytes
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *Report) ([]byte, error) { return f.F(report) }

var formatters = map[string]Formatter{}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(JSONFormatter{Pretty: true})
	register(FormatterFunc{ID: "json-compact", F: JSONFormatter{}.Format})
	register(CSVFormatter{})
	register(YAMLFormatter{})
	register(PDFFormatter{})
	register(HTMLFormatter{})
}

// GetFormatterByName returns the registered formatter or nil
func GetFormatterByName(name string) Formatter {
	return formatters[name]
}

// FormatterNames lists registered formatter names alphabetically
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// WriteFormatted formats the report and writes it to a timestamped file in
// the working directory, returning the filename
func WriteFormatted(f Formatter, report *Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("payroll_report_%s_%s.%s", report.Kind(), time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
