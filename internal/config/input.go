package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
	"github.com/smbledger/sapayroll/internal/taxtable"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files.
// The calculator performs no input validation; everything callers supply is
// checked here before it reaches the engine.
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

func readYAML(filename string, out any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML %s: %w", filename, err)
	}
	return nil
}

// LoadTaxTable loads and validates a tax table from a YAML file
func (ip *InputParser) LoadTaxTable(filename string) (*domain.TaxTable, error) {
	var table domain.TaxTable
	if err := readYAML(filename, &table); err != nil {
		return nil, err
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("tax table %s: %w", filename, err)
	}
	return &table, nil
}

// ResolveTaxTable returns the table from overridePath when given, otherwise the
// registered table for year (0 selects the current year). Failures are
// returned, never replaced with another year's table.
func (ip *InputParser) ResolveTaxTable(year int, overridePath string) (*domain.TaxTable, error) {
	if overridePath != "" {
		table, err := ip.LoadTaxTable(overridePath)
		if err != nil {
			return nil, err
		}
		if year != 0 && table.Year != year {
			return nil, fmt.Errorf("tax table %s is for %d, requested %d", overridePath, table.Year, year)
		}
		return table, nil
	}
	if year == 0 {
		year = taxtable.CurrentYear
	}
	return taxtable.ForYear(year)
}

// LoadPayrollInput loads an annual-salary payroll input
func (ip *InputParser) LoadPayrollInput(filename string) (*domain.PayrollInput, error) {
	var input domain.PayrollInput
	if err := readYAML(filename, &input); err != nil {
		return nil, err
	}
	if err := ip.ValidatePayrollInput(&input); err != nil {
		return nil, fmt.Errorf("payroll input validation failed: %w", err)
	}
	return &input, nil
}

// LoadPayslipInput loads an itemised monthly payslip input
func (ip *InputParser) LoadPayslipInput(filename string) (*domain.PayslipInput, error) {
	var input domain.PayslipInput
	if err := readYAML(filename, &input); err != nil {
		return nil, err
	}
	if err := ip.ValidatePayslipInput(&input); err != nil {
		return nil, fmt.Errorf("payslip input validation failed: %w", err)
	}
	return &input, nil
}

// LoadRoster loads an employer roster
func (ip *InputParser) LoadRoster(filename string) (*domain.Roster, error) {
	var roster domain.Roster
	if err := readYAML(filename, &roster); err != nil {
		return nil, err
	}
	if err := ip.ValidateRoster(&roster); err != nil {
		return nil, fmt.Errorf("roster validation failed: %w", err)
	}
	return &roster, nil
}

// ValidatePayrollInput rejects inputs the calculator would silently mis-handle
func (ip *InputParser) ValidatePayrollInput(input *domain.PayrollInput) error {
	if input.AnnualGrossSalary.IsNegative() {
		return fmt.Errorf("annual gross salary cannot be negative")
	}
	if err := validateAge(input.AgeAtEndOfTaxYear); err != nil {
		return err
	}
	return validateNonNegative([]namedAmount{
		{"pension contribution (employee)", input.PensionContributionEmployee},
		{"pension contribution (employer)", input.PensionContributionEmployer},
		{"medical aid contribution", input.MedicalAidContribution},
		{"other deductions", input.OtherDeductions},
	})
}

// ValidatePayslipInput checks an itemised payslip input
func (ip *InputParser) ValidatePayslipInput(input *domain.PayslipInput) error {
	if err := validateAge(input.AgeAtEndOfTaxYear); err != nil {
		return err
	}
	return validateNonNegative([]namedAmount{
		{"basic salary", input.BasicSalary},
		{"overtime", input.Overtime},
		{"bonus", input.Bonus},
		{"commission", input.Commission},
		{"allowances", input.Allowances},
		{"pension employee", input.PensionEmployee},
		{"medical aid", input.MedicalAid},
		{"other deductions", input.OtherDeductions},
	})
}

// ValidateRoster checks the employer and every employee entry
func (ip *InputParser) ValidateRoster(roster *domain.Roster) error {
	if roster.Employer == "" {
		return fmt.Errorf("employer is required")
	}
	if len(roster.Employees) == 0 {
		return fmt.Errorf("no employees provided")
	}
	seen := make(map[string]bool, len(roster.Employees))
	for i, emp := range roster.Employees {
		if emp.ID == "" {
			return fmt.Errorf("employee %d: id is required", i)
		}
		if seen[emp.ID] {
			return fmt.Errorf("employee %d: duplicate id %s", i, emp.ID)
		}
		seen[emp.ID] = true
		if emp.Name == "" {
			return fmt.Errorf("employee %d (%s): name is required", i, emp.ID)
		}
		if emp.BirthDate.IsZero() && emp.Compensation.AgeAtEndOfTaxYear == 0 {
			return fmt.Errorf("employee %d (%s): birth date or age at end of tax year is required", i, emp.ID)
		}
		if err := ip.ValidatePayslipInput(&emp.Compensation); err != nil {
			return fmt.Errorf("employee %d (%s) compensation: %w", i, emp.ID, err)
		}
	}
	return nil
}

func validateAge(age int) error {
	if age < 0 || age > 130 {
		return fmt.Errorf("age at end of tax year must be between 0 and 130, got %d", age)
	}
	return nil
}

type namedAmount struct {
	name  string
	value decimal.Decimal
}

// validateNonNegative reports the first negative amount in input order
func validateNonNegative(amounts []namedAmount) error {
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", a.name)
		}
	}
	return nil
}
