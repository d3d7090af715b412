package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
	"github.com/smbledger/sapayroll/internal/taxtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	roster, err := parser.LoadRoster("nonexistent.yaml")
	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, roster, "Should return nil roster")
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputParser_InvalidYAML(t *testing.T) {
	path := writeFile(t, "invalid.yaml", "invalid: yaml: content: [unclosed")

	parser := NewInputParser()
	input, err := parser.LoadPayrollInput(path)
	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, input)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_LoadPayrollInput(t *testing.T) {
	path := writeFile(t, "payroll.yaml", `
annual_gross_salary: 600000
age_at_end_of_tax_year: 40
pension_contribution_employee: 20000
medical_aid_contribution: "3000.50"
other_deductions: 250
pension_contribution_employer: 5000
`)

	input, err := NewInputParser().LoadPayrollInput(path)
	require.NoError(t, err)
	assert.True(t, input.AnnualGrossSalary.Equal(decimal.NewFromInt(600000)))
	assert.Equal(t, 40, input.AgeAtEndOfTaxYear)
	assert.True(t, input.PensionContributionEmployee.Equal(decimal.NewFromInt(20000)))
	assert.True(t, input.MedicalAidContribution.Equal(decimal.RequireFromString("3000.50")))
	assert.True(t, input.OtherDeductions.Equal(decimal.NewFromInt(250)))
	assert.True(t, input.PensionContributionEmployer.Equal(decimal.NewFromInt(5000)))
}

func TestInputParser_LoadPayrollInput_Invalid(t *testing.T) {
	path := writeFile(t, "payroll.yaml", "annual_gross_salary: -1\n")

	input, err := NewInputParser().LoadPayrollInput(path)
	assert.Nil(t, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payroll input validation failed")
	assert.Contains(t, err.Error(), "annual gross salary cannot be negative")
}

func TestInputParser_LoadPayslipInput(t *testing.T) {
	path := writeFile(t, "payslip.yaml", `
basic_salary: 20000
overtime: 1500
commission: 500
allowances: 1000
pension_employee: 2000
medical_aid: 1500
other_deductions: 100
age_at_end_of_tax_year: 35
`)

	input, err := NewInputParser().LoadPayslipInput(path)
	require.NoError(t, err)
	assert.True(t, input.BasicSalary.Equal(decimal.NewFromInt(20000)))
	assert.True(t, input.Bonus.IsZero(), "missing fields default to zero")
	assert.Equal(t, 35, input.AgeAtEndOfTaxYear)
}

func TestInputParser_LoadRoster(t *testing.T) {
	path := writeFile(t, "roster.yaml", `
employer: Karoo Joinery (Pty) Ltd
paye_reference: "7000000000"
employees:
  - id: E001
    name: Thandi Nkosi
    tax_number: "0123456789"
    compensation:
      basic_salary: 23000
      age_at_end_of_tax_year: 35
  - id: E002
    name: Pieter van Wyk
    birth_date: 1990-06-15
    compensation:
      basic_salary: 7000
`)

	roster, err := NewInputParser().LoadRoster(path)
	require.NoError(t, err)
	assert.Equal(t, "Karoo Joinery (Pty) Ltd", roster.Employer)
	assert.Equal(t, "7000000000", roster.PAYEReference)
	require.Len(t, roster.Employees, 2)
	assert.Equal(t, "0123456789", roster.Employees[0].TaxNumber)
	assert.True(t, roster.Employees[0].BirthDate.IsZero())
	assert.Equal(t, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC), roster.Employees[1].BirthDate)
	assert.True(t, roster.Employees[1].Compensation.BasicSalary.Equal(decimal.NewFromInt(7000)))
}

func TestInputParser_LoadTaxTable(t *testing.T) {
	data, err := yaml.Marshal(taxtable.Current())
	require.NoError(t, err)
	path := writeFile(t, "table.yaml", string(data))

	table, err := NewInputParser().LoadTaxTable(path)
	require.NoError(t, err)
	assert.Equal(t, 2025, table.Year)
	require.Len(t, table.Brackets, 7)
	assert.True(t, table.Brackets[6].Unbounded())
	assert.True(t, table.Brackets[1].BaseTax.Equal(decimal.NewFromInt(42678)))
	assert.True(t, table.Rebates.Tertiary.Equal(decimal.NewFromInt(3145)))
}

func TestInputParser_LoadTaxTable_Invalid(t *testing.T) {
	path := writeFile(t, "table.yaml", `
year: 2025
brackets:
  - min: 0
    max: 100000
    rate: 0.18
    base_tax: 0
  - min: 100005
    rate: 0.26
    base_tax: 18000
uif_rate: 0.01
uif_monthly_earnings_cap: 17712
sdl_rate: 0.01
`)

	table, err := NewInputParser().LoadTaxTable(path)
	assert.Nil(t, table)
	assert.ErrorIs(t, err, domain.ErrInvalidTaxTable)
	assert.Contains(t, err.Error(), "must start at 100001")
}

func TestInputParser_ResolveTaxTable(t *testing.T) {
	parser := NewInputParser()

	t.Run("current year by default", func(t *testing.T) {
		table, err := parser.ResolveTaxTable(0, "")
		require.NoError(t, err)
		assert.Equal(t, taxtable.CurrentYear, table.Year)
	})

	t.Run("registered year", func(t *testing.T) {
		table, err := parser.ResolveTaxTable(2023, "")
		require.NoError(t, err)
		assert.Equal(t, 2023, table.Year)
	})

	t.Run("unknown year is an error", func(t *testing.T) {
		table, err := parser.ResolveTaxTable(2001, "")
		assert.Nil(t, table)
		assert.ErrorIs(t, err, domain.ErrUnknownTaxYear)
	})

	t.Run("override file", func(t *testing.T) {
		custom := taxtable.Current()
		custom.Year = 2030
		custom.Label = "2030 draft"
		data, err := yaml.Marshal(custom)
		require.NoError(t, err)
		path := writeFile(t, "draft.yaml", string(data))

		table, err := parser.ResolveTaxTable(0, path)
		require.NoError(t, err)
		assert.Equal(t, "2030 draft", table.Name())

		table, err = parser.ResolveTaxTable(2030, path)
		require.NoError(t, err)
		assert.Equal(t, 2030, table.Year)

		table, err = parser.ResolveTaxTable(2025, path)
		assert.Nil(t, table)
		assert.ErrorContains(t, err, "is for 2030, requested 2025")
	})
}
