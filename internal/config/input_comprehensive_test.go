package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
	"github.com/stretchr/testify/assert"
)

func validRoster() *domain.Roster {
	return &domain.Roster{
		Employer: "Karoo Joinery (Pty) Ltd",
		Employees: []domain.Employee{
			{
				ID:           "E001",
				Name:         "Thandi Nkosi",
				Compensation: domain.PayslipInput{BasicSalary: decimal.NewFromInt(23000), AgeAtEndOfTaxYear: 35},
			},
			{
				ID:           "E002",
				Name:         "Pieter van Wyk",
				BirthDate:    time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
				Compensation: domain.PayslipInput{BasicSalary: decimal.NewFromInt(7000)},
			},
		},
	}
}

func TestInputParser_ValidatePayrollInput(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		input   domain.PayrollInput
		message string
	}{
		{"valid", domain.PayrollInput{AnnualGrossSalary: decimal.NewFromInt(300000), AgeAtEndOfTaxYear: 45}, ""},
		{"unset age is allowed", domain.PayrollInput{AnnualGrossSalary: decimal.NewFromInt(300000)}, ""},
		{"negative salary", domain.PayrollInput{AnnualGrossSalary: decimal.NewFromInt(-1)}, "annual gross salary cannot be negative"},
		{"negative age", domain.PayrollInput{AgeAtEndOfTaxYear: -3}, "between 0 and 130"},
		{"implausible age", domain.PayrollInput{AgeAtEndOfTaxYear: 131}, "between 0 and 130"},
		{"negative pension", domain.PayrollInput{PensionContributionEmployee: decimal.NewFromInt(-5)}, "pension contribution (employee) cannot be negative"},
		{"negative employer pension", domain.PayrollInput{PensionContributionEmployer: decimal.NewFromInt(-5)}, "pension contribution (employer) cannot be negative"},
		{"negative medical aid", domain.PayrollInput{MedicalAidContribution: decimal.NewFromInt(-5)}, "medical aid contribution cannot be negative"},
		{"negative other", domain.PayrollInput{OtherDeductions: decimal.NewFromInt(-5)}, "other deductions cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidatePayrollInput(&tt.input)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

func TestInputParser_ValidatePayslipInput(t *testing.T) {
	parser := NewInputParser()

	assert.NoError(t, parser.ValidatePayslipInput(&domain.PayslipInput{BasicSalary: decimal.NewFromInt(1)}))
	assert.ErrorContains(t, parser.ValidatePayslipInput(&domain.PayslipInput{Bonus: decimal.NewFromInt(-1)}), "bonus cannot be negative")
	assert.ErrorContains(t, parser.ValidatePayslipInput(&domain.PayslipInput{Allowances: decimal.NewFromInt(-1)}), "allowances cannot be negative")
	assert.ErrorContains(t, parser.ValidatePayslipInput(&domain.PayslipInput{AgeAtEndOfTaxYear: 200}), "between 0 and 130")
}

func TestInputParser_ValidateReportsFirstNegativeAmount(t *testing.T) {
	parser := NewInputParser()
	minus := decimal.NewFromInt(-1)

	payslip := &domain.PayslipInput{Overtime: minus, Commission: minus, MedicalAid: minus, OtherDeductions: minus}
	payroll := &domain.PayrollInput{PensionContributionEmployer: minus, MedicalAidContribution: minus, OtherDeductions: minus}

	// repeated so an unordered walk over the amounts would show up
	for i := 0; i < 50; i++ {
		assert.EqualError(t, parser.ValidatePayslipInput(payslip), "overtime cannot be negative")
		assert.EqualError(t, parser.ValidatePayrollInput(payroll), "pension contribution (employer) cannot be negative")
	}
}

func TestInputParser_ValidateRoster(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidateRoster(validRoster()))

	tests := []struct {
		name    string
		mutate  func(*domain.Roster)
		message string
	}{
		{"missing employer", func(r *domain.Roster) { r.Employer = "" }, "employer is required"},
		{"no employees", func(r *domain.Roster) { r.Employees = nil }, "no employees provided"},
		{"missing id", func(r *domain.Roster) { r.Employees[1].ID = "" }, "employee 1: id is required"},
		{"duplicate id", func(r *domain.Roster) { r.Employees[1].ID = "E001" }, "employee 1: duplicate id E001"},
		{"missing name", func(r *domain.Roster) { r.Employees[0].Name = "" }, "employee 0 (E001): name is required"},
		{"no age source", func(r *domain.Roster) { r.Employees[1].BirthDate = time.Time{} }, "birth date or age at end of tax year is required"},
		{"bad compensation", func(r *domain.Roster) {
			r.Employees[0].Compensation.MedicalAid = decimal.NewFromInt(-100)
		}, "employee 0 (E001) compensation: medical aid cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := validRoster()
			tt.mutate(roster)
			assert.ErrorContains(t, parser.ValidateRoster(roster), tt.message)
		})
	}
}
