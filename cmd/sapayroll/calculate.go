package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/config"
	"github.com/spf13/cobra"
)

var payeCmd = &cobra.Command{
	Use:   "paye",
	Short: "Calculate annual PAYE on taxable income",
	Long: `Calculate annual PAYE for a taxable income and age at the end of the tax year.

Examples:
  sapayroll paye --income 300000 --age 30
  sapayroll paye --income 300000 --age 70 --tax-year 2024 --format json
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		incomeStr, _ := cmd.Flags().GetString("income")
		age, _ := cmd.Flags().GetInt("age")

		income, err := decimal.NewFromString(incomeStr)
		if err != nil {
			return fmt.Errorf("invalid --income %q: %w", incomeStr, err)
		}
		if age < 0 {
			return fmt.Errorf("--age cannot be negative")
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		quote := engine.QuotePAYE(income, age)
		report := newReport(engine)
		report.PAYE = &quote
		return emit(cmd, report)
	},
}

var payrollCmd = &cobra.Command{
	Use:   "payroll [input-file]",
	Short: "Calculate monthly payroll from an annual gross salary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := config.NewInputParser().LoadPayrollInput(args[0])
		if err != nil {
			return err
		}
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		result := engine.CalculatePayroll(*input)
		report := newReport(engine)
		report.Payroll = &result
		return emit(cmd, report)
	},
}

var payslipCmd = &cobra.Command{
	Use:   "payslip [input-file]",
	Short: "Calculate a single payslip from itemised monthly earnings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := config.NewInputParser().LoadPayslipInput(args[0])
		if err != nil {
			return err
		}
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		result := engine.CalculatePayslipAmounts(*input)
		report := newReport(engine)
		report.Payslip = &result
		return emit(cmd, report)
	},
}

func init() {
	payeCmd.Flags().String("income", "", "Annual taxable income in rand")
	payeCmd.Flags().Int("age", 0, "Age at the end of the tax year (0 uses the default policy age)")
	_ = payeCmd.MarkFlagRequired("income")
}
