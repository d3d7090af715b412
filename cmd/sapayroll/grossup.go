package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/config"
	"github.com/smbledger/sapayroll/internal/grossup"
	"github.com/spf13/cobra"
)

var grossupCmd = &cobra.Command{
	Use:   "grossup [input-file]",
	Short: "Find the gross pay that produces a desired monthly net pay",
	Long: `Solve for the gross pay that yields a target monthly net pay, holding every
other earning and deduction in the input file fixed.

With --basis payslip (the default) the input is a payslip file and the monthly
basic salary is solved. With --basis payroll the input is a payroll file and
the annual gross salary is solved.

Examples:
  sapayroll grossup payslip.yaml --net 25000
  sapayroll grossup salary.yaml --basis payroll --net 25000 --format json
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		netStr, _ := cmd.Flags().GetString("net")
		basis, _ := cmd.Flags().GetString("basis")

		target, err := decimal.NewFromString(netStr)
		if err != nil {
			return fmt.Errorf("invalid --net %q: %w", netStr, err)
		}

		req := grossup.Request{Basis: grossup.Basis(basis), TargetNet: target}
		parser := config.NewInputParser()
		switch req.Basis {
		case grossup.BasisPayslip:
			input, err := parser.LoadPayslipInput(args[0])
			if err != nil {
				return err
			}
			req.Payslip = *input
		case grossup.BasisPayroll:
			input, err := parser.LoadPayrollInput(args[0])
			if err != nil {
				return err
			}
			req.Payroll = *input
		default:
			return fmt.Errorf("unknown --basis %q (use payslip or payroll)", basis)
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		result, err := grossup.NewDefaultSolver(engine).Solve(cmd.Context(), req)
		if err != nil {
			return err
		}
		report := newReport(engine)
		report.GrossUp = result.Summary()
		report.Payslip = result.Payslip
		report.Payroll = result.Payroll
		return emit(cmd, report)
	},
}

func init() {
	grossupCmd.Flags().String("net", "", "Target monthly net pay in rand")
	grossupCmd.Flags().String("basis", string(grossup.BasisPayslip), "Input kind to solve: payslip or payroll")
	_ = grossupCmd.MarkFlagRequired("net")
}
