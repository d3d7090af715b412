package main

import (
	"fmt"
	"time"

	"github.com/smbledger/sapayroll/internal/config"
	"github.com/smbledger/sapayroll/internal/payrun"
	"github.com/spf13/cobra"
)

var payrunCmd = &cobra.Command{
	Use:   "payrun [roster-file]",
	Short: "Compute payslips for every employee on a roster for one month",
	Long: `Compute payslips for a roster and total the employer's monthly PAYE, UIF
and SDL liability.

Examples:
  sapayroll payrun roster.yaml --period 2024-06
  sapayroll payrun roster.yaml --period 2024-06 --format pdf --save
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		periodStr, _ := cmd.Flags().GetString("period")
		period, err := time.Parse("2006-01", periodStr)
		if err != nil {
			return fmt.Errorf("invalid --period %q, expected YYYY-MM: %w", periodStr, err)
		}

		roster, err := config.NewInputParser().LoadRoster(args[0])
		if err != nil {
			return err
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		runner := payrun.NewRunner(engine)
		runner.Concurrency, _ = cmd.Flags().GetInt("concurrency")

		run, err := runner.Run(cmd.Context(), roster, period)
		if err != nil {
			return err
		}
		report := newReport(engine)
		report.PayRun = run
		return emit(cmd, report)
	},
}

func init() {
	payrunCmd.Flags().String("period", "", "Pay period month, YYYY-MM")
	payrunCmd.Flags().Int("concurrency", payrun.DefaultConcurrency, "Payslips computed in parallel")
	_ = payrunCmd.MarkFlagRequired("period")
}
