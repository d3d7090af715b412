package main

import (
	"fmt"

	"github.com/smbledger/sapayroll/internal/config"
	"github.com/smbledger/sapayroll/internal/taxtable"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List built-in tax years or print one tax table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		show, _ := cmd.Flags().GetInt("show")
		if show == 0 {
			for _, y := range taxtable.Years() {
				t, err := taxtable.ForYear(y)
				if err != nil {
					return err
				}
				marker := ""
				if y == taxtable.CurrentYear {
					marker = " (current)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  %s to %s%s\n", y, t.Name(),
					t.StartDate().Format("2006-01-02"), t.EndDate().Format("2006-01-02"), marker)
			}
			return nil
		}

		t, err := taxtable.ForYear(show)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(t)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a tax table, roster, payroll or payslip file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		parser := config.NewInputParser()

		var err error
		switch kind {
		case "table":
			_, err = parser.LoadTaxTable(args[0])
		case "roster":
			_, err = parser.LoadRoster(args[0])
		case "payroll":
			_, err = parser.LoadPayrollInput(args[0])
		case "payslip":
			_, err = parser.LoadPayslipInput(args[0])
		default:
			return fmt.Errorf("unknown --kind %q (use table, roster, payroll or payslip)", kind)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s file %s is valid\n", kind, args[0])
		return nil
	},
}

func init() {
	tablesCmd.Flags().Int("show", 0, "Print the full table for this tax year as YAML")
	validateCmd.Flags().String("kind", "roster", "File kind: table, roster, payroll, payslip")
}
