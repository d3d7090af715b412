package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smbledger/sapayroll/internal/compare"
	"github.com/smbledger/sapayroll/internal/config"
	"github.com/smbledger/sapayroll/internal/taxtable"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare a payroll input across tax years",
	Long: `Calculate the same annual-salary payroll input under several tax years.

Examples:
  sapayroll compare salary.yaml --base 2025 --with 2023,2024
  sapayroll compare salary.yaml --base 2025 --with 2023 --format csv
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := config.NewInputParser().LoadPayrollInput(args[0])
		if err != nil {
			return err
		}

		base, _ := cmd.Flags().GetInt("base")
		withStr, _ := cmd.Flags().GetString("with")
		years, err := parseYearList(withStr)
		if err != nil {
			return err
		}
		if len(years) == 0 {
			years = taxtable.Years()
		}

		engine := compare.NewCompareEngine()
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.Logger = simpleCLILogger{}
		}
		set, err := engine.Compare(*input, compare.CompareOptions{BaseYear: base, Years: years})
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		var out string
		switch format {
		case "console", "table":
			out = (&compare.TableFormatter{}).Format(set)
		case "csv":
			out, err = (&compare.CSVFormatter{}).Format(set)
		case "json":
			out, err = (&compare.JSONFormatter{Pretty: true}).Format(set)
		default:
			return fmt.Errorf("unsupported comparison format %q (use console, csv or json)", format)
		}
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// parseYearList parses "2023, 2024" into years
func parseYearList(s string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		y, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid tax year %q: %w", part, err)
		}
		years = append(years, y)
	}
	return years, nil
}

func init() {
	compareCmd.Flags().Int("base", taxtable.CurrentYear, "Base tax year")
	compareCmd.Flags().String("with", "", "Comma separated tax years to compare (default: all built-in years)")
}
