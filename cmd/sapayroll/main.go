package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/smbledger/sapayroll/internal/calculation"
	"github.com/smbledger/sapayroll/internal/config"
	"github.com/smbledger/sapayroll/internal/output"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sapayroll %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "sapayroll",
	Short: "South African payroll tax calculator",
	Long: `Calculate PAYE, UIF and SDL, payroll net pay and employer cost, and
monthly pay runs for South African employers using published SARS tax tables.`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("tax-year", 0, "Tax year, named by the year it ends (2025 = 2024/2025); 0 selects the current year")
	flags.String("tax-table", "", "YAML file with a custom tax table (overrides --tax-year)")
	flags.StringP("format", "f", "console", "Output format: "+strings.Join(output.FormatterNames(), ", "))
	flags.Bool("save", false, "Write the report to a timestamped file instead of stdout")
	flags.Bool("debug", false, "Log intermediate calculation figures")

	rootCmd.AddCommand(payeCmd)
	rootCmd.AddCommand(payrollCmd)
	rootCmd.AddCommand(payslipCmd)
	rootCmd.AddCommand(payrunCmd)
	rootCmd.AddCommand(grossupCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

// newEngine builds a calculation engine from the global tax year flags
func newEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	year, _ := cmd.Flags().GetInt("tax-year")
	tablePath, _ := cmd.Flags().GetString("tax-table")

	table, err := config.NewInputParser().ResolveTaxTable(year, tablePath)
	if err != nil {
		return nil, err
	}
	engine, err := calculation.NewEngineWithTable(table)
	if err != nil {
		return nil, err
	}

	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	engine.Debug = debugMode
	return engine, nil
}

// newReport starts a report for the engine's tax year
func newReport(engine *calculation.Engine) *output.Report {
	return &output.Report{TaxYear: engine.TaxYear(), Assumptions: output.Assumptions(engine.Table())}
}

// emit renders the report with the selected formatter to stdout or a file
func emit(cmd *cobra.Command, report *output.Report) error {
	format, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format %q (available: %v)", format, output.FormatterNames())
	}
	report.GeneratedAt = time.Now()

	save, _ := cmd.Flags().GetBool("save")
	if save {
		filename, err := output.WriteFormatted(f, report, format)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
		return nil
	}

	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
