package grossup

import (
	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
)

// Basis selects which calculation the solver inverts
type Basis string

const (
	BasisPayslip Basis = "payslip" // Solve BasicSalary so the payslip's NetPay reaches the target
	BasisPayroll Basis = "payroll" // Solve AnnualGrossSalary so MonthlyNet reaches the target
)

// Request defines one gross-up
type Request struct {
	Basis     Basis
	TargetNet decimal.Decimal // Desired monthly net pay

	// Templates. The solved field is overwritten; everything else is held fixed.
	Payslip domain.PayslipInput
	Payroll domain.PayrollInput

	MaxIterations int // Maximum net pay evaluations; 0 uses the solver default
}

// Result contains the solved gross and the calculation at that gross
type Result struct {
	Request         Request
	Success         bool
	Iterations      int
	ConvergenceInfo string

	Gross       decimal.Decimal       `json:"gross"`
	AchievedNet decimal.Decimal       `json:"achieved_net"`
	Payslip     *domain.PayslipResult `json:"payslip,omitempty"`
	Payroll     *domain.PayrollResult `json:"payroll,omitempty"`
}

// Summary reduces the result to the reportable figures
func (r *Result) Summary() *domain.GrossUp {
	return &domain.GrossUp{
		Basis:       string(r.Request.Basis),
		TargetNet:   r.Request.TargetNet,
		Gross:       r.Gross,
		AchievedNet: r.AchievedNet,
		Iterations:  r.Iterations,
	}
}

// SolverOptions configures the search
type SolverOptions struct {
	MaxIterations int             // Maximum net pay evaluations
	MaxGross      decimal.Decimal // Upper bound on the solved gross
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 100,
		MaxGross:      decimal.NewFromInt(1_000_000_000),
	}
}

// Validate checks the request before any calculation runs
func (r *Request) Validate() error {
	if r.Basis != BasisPayslip && r.Basis != BasisPayroll {
		return &GrossUpError{
			Operation: "validate_request",
			Message:   "basis must be payslip or payroll, got " + string(r.Basis),
		}
	}
	if r.TargetNet.IsNegative() {
		return &GrossUpError{
			Operation: "validate_request",
			Message:   "target net pay cannot be negative",
		}
	}
	return nil
}

// GrossUpError represents errors from the gross-up solver
type GrossUpError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *GrossUpError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *GrossUpError) Unwrap() error {
	return e.Cause
}
