// Package grossup finds the gross pay that produces a desired net pay.
//
// Net pay rises with gross (the top marginal PAYE rate is well below 100% and
// UIF is capped), so a bisection over whole cents converges on a gross whose
// net reaches the target while one cent less does not. Cent rounding means the
// achieved net can overshoot the target by a few cents.
package grossup

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/calculation"
	"github.com/smbledger/sapayroll/internal/domain"
)

var (
	cent = decimal.New(1, -2)
	two  = decimal.NewFromInt(2)
)

// Solver inverts the payroll calculations of one engine
type Solver struct {
	Engine  *calculation.Engine
	Options SolverOptions
}

// NewSolver creates a new gross-up solver
func NewSolver(engine *calculation.Engine, options SolverOptions) *Solver {
	return &Solver{Engine: engine, Options: options}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(engine *calculation.Engine) *Solver {
	return NewSolver(engine, DefaultSolverOptions())
}

// Solve finds a gross, to the cent, whose net pay is at least the target and
// one cent below which it is not
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	maxGross := s.Options.MaxGross
	if !maxGross.IsPositive() {
		maxGross = DefaultSolverOptions().MaxGross
	}

	table := s.Engine.Table()
	iterations := 0
	evaluate := func(gross decimal.Decimal) (decimal.Decimal, error) {
		iterations++
		if iterations > req.MaxIterations {
			return decimal.Zero, &GrossUpError{
				Operation: "solve",
				Message:   fmt.Sprintf("did not converge after %d iterations", req.MaxIterations),
			}
		}
		select {
		case <-ctx.Done():
			return decimal.Zero, &GrossUpError{Operation: "solve", Message: "cancelled", Cause: ctx.Err()}
		default:
		}
		return netPay(req, table, gross), nil
	}

	// Bracket the target: lo never reaches it, hi always does
	lo := decimal.Zero
	net, err := evaluate(lo)
	if err != nil {
		return nil, err
	}
	if net.GreaterThanOrEqual(req.TargetNet) {
		return s.result(req, lo, iterations, "target met at zero gross"), nil
	}
	hi := decimal.Max(req.TargetNet, decimal.NewFromInt(1000)).RoundCeil(2)
	for {
		net, err = evaluate(hi)
		if err != nil {
			return nil, err
		}
		if net.GreaterThanOrEqual(req.TargetNet) {
			break
		}
		lo = hi
		if hi.GreaterThanOrEqual(maxGross) {
			return nil, &GrossUpError{
				Operation: "solve",
				Message:   fmt.Sprintf("target net pay %s is not reachable below gross %s", req.TargetNet.StringFixed(2), maxGross.StringFixed(2)),
			}
		}
		hi = decimal.Min(hi.Mul(two), maxGross)
	}

	for hi.Sub(lo).GreaterThan(cent) {
		mid := lo.Add(hi).Div(two).RoundFloor(2)
		net, err = evaluate(mid)
		if err != nil {
			return nil, err
		}
		if net.GreaterThanOrEqual(req.TargetNet) {
			hi = mid
		} else {
			lo = mid
		}
	}

	return s.result(req, hi, iterations, "bisection converged to the cent"), nil
}

func netPay(req Request, table *domain.TaxTable, gross decimal.Decimal) decimal.Decimal {
	if req.Basis == BasisPayroll {
		in := req.Payroll
		in.AnnualGrossSalary = gross
		return calculation.CalculatePayroll(in, table).MonthlyNet
	}
	in := req.Payslip
	in.BasicSalary = gross
	return calculation.CalculatePayslipAmounts(in, table).NetPay
}

func (s *Solver) result(req Request, gross decimal.Decimal, iterations int, info string) *Result {
	res := &Result{Request: req, Success: true, Iterations: iterations, Gross: gross}
	if req.Basis == BasisPayroll {
		in := req.Payroll
		in.AnnualGrossSalary = gross
		payroll := s.Engine.CalculatePayroll(in)
		res.Payroll = &payroll
		res.AchievedNet = payroll.MonthlyNet
	} else {
		in := req.Payslip
		in.BasicSalary = gross
		payslip := s.Engine.CalculatePayslipAmounts(in)
		res.Payslip = &payslip
		res.AchievedNet = payslip.NetPay
	}
	res.ConvergenceInfo = info
	if over := res.AchievedNet.Sub(req.TargetNet); over.IsPositive() {
		res.ConvergenceInfo = fmt.Sprintf("%s; net exceeds target by %s", info, over.StringFixed(2))
	}
	s.Engine.Logger.Debugf("gross-up %s: target %s gross %s net %s after %d iterations",
		req.Basis, req.TargetNet, gross, res.AchievedNet, iterations)
	return res
}
