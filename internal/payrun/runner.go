// Package payrun computes payslips for a whole roster in one pay period and
// totals the employer's statutory liability for that month.
package payrun

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/smbledger/sapayroll/internal/calculation"
	"github.com/smbledger/sapayroll/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of payslips computed at once
const DefaultConcurrency = 8

// ErrPeriodOutsideTaxYear is returned when a pay period is not covered by the engine's table
var ErrPeriodOutsideTaxYear = errors.New("pay period outside tax year")

// Runner computes pay runs against one calculation engine
type Runner struct {
	Engine      *calculation.Engine
	Concurrency int
	// NewID generates run and payslip identifiers
	NewID func() string
}

// NewRunner creates a runner with default concurrency and random UUID identifiers
func NewRunner(engine *calculation.Engine) *Runner {
	return &Runner{
		Engine:      engine,
		Concurrency: DefaultConcurrency,
		NewID:       uuid.NewString,
	}
}

// Run computes one payslip per roster employee for the month containing period.
// Lines come back in roster order regardless of completion order.
func (r *Runner) Run(ctx context.Context, roster *domain.Roster, period time.Time) (*domain.PayRun, error) {
	table := r.Engine.Table()
	period = time.Date(period.Year(), period.Month(), 1, 0, 0, 0, 0, time.UTC)
	if period.Before(table.StartDate()) || period.After(table.EndDate()) {
		return nil, fmt.Errorf("%w: %s is not in %s", ErrPeriodOutsideTaxYear, period.Format("2006-01"), table.Name())
	}

	newID := r.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	limit := r.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	run := &domain.PayRun{
		ID:       newID(),
		Employer: roster.Employer,
		Period:   period,
		TaxYear:  table.Name(),
		Lines:    make([]domain.PayRunLine, len(roster.Employees)),
	}
	ids := make([]string, len(roster.Employees))
	for i := range ids {
		ids[i] = newID()
	}

	r.Engine.Logger.Infof("pay run %s: %d employees for %s (%s)", run.ID, len(roster.Employees), period.Format("2006-01"), run.TaxYear)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, emp := range roster.Employees {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			input := emp.Compensation
			age := AgeAt(emp.BirthDate, table.EndDate())
			if input.AgeAtEndOfTaxYear == 0 && !emp.BirthDate.IsZero() {
				input.AgeAtEndOfTaxYear = age
			}
			run.Lines[i] = domain.PayRunLine{
				PayslipID:    ids[i],
				EmployeeID:   emp.ID,
				EmployeeName: emp.Name,
				Age:          input.AgeAtEndOfTaxYear,
				Payslip:      r.Engine.CalculatePayslipAmounts(input),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("pay run %s: %w", run.ID, err)
	}

	run.Declaration = Declaration(run.Lines)
	r.Engine.Logger.Infof("pay run %s: PAYE %s, UIF %s, SDL %s", run.ID,
		run.Declaration.PAYE, run.Declaration.UIF, run.Declaration.SDL)
	return run, nil
}

// Declaration totals PAYE, both UIF legs and SDL across payslips
func Declaration(lines []domain.PayRunLine) domain.EmployerDeclaration {
	decl := domain.EmployerDeclaration{Employees: len(lines)}
	for _, l := range lines {
		p := l.Payslip
		decl.PAYE = decl.PAYE.Add(p.PAYE)
		decl.UIF = decl.UIF.Add(p.UIFEmployee).Add(p.UIFEmployer)
		decl.SDL = decl.SDL.Add(p.SDL)
		decl.GrossPay = decl.GrossPay.Add(p.GrossPay)
		decl.NetPay = decl.NetPay.Add(p.NetPay)
		decl.EmployerCost = decl.EmployerCost.Add(p.EmployerCost())
	}
	decl.Total = decl.PAYE.Add(decl.UIF).Add(decl.SDL)
	return decl
}

// AgeAt returns completed years of age on date; a zero birth date yields 0
func AgeAt(birth, date time.Time) int {
	if birth.IsZero() {
		return 0
	}
	age := date.Year() - birth.Year()
	if date.Month() < birth.Month() || (date.Month() == birth.Month() && date.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
