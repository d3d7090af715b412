package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/smbledger/sapayroll/internal/domain"
)

// CalculateUIF returns the UIF contribution on monthly gross earnings.
// Earnings are capped at the table's monthly ceiling and the same rate applies
// to both legs, so the employer amount always mirrors the employee amount.
func CalculateUIF(monthlyGross decimal.Decimal, table *domain.TaxTable) domain.UIFContribution {
	earnings := decimal.Min(monthlyGross, table.UIFMonthlyEarningsCap)
	amount := Round2(earnings.Mul(table.UIFRate))
	return domain.UIFContribution{Employee: amount, Employer: amount}
}

// CalculateSDL returns the employer-only Skills Development Levy on monthly gross
func CalculateSDL(monthlyGross decimal.Decimal, table *domain.TaxTable) decimal.Decimal {
	return Round2(monthlyGross.Mul(table.SDLRate))
}
