package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidTaxTable is returned when a tax table fails validation
	ErrInvalidTaxTable = errors.New("invalid tax table")
	// ErrNoBracket signals an income that no bracket contains
	ErrNoBracket = errors.New("no tax bracket contains income")
	// ErrUnknownTaxYear is returned when no table is registered for a tax year
	ErrUnknownTaxYear = errors.New("unknown tax year")
)

// Age band boundaries for rebates and thresholds
const (
	SecondaryRebateAge = 65
	TertiaryRebateAge  = 75
)

// TaxBracket is one step of a progressive PAYE schedule.
// BaseTax is the tax owed at Min-1, so tax for income in the bracket is
// BaseTax + (income - Min + 1) * Rate. A nil Max means the bracket is unbounded.
type TaxBracket struct {
	Min     decimal.Decimal  `yaml:"min" json:"min"`
	Max     *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate    decimal.Decimal  `yaml:"rate" json:"rate"`
	BaseTax decimal.Decimal  `yaml:"base_tax" json:"base_tax"`
}

// Contains reports whether income falls within the bracket. Published limits
// are whole rands, so a bracket runs from Min up to but excluding Max+1 and
// cents above Max stay in the lower bracket.
func (b TaxBracket) Contains(income decimal.Decimal) bool {
	if income.LessThan(b.Min) {
		return false
	}
	return b.Max == nil || income.LessThan(b.Max.Add(decimal.NewFromInt(1)))
}

// Unbounded reports whether the bracket has no upper limit
func (b TaxBracket) Unbounded() bool {
	return b.Max == nil
}

// Rebates are flat annual amounts subtracted from gross tax, cumulative by age
type Rebates struct {
	Primary   decimal.Decimal `yaml:"primary" json:"primary"`
	Secondary decimal.Decimal `yaml:"secondary" json:"secondary"`
	Tertiary  decimal.Decimal `yaml:"tertiary" json:"tertiary"`
}

// Thresholds are the annual taxable income floors below which no PAYE is due
type Thresholds struct {
	Under65   decimal.Decimal `yaml:"under_65" json:"under_65"`
	Age65To74 decimal.Decimal `yaml:"age_65_to_74" json:"age_65_to_74"`
	Age75Plus decimal.Decimal `yaml:"age_75_plus" json:"age_75_plus"`
}

// AgeBand pairs the threshold and total rebate that apply from MinAge upwards
type AgeBand struct {
	MinAge    int
	Threshold decimal.Decimal
	Rebate    decimal.Decimal
}

// TaxTable describes one tax year's statutory PAYE, UIF and SDL parameters.
// Tables are treated as immutable once validated; calculations never modify them.
type TaxTable struct {
	Year                  int             `yaml:"year" json:"year"`
	Label                 string          `yaml:"label" json:"label"`
	Brackets              []TaxBracket    `yaml:"brackets" json:"brackets"`
	Rebates               Rebates         `yaml:"rebates" json:"rebates"`
	Thresholds            Thresholds      `yaml:"thresholds" json:"thresholds"`
	UIFRate               decimal.Decimal `yaml:"uif_rate" json:"uif_rate"`
	UIFMonthlyEarningsCap decimal.Decimal `yaml:"uif_monthly_earnings_cap" json:"uif_monthly_earnings_cap"`
	SDLRate               decimal.Decimal `yaml:"sdl_rate" json:"sdl_rate"`
}

// StartDate returns 1 March of the calendar year before Year
func (t *TaxTable) StartDate() time.Time {
	return time.Date(t.Year-1, time.March, 1, 0, 0, 0, 0, time.UTC)
}

// EndDate returns the last day of February in Year
func (t *TaxTable) EndDate() time.Time {
	return time.Date(t.Year, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// Name returns the label or a "YYYY/YYYY" tax year name
func (t *TaxTable) Name() string {
	if t.Label != "" {
		return t.Label
	}
	return fmt.Sprintf("%d/%d", t.Year-1, t.Year)
}

// AgeBands returns the threshold/rebate lookup ordered from the highest band down
func (t *TaxTable) AgeBands() []AgeBand {
	primary := t.Rebates.Primary
	secondary := primary.Add(t.Rebates.Secondary)
	tertiary := secondary.Add(t.Rebates.Tertiary)
	return []AgeBand{
		{MinAge: TertiaryRebateAge, Threshold: t.Thresholds.Age75Plus, Rebate: tertiary},
		{MinAge: SecondaryRebateAge, Threshold: t.Thresholds.Age65To74, Rebate: secondary},
		{MinAge: 0, Threshold: t.Thresholds.Under65, Rebate: primary},
	}
}

// BandFor selects the first age band whose MinAge the age reaches
func (t *TaxTable) BandFor(age int) AgeBand {
	bands := t.AgeBands()
	for _, band := range bands {
		if age >= band.MinAge {
			return band
		}
	}
	return bands[len(bands)-1]
}

// BracketFor returns the unique bracket containing income
func (t *TaxTable) BracketFor(income decimal.Decimal) (TaxBracket, error) {
	for _, b := range t.Brackets {
		if b.Contains(income) {
			return b, nil
		}
	}
	return TaxBracket{}, fmt.Errorf("%w: %s in tax year %s", ErrNoBracket, income.String(), t.Name())
}

// Clone returns a deep copy so callers cannot mutate a shared table
func (t *TaxTable) Clone() *TaxTable {
	c := *t
	c.Brackets = make([]TaxBracket, len(t.Brackets))
	for i, b := range t.Brackets {
		c.Brackets[i] = b
		if b.Max != nil {
			upper := *b.Max
			c.Brackets[i].Max = &upper
		}
	}
	return &c
}

// Validate checks that the table is a complete, contiguous and internally
// consistent schedule over [0, +inf)
func (t *TaxTable) Validate() error {
	if err := t.validate(); err != nil {
		return fmt.Errorf("%w (%s): %v", ErrInvalidTaxTable, t.Name(), err)
	}
	return nil
}

func (t *TaxTable) validate() error {
	if t.Year <= 0 {
		return fmt.Errorf("year must be positive")
	}
	if len(t.Brackets) == 0 {
		return fmt.Errorf("at least one bracket is required")
	}
	if !t.Brackets[0].Min.IsZero() {
		return fmt.Errorf("first bracket must start at 0, got %s", t.Brackets[0].Min)
	}
	if !t.Brackets[0].BaseTax.IsZero() {
		return fmt.Errorf("first bracket base tax must be 0, got %s", t.Brackets[0].BaseTax)
	}

	one := decimal.NewFromInt(1)
	last := len(t.Brackets) - 1
	for i, b := range t.Brackets {
		if b.Rate.LessThan(decimal.Zero) || b.Rate.GreaterThan(one) {
			return fmt.Errorf("bracket %d: rate must be between 0 and 1", i)
		}
		if b.Max == nil {
			if i != last {
				return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
			}
			continue
		}
		if b.Max.LessThan(b.Min) {
			return fmt.Errorf("bracket %d: max %s is below min %s", i, b.Max, b.Min)
		}
		if i == last {
			return fmt.Errorf("bracket %d: last bracket must be unbounded", i)
		}

		next := t.Brackets[i+1]
		if !next.Min.Equal(b.Max.Add(one)) {
			return fmt.Errorf("bracket %d: must start at %s, got %s", i+1, b.Max.Add(one), next.Min)
		}
		// base tax is published at Min-1, so the first bracket spans Max units, the rest Max-Min+1
		width := b.Max.Sub(b.Min).Add(one)
		if b.Min.IsZero() {
			width = *b.Max
		}
		expected := b.BaseTax.Add(width.Mul(b.Rate))
		if !next.BaseTax.Equal(expected) {
			return fmt.Errorf("bracket %d: base tax %s does not match cumulative tax %s", i+1, next.BaseTax, expected)
		}
	}

	r := t.Rebates
	if r.Primary.IsNegative() || r.Secondary.IsNegative() || r.Tertiary.IsNegative() {
		return fmt.Errorf("rebates cannot be negative")
	}
	th := t.Thresholds
	if th.Under65.IsNegative() {
		return fmt.Errorf("thresholds cannot be negative")
	}
	if th.Age65To74.LessThan(th.Under65) || th.Age75Plus.LessThan(th.Age65To74) {
		return fmt.Errorf("thresholds must not decrease with age")
	}

	if t.UIFRate.IsNegative() || t.UIFRate.GreaterThan(one) {
		return fmt.Errorf("UIF rate must be between 0 and 1")
	}
	if !t.UIFMonthlyEarningsCap.IsPositive() {
		return fmt.Errorf("UIF monthly earnings cap must be positive")
	}
	if t.SDLRate.IsNegative() || t.SDLRate.GreaterThan(one) {
		return fmt.Errorf("SDL rate must be between 0 and 1")
	}
	return nil
}
