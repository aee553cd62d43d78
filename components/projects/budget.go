package projects

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BudgetAlertThreshold is the progress percentage above which the budget
// panel shows the overspend warning.
const BudgetAlertThreshold = 85.0

// Progress returns spent/budget as a percentage. Zero-budget projects report
// zero progress. The value is not clamped: overspent projects report more
// than 100.
func (p Project) Progress() float64 {
	if p.Budget <= 0 {
		return 0
	}
	return p.Spent / p.Budget * 100
}

// BudgetAlert reports whether spending crossed the alert threshold.
func (p Project) BudgetAlert() bool {
	return p.Progress() > BudgetAlertThreshold
}

// TotalPaid sums the amounts of payments whose status is paid.
func (p Project) TotalPaid() float64 {
	var total float64
	for _, payment := range p.Payments {
		if payment.Status == PaymentPaid {
			total += payment.Amount
		}
	}
	return total
}

// PaymentBreakdown decomposes the budget into the segments of the stacked
// payment bar. Segments never go negative: when payments outrun recorded
// spend, or spend outruns budget, the affected segment floors at zero.
type PaymentBreakdown struct {
	Paid        float64 `json:"paid"`
	SpentUnpaid float64 `json:"spent_unpaid"`
	Remaining   float64 `json:"remaining"`
}

// Breakdown computes the stacked payment segments for the project.
func (p Project) Breakdown() PaymentBreakdown {
	paid := p.TotalPaid()
	return PaymentBreakdown{
		Paid:        paid,
		SpentUnpaid: floorZero(p.Spent - paid),
		Remaining:   floorZero(p.Budget - p.Spent),
	}
}

// BarWidth returns the progress bar render width, clamped to [0, 100] so an
// overspent project fills the track instead of overflowing it. The raw
// percentage stays available through Progress for alerting and display.
func (p Project) BarWidth() float64 {
	return clampPercent(p.Progress())
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// FormatMoney renders a monetary amount with a dollar sign and thousands
// separators, matching the catalog's display convention.
func FormatMoney(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	// Round to cents before splitting so a fraction that rounds up carries
	// into the whole part instead of corrupting the output.
	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := "$" + b.String()
	if frac > 0 {
		out += fmt.Sprintf(".%02d", frac)
	}
	if negative {
		return "-" + out
	}
	return out
}
