package shipping

import (
	"fmt"

	"sufishine-be/internal/payment"
)

// Tiered delivery pricing: the base rate covers the first groupSize units,
// every further group (partials round up) adds incrementCharge.
const (
	BaseCharge      = 200.0
	IncrementCharge = 100.0
	groupSize       = 4
)

// BreakdownLine explains one tier of the computed charge.
type BreakdownLine struct {
	Label  string  `json:"label"`
	Units  int     `json:"units"`
	Amount float64 `json:"amount"`
}

// Quote is the shipping price for a given cart size and payment method.
type Quote struct {
	TotalQuantity int             `json:"total_quantity"`
	Charge        float64         `json:"charge"`
	Waived        bool            `json:"waived"`
	Breakdown     []BreakdownLine `json:"breakdown"`
}

// Calculate returns the tiered charge for a quantity, ignoring any
// payment-method promotion. Quantity 0 costs nothing.
func Calculate(totalQuantity int) Quote {
	q := Quote{TotalQuantity: totalQuantity}
	if totalQuantity <= 0 {
		return q
	}

	baseUnits := totalQuantity
	if baseUnits > groupSize {
		baseUnits = groupSize
	}

	q.Charge = BaseCharge
	q.Breakdown = append(q.Breakdown, BreakdownLine{
		Label:  fmt.Sprintf("Base rate (first %d items)", groupSize),
		Units:  baseUnits,
		Amount: BaseCharge,
	})

	extra := totalQuantity - groupSize
	if extra > 0 {
		groups := (extra + groupSize - 1) / groupSize
		amount := float64(groups) * IncrementCharge
		q.Charge += amount
		q.Breakdown = append(q.Breakdown, BreakdownLine{
			Label:  fmt.Sprintf("%d additional group(s) of %d", groups, groupSize),
			Units:  extra,
			Amount: amount,
		})
	}

	return q
}

// QuoteFor applies the payment-method promotion on top of Calculate:
// manual methods (JazzCash, EasyPaisa, bank transfer) ship free.
func QuoteFor(totalQuantity int, method payment.Method) Quote {
	q := Calculate(totalQuantity)

	if method.WaivesShipping() && q.Charge > 0 {
		q.Waived = true
		q.Charge = 0
		q.Breakdown = []BreakdownLine{{
			Label:  fmt.Sprintf("Free shipping (%s)", method.Label()),
			Units:  totalQuantity,
			Amount: 0,
		}}
	}

	return q
}
