package installment

import (
	"cmp"
	"slices"
)

// Apply pays up to remaining against a single installment and returns the
// next state together with what is left of the payment. in is not modified.
func Apply(in Installment, remaining int64) (Installment, int64) {
	if remaining <= 0 || in.OutstandingAmount <= 0 {
		return in, remaining
	}

	next := in
	if remaining >= in.OutstandingAmount {
		remaining -= in.OutstandingAmount
		next.OutstandingAmount = 0
		next.Status = StatusRepaid
		return next, remaining
	}

	next.OutstandingAmount -= remaining
	next.Status = StatusPartial
	return next, 0
}

// Less orders installments oldest due first, then by sequence, then by id.
func Less(a, b Installment) int {
	if c := a.DueDate.Compare(b.DueDate); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Sequence, b.Sequence); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Allocate runs the waterfall: amount is applied to the outstanding
// installments in Less order until it runs out. It returns only the
// installments whose state changed, in the order they were touched, and the
// part of amount that found nothing left to pay.
func Allocate(pending []Installment, amount int64) ([]Installment, int64) {
	ordered := make([]Installment, 0, len(pending))
	for _, in := range pending {
		if in.OutstandingAmount > 0 {
			ordered = append(ordered, in)
		}
	}
	slices.SortStableFunc(ordered, Less)

	remaining := amount
	changed := make([]Installment, 0, len(ordered))
	for _, in := range ordered {
		if remaining <= 0 {
			break
		}
		var next Installment
		next, remaining = Apply(in, remaining)
		changed = append(changed, next)
	}
	return changed, remaining
}

// Outstanding sums the outstanding amounts of items.
func Outstanding(items []Installment) int64 {
	var total int64
	for _, in := range items {
		total += in.OutstandingAmount
	}
	return total
}
