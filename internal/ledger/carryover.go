package ledger

import "regie/internal/core"

// CarryOver returns the opening balance derived from the previous
// period's record: its Total Général, or zero when there is no history.
// The value is never clamped; a negative total from a prior correction
// carries forward as-is.
func CarryOver(prev *core.MonthlyEntry) core.Money {
	if prev == nil {
		return core.Money{}
	}
	return prev.TotalGeneral
}

// CumulativeTotal returns the new cumulative Total Général: the present
// amount (clamped to zero) plus the carry-over from the previous record.
// Pure function, no I/O.
func CumulativeTotal(present core.Money, prev *core.MonthlyEntry) core.Money {
	return CarryOver(prev).Add(present.Clamped())
}
