package core

// MonthlyEntry is the finalized ledger record for one period and scope:
// the amounts of the monthly bordereau and its cumulative Total Général.
//
// Expected (not enforced here): TotalGeneral = ReportPrevious +
// PresentAmount - RejectedAmount. The engine derives entries that satisfy
// it; imported history is trusted as-is.
type MonthlyEntry struct {
	Year  int
	Month int
	Scope Scope

	// PresentAmount is the net payroll total generated within the period.
	PresentAmount Money
	// AdmittedAmount is the portion of the present bordereau admitted by
	// the treasurer.
	AdmittedAmount Money
	// ReportPrevious is the opening balance carried over from the
	// previous period's Total Général.
	ReportPrevious Money
	// RejectedAmount is the sum of rejected receipts for the period.
	RejectedAmount Money
	// TotalGeneral is the closing cumulative total. It may be negative
	// after a corrective adjustment, so it is never clamped.
	TotalGeneral Money

	// FilePath references the generated document for audit, if any.
	FilePath string
}

// Period returns the entry's period key.
func (e MonthlyEntry) Period() Period {
	return Period{Year: e.Year, Month: e.Month}
}

// Normalize returns a copy with the scope normalized and every money
// field normalized: present, admitted and rejected clamped to >= 0,
// TotalGeneral left signed.
func (e MonthlyEntry) Normalize() MonthlyEntry {
	out := e
	out.Scope = e.Scope.Normalize()
	out.PresentAmount = e.PresentAmount.Clamped()
	out.AdmittedAmount = e.AdmittedAmount.Clamped()
	out.ReportPrevious = e.ReportPrevious
	out.RejectedAmount = e.RejectedAmount.Clamped()
	return out
}

// Validate checks the period key.
func (e MonthlyEntry) Validate() error {
	return e.Period().Validate()
}
