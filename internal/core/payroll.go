package core

import "github.com/shopspring/decimal"

// NetRow is one worker line of the payroll aggregate for a period. The
// engine only needs the scalar sum; the rest of the row stays with the
// payroll collaborator.
type NetRow struct {
	WorkerName string
	NetAmount  decimal.Decimal
}

// SumNetRows derives the present amount from an ordered payroll
// aggregate. Negative rows are treated as zero, matching the tolerance of
// the document pipeline toward messy entries.
func SumNetRows(rows []NetRow) Money {
	var total Money
	for _, row := range rows {
		total = total.Add(MoneyFromDecimal(row.NetAmount).Clamped())
	}
	return total
}
