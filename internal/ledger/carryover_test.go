package ledger

import (
	"testing"

	"regie/internal/core"
)

func TestCarryOver(t *testing.T) {
	if got := CarryOver(nil); !got.IsZero() {
		t.Errorf("CarryOver(nil) = %d cents, want 0", got.Cents)
	}

	prev := &core.MonthlyEntry{TotalGeneral: core.MoneyFromCents(123456)}
	if got := CarryOver(prev); got.Cents != 123456 {
		t.Errorf("CarryOver = %d cents, want 123456", got.Cents)
	}

	// A negative total from a prior correction carries forward unclamped.
	prev = &core.MonthlyEntry{TotalGeneral: core.MoneyFromCents(-5000)}
	if got := CarryOver(prev); got.Cents != -5000 {
		t.Errorf("CarryOver = %d cents, want -5000", got.Cents)
	}
}

func TestCumulativeTotal(t *testing.T) {
	tests := []struct {
		name    string
		present int64
		prev    *core.MonthlyEntry
		want    int64
	}{
		{
			name:    "no history",
			present: 300000,
			prev:    nil,
			want:    300000,
		},
		{
			name:    "adds carry-over",
			present: 200000,
			prev:    &core.MonthlyEntry{TotalGeneral: core.MoneyFromCents(300000)},
			want:    500000,
		},
		{
			name:    "negative present is clamped",
			present: -100,
			prev:    &core.MonthlyEntry{TotalGeneral: core.MoneyFromCents(300000)},
			want:    300000,
		},
		{
			name:    "negative carry-over is not clamped",
			present: 100000,
			prev:    &core.MonthlyEntry{TotalGeneral: core.MoneyFromCents(-250000)},
			want:    -150000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CumulativeTotal(core.MoneyFromCents(tt.present), tt.prev)
			if got.Cents != tt.want {
				t.Errorf("CumulativeTotal = %d cents, want %d", got.Cents, tt.want)
			}
		})
	}
}
