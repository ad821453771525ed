package export

import (
	"context"

	"regie/internal/core"
)

// RecapWriter appends one persisted monthly record to an external recap
// document (the treasurer's audit trail).
type RecapWriter interface {
	AppendRecap(ctx context.Context, e core.MonthlyEntry) (rowRef string, err error)
}
