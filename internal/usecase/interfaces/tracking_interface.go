package interfaces

import "context"

// ITrackingCodeGenerator renders the scannable tracking artifact for an order
// and returns the public path it was stored under. Generation is idempotent
// per order id, so a missed create-then-patch can be retried later.
type ITrackingCodeGenerator interface {
	Generate(ctx context.Context, orderID int64) (string, error)
}
