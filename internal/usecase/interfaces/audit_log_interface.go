package interfaces

import "context"

// IAuditLog appends one entry per mutating operation. Writes are best-effort:
// callers log a failure and carry on, they never roll back the primary
// mutation because of it.
type IAuditLog interface {
	Record(ctx context.Context, action string, detail any) error
}
