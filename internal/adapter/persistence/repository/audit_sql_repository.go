package repository

import (
	"context"
	"encoding/json"

	"carmasters/internal/infrastructure/database"
	"carmasters/internal/usecase/interfaces"
)

// AuditSQLRepository appends entries to the logs table. Append-only: nothing
// in the core reads these back.
type AuditSQLRepository struct {
	store database.Store
}

var _ interfaces.IAuditLog = (*AuditSQLRepository)(nil)

func NewAuditSQLRepository(store database.Store) *AuditSQLRepository {
	return &AuditSQLRepository{store: store}
}

func (r *AuditSQLRepository) Record(ctx context.Context, action string, detail any) error {
	text, ok := detail.(string)
	if !ok {
		raw, err := json.Marshal(detail)
		if err != nil {
			return err
		}
		text = string(raw)
	}
	_, err := r.store.Execute(ctx, "INSERT INTO logs (accion, detalle) VALUES (?,?)", action, text)
	return err
}
