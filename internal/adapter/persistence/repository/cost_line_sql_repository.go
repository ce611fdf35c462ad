package repository

import (
	"context"

	"carmasters/internal/domain/entities"
	"carmasters/internal/infrastructure/database"
	"carmasters/internal/usecase/interfaces"
)

// CostLineSQLRepository persists per-order cost lines through the storage
// adapter. No FK pre-check here: the costos endpoints trust the caller's
// order id and let the database reject orphans.
type CostLineSQLRepository struct {
	store database.Store
}

var _ interfaces.ICostLineRepository = (*CostLineSQLRepository)(nil)

func NewCostLineSQLRepository(store database.Store) *CostLineSQLRepository {
	return &CostLineSQLRepository{store: store}
}

func (r *CostLineSQLRepository) Create(ctx context.Context, line entities.CostLine) (entities.CostLine, error) {
	res, err := r.store.Execute(ctx,
		"INSERT INTO costos (orden_id, concepto, costo, tipo) VALUES (?,?,?,?)",
		line.OrderID, line.Concept, line.Cost, string(line.Category))
	if err != nil {
		return entities.CostLine{}, err
	}
	row, err := r.store.QueryOne(ctx, "SELECT * FROM costos WHERE id = ?", res.LastInsertID)
	if err != nil {
		return entities.CostLine{}, err
	}
	if row == nil {
		return entities.CostLine{}, nil
	}
	return mapCostLine(row), nil
}

func (r *CostLineSQLRepository) ListByOrderID(ctx context.Context, orderID int64) ([]entities.CostLine, error) {
	rows, err := r.store.QueryAll(ctx, "SELECT * FROM costos WHERE orden_id = ?", orderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CostLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapCostLine(row))
	}
	return out, nil
}

func mapCostLine(row database.Row) entities.CostLine {
	return entities.CostLine{
		ID:        rowInt(row, "id"),
		OrderID:   rowInt(row, "orden_id"),
		Concept:   rowString(row, "concepto"),
		Cost:      rowFloat(row, "costo"),
		Category:  entities.CostCategory(rowString(row, "tipo")),
		CreatedAt: rowString(row, "created_at"),
	}
}
