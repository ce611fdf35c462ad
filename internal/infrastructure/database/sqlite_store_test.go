package database

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "taller.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_InsertReportsID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	res, err := s.Execute(ctx, "INSERT INTO clientes (nombre, telefono, correo) VALUES (?,?,?)", "Ana Ruiz", nil, nil)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if res.LastInsertID != 1 {
		t.Fatalf("expected id 1, got %d", res.LastInsertID)
	}

	row, err := s.QueryOne(ctx, "SELECT * FROM clientes WHERE id = ?", res.LastInsertID)
	if err != nil {
		t.Fatalf("query one: %v", err)
	}
	if row == nil {
		t.Fatalf("expected row")
	}
	if row["nombre"] != "Ana Ruiz" {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestSQLiteStore_QueryOneAbsent(t *testing.T) {
	s := newTestStore(t)

	row, err := s.QueryOne(context.Background(), "SELECT * FROM clientes WHERE id = ?", 99)
	if err != nil {
		t.Fatalf("query one: %v", err)
	}
	if row != nil {
		t.Fatalf("expected nil row, got %+v", row)
	}
}

func TestSQLiteStore_SchemaIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taller.db")
	s1, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	ctx := context.Background()
	if _, err := s1.Execute(ctx, "INSERT INTO clientes (nombre) VALUES (?)", "Luis"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening runs the full schema + migration pass over existing data.
	s2, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer func() { _ = s2.Close() }()

	rows, err := s2.QueryAll(ctx, "SELECT * FROM clientes ORDER BY id DESC")
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected surviving row, got %d", len(rows))
	}
}

func TestSQLiteStore_CascadeDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cli, err := s.Execute(ctx, "INSERT INTO clientes (nombre) VALUES (?)", "Marta")
	if err != nil {
		t.Fatalf("insert cliente: %v", err)
	}
	veh, err := s.Execute(ctx, "INSERT INTO vehiculos (cliente_id, marca, modelo, placas) VALUES (?,?,?,?)", cli.LastInsertID, "Honda", "Civic", "ABC-123")
	if err != nil {
		t.Fatalf("insert vehiculo: %v", err)
	}
	ord, err := s.Execute(ctx,
		"INSERT INTO ordenes (cliente_id, vehiculo_id, descripcion, imagenes, servicio, total, anticipo, saldo, qr, status, prioridad) VALUES (?,?,?,?,?,?,?,?,?,?,?)",
		cli.LastInsertID, veh.LastInsertID, "", "[]", "", 100.0, 0.0, 100.0, "", "pending", "normal")
	if err != nil {
		t.Fatalf("insert orden: %v", err)
	}
	if _, err := s.Execute(ctx, "INSERT INTO costos (orden_id, concepto, costo, tipo) VALUES (?,?,?,?)", ord.LastInsertID, "cera", 50.0, "material"); err != nil {
		t.Fatalf("insert costo: %v", err)
	}

	if _, err := s.Execute(ctx, "DELETE FROM clientes WHERE id = ?", cli.LastInsertID); err != nil {
		t.Fatalf("delete cliente: %v", err)
	}

	for _, q := range []string{
		"SELECT * FROM vehiculos WHERE id = ?",
		"SELECT * FROM ordenes WHERE id = ?",
	} {
		row, err := s.QueryOne(ctx, q, veh.LastInsertID)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if row != nil {
			t.Fatalf("expected cascade to remove row for %q", q)
		}
	}
	costs, err := s.QueryAll(ctx, "SELECT * FROM costos WHERE orden_id = ?", ord.LastInsertID)
	if err != nil {
		t.Fatalf("query costos: %v", err)
	}
	if len(costs) != 0 {
		t.Fatalf("expected cost lines removed, got %d", len(costs))
	}
}
