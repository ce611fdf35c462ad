package database

import (
	"context"
	"fmt"
	"log"
)

// Schema management is idempotent and additive only: CREATE TABLE IF NOT
// EXISTS plus a fixed, ordered list of column migrations for databases created
// before those columns existed. Nothing here ever drops or rebuilds a table,
// so running it against a populated database is safe.

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS clientes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre TEXT NOT NULL,
		telefono TEXT,
		correo TEXT,
		created_at TEXT DEFAULT (datetime('now','localtime'))
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		nombre TEXT,
		role TEXT DEFAULT 'user',
		created_at TEXT DEFAULT (datetime('now','localtime'))
	)`,
	`CREATE TABLE IF NOT EXISTS vehiculos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cliente_id INTEGER NOT NULL,
		marca TEXT,
		modelo TEXT,
		placas TEXT,
		created_at TEXT DEFAULT (datetime('now','localtime')),
		FOREIGN KEY (cliente_id) REFERENCES clientes(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS ordenes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cliente_id INTEGER NOT NULL,
		vehiculo_id INTEGER NOT NULL,
		descripcion TEXT,
		imagenes TEXT,
		servicio TEXT,
		total REAL DEFAULT 0,
		anticipo REAL DEFAULT 0,
		saldo REAL DEFAULT 0,
		fecha_cita TEXT,
		fecha_entrega TEXT,
		qr TEXT,
		status TEXT DEFAULT 'pending',
		prioridad TEXT DEFAULT 'normal',
		tecnico TEXT,
		created_at TEXT DEFAULT (datetime('now','localtime')),
		FOREIGN KEY (cliente_id) REFERENCES clientes(id) ON DELETE CASCADE,
		FOREIGN KEY (vehiculo_id) REFERENCES vehiculos(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS costos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		orden_id INTEGER NOT NULL,
		concepto TEXT NOT NULL,
		costo REAL NOT NULL,
		tipo TEXT CHECK(tipo IN ('material','labor','external')) DEFAULT 'material',
		created_at TEXT DEFAULT (datetime('now','localtime')),
		FOREIGN KEY (orden_id) REFERENCES ordenes(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		accion TEXT NOT NULL,
		detalle TEXT,
		created_at TEXT DEFAULT (datetime('now','localtime'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_clientes_nombre ON clientes(nombre)`,
	`CREATE INDEX IF NOT EXISTS idx_veh_cliente ON vehiculos(cliente_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orden_cliente ON ordenes(cliente_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orden_estado ON ordenes(status)`,
	`CREATE INDEX IF NOT EXISTS idx_costos_orden ON costos(orden_id)`,
}

// SQLite has no ADD COLUMN IF NOT EXISTS, so these fail with "duplicate
// column" on databases that already have them; that failure is ignored.
var sqliteMigrations = []string{
	`ALTER TABLE ordenes ADD COLUMN prioridad TEXT DEFAULT 'normal'`,
	`ALTER TABLE ordenes ADD COLUMN tecnico TEXT`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS clientes (
		id SERIAL PRIMARY KEY,
		nombre TEXT NOT NULL,
		telefono TEXT,
		correo TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		nombre TEXT,
		role TEXT DEFAULT 'user',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS vehiculos (
		id SERIAL PRIMARY KEY,
		cliente_id INTEGER NOT NULL REFERENCES clientes(id) ON DELETE CASCADE,
		marca TEXT,
		modelo TEXT,
		placas TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS ordenes (
		id SERIAL PRIMARY KEY,
		cliente_id INTEGER NOT NULL REFERENCES clientes(id) ON DELETE CASCADE,
		vehiculo_id INTEGER NOT NULL REFERENCES vehiculos(id) ON DELETE CASCADE,
		descripcion TEXT,
		imagenes TEXT,
		servicio TEXT,
		total NUMERIC DEFAULT 0,
		anticipo NUMERIC DEFAULT 0,
		saldo NUMERIC DEFAULT 0,
		status TEXT DEFAULT 'pending',
		fecha_cita TIMESTAMP,
		fecha_entrega TIMESTAMP,
		qr TEXT,
		prioridad TEXT DEFAULT 'normal',
		tecnico TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS costos (
		id SERIAL PRIMARY KEY,
		orden_id INTEGER NOT NULL REFERENCES ordenes(id) ON DELETE CASCADE,
		concepto TEXT NOT NULL,
		costo NUMERIC NOT NULL,
		tipo TEXT CHECK(tipo IN ('material','labor','external')) DEFAULT 'material',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS logs (
		id SERIAL PRIMARY KEY,
		accion TEXT,
		detalle TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_clientes_nombre ON clientes(nombre)`,
	`CREATE INDEX IF NOT EXISTS idx_veh_cliente ON vehiculos(cliente_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orden_cliente ON ordenes(cliente_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orden_estado ON ordenes(status)`,
	`CREATE INDEX IF NOT EXISTS idx_costos_orden ON costos(orden_id)`,
}

var postgresMigrations = []string{
	`ALTER TABLE ordenes ADD COLUMN IF NOT EXISTS prioridad TEXT DEFAULT 'normal'`,
	`ALTER TABLE ordenes ADD COLUMN IF NOT EXISTS tecnico TEXT`,
}

func initSchema(ctx context.Context, s Store, schema, migrations []string) error {
	for _, stmt := range schema {
		if _, err := s.Execute(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	for _, stmt := range migrations {
		if _, err := s.Execute(ctx, stmt); err != nil {
			log.Printf("[database][migration] skipped: %v", err)
		}
	}
	return nil
}
