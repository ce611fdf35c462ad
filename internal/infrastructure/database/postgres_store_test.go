package database

import "testing"

func TestRewritePlaceholders(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "no placeholders", in: "SELECT * FROM clientes", want: "SELECT * FROM clientes"},
		{name: "single", in: "SELECT * FROM clientes WHERE id = ?", want: "SELECT * FROM clientes WHERE id = $1"},
		{
			name: "ordered",
			in:   "INSERT INTO vehiculos (cliente_id, marca, modelo, placas) VALUES (?,?,?,?)",
			want: "INSERT INTO vehiculos (cliente_id, marca, modelo, placas) VALUES ($1,$2,$3,$4)",
		},
		{
			name: "coalesce update",
			in:   "UPDATE ordenes SET status = COALESCE(?, status), total = COALESCE(?, total) WHERE id = ?",
			want: "UPDATE ordenes SET status = COALESCE($1, status), total = COALESCE($2, total) WHERE id = $3",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rewritePlaceholders(tc.in); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestEnsureReturningID(t *testing.T) {
	t.Run("appends when missing", func(t *testing.T) {
		got := ensureReturningID("INSERT INTO clientes (nombre) VALUES (?)")
		want := "INSERT INTO clientes (nombre) VALUES (?) RETURNING id"
		if got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	})

	t.Run("strips trailing semicolon", func(t *testing.T) {
		got := ensureReturningID("INSERT INTO logs (accion) VALUES (?);")
		want := "INSERT INTO logs (accion) VALUES (?) RETURNING id"
		if got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	})

	t.Run("keeps existing returning", func(t *testing.T) {
		in := "INSERT INTO clientes (nombre) VALUES (?) RETURNING id, nombre"
		if got := ensureReturningID(in); got != in {
			t.Fatalf("got %q want %q", got, in)
		}
	})
}

func TestIsInsert(t *testing.T) {
	if !isInsert("  insert into logs (accion) values (?)") {
		t.Fatalf("lowercase insert not detected")
	}
	if isInsert("UPDATE ordenes SET saldo = total - anticipo WHERE id = ?") {
		t.Fatalf("update misclassified as insert")
	}
}
