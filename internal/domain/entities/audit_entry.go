package entities

// AuditEntry is one row of the append-only action log (logs table). The core
// only writes these; reading them back is a reporting concern.
type AuditEntry struct {
	ID        int64  `json:"id"`
	Action    string `json:"accion"`
	Detail    string `json:"detalle"`
	CreatedAt string `json:"created_at"`
}
