package qr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"carmasters/internal/usecase/interfaces"

	qrcode "github.com/skip2/go-qrcode"
)

// Generator renders the tracking QR png for an order under the public uploads
// directory. The encoded URL points at the order's lookup endpoint, so the
// code printed on the receipt resolves to live status.
type Generator struct {
	baseURL string
	dir     string
}

var _ interfaces.ITrackingCodeGenerator = (*Generator)(nil)

func NewGenerator(baseURL, dir string) *Generator {
	return &Generator{baseURL: baseURL, dir: dir}
}

// Generate writes qr-<id>.png. Regenerating for the same order overwrites the
// same file, which is what makes the create-then-patch retry safe.
func (g *Generator) Generate(ctx context.Context, orderID int64) (string, error) {
	if err := os.MkdirAll(g.dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	filename := fmt.Sprintf("qr-%d.png", orderID)
	url := fmt.Sprintf("%s/ordenes/%d", g.baseURL, orderID)
	if err := qrcode.WriteFile(url, qrcode.Medium, 256, filepath.Join(g.dir, filename)); err != nil {
		return "", fmt.Errorf("write qr: %w", err)
	}
	return "/uploads/" + filename, nil
}
