package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"carmasters/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// DiskStorage saves evidence images under the public uploads directory with
// collision-free names and hands back the /uploads path the row will store.
type DiskStorage struct {
	dir string
}

var _ interfaces.IImageStorage = (*DiskStorage)(nil)

func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{dir: dir}
}

func (s *DiskStorage) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return "/uploads/" + name, nil
}
