package interfaces

import "mime/multipart"

// IImageStorage persists one uploaded evidence image and returns the stable
// public path it can be fetched from. Actual file IO is an infrastructure
// concern; the core only keeps the path string.
type IImageStorage interface {
	Save(file *multipart.FileHeader) (string, error)
}
