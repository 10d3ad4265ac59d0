package usecases

import "context"

// FileStorage persists uploaded assets and returns their public URL.
type FileStorage interface {
	Upload(ctx context.Context, key string, contentType string, body []byte) (string, error)
	Delete(ctx context.Context, key string) error
}
