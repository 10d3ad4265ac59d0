package usecases

import "context"

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// FileStorage persists uploaded assets and returns their public URL.
type FileStorage interface {
	Upload(ctx context.Context, key string, contentType string, body []byte) (string, error)
	Delete(ctx context.Context, key string) error
}
