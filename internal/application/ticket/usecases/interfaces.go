package usecases

import "context"

// TransactionManager runs a function inside a database transaction.
// The context passed to fn carries the transaction and must be used
// for every repository call inside it.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
