// Package db provides gorm helpers shared by the repositories: transaction
// propagation through context and common query scopes.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager runs application callbacks inside a single database
// transaction. Repositories pick the transaction up from the context, so a
// use case composing several repository calls commits them atomically.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn inside a transaction. Any error returned by
// fn rolls the whole transaction back.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTxFromContext returns the transaction carried by ctx, or defaultDB when
// the call is not running inside RunInTransaction.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
