package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager hands out database handles to usecases. Conn is for single reads,
// WithinTransaction runs fn in one transaction and commits only if fn returns nil.
type TxManager interface {
	Conn(ctx context.Context) *gorm.DB
	WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
