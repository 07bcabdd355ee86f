package repository

import "context"

// Tx is the common part of every transactional unit.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
