package interfaces

import (
	"context"
)

// TransactionManager runs fn inside a single database transaction. Every
// repository call made with the ctx passed to fn joins the transaction; if fn
// returns an error nothing is committed.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
