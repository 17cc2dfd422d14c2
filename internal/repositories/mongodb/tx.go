package mongodb

import (
	"context"

	"carpool/internal/repositories/interfaces"
	"carpool/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
)

type txManager struct {
	db *database.MongoDB
}

func NewTransactionManager(db *database.MongoDB) interfaces.TransactionManager {
	return &txManager{db: db}
}

// WithTransaction runs fn in a mongo session transaction. The session context
// it hands to fn satisfies context.Context, so repositories called inside fn
// join the transaction transparently.
func (t *txManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := t.db.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}
