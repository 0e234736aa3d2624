package repositories

import (
	"context"
)

// TransactionManager runs work inside a database transaction that travels in the
// context. Repositories called with that context join the transaction.
type TransactionManager interface {
	// RunInTransaction starts a transaction, or joins the one already in ctx.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// RunInSavepoint behaves like RunInTransaction, but when a transaction is
	// already open it isolates fn behind a savepoint so a failed statement in fn
	// does not poison the outer transaction.
	RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error
}
