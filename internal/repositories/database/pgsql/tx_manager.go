package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("retail_ledger/pgsql")

// Querier is the subset of pgx shared by the pool and an open transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// TxOptions configures a new top-level transaction.
type TxOptions struct {
	IsolationLevel pgx.TxIsoLevel
	AccessMode     pgx.TxAccessMode
	// StatementTimeout is applied with SET LOCAL; zero leaves the server default.
	StatementTimeout time.Duration
}

// DefaultTxOptions returns read-committed, read-write options.
func DefaultTxOptions(statementTimeout time.Duration) TxOptions {
	return TxOptions{
		IsolationLevel:   pgx.ReadCommitted,
		AccessMode:       pgx.ReadWrite,
		StatementTimeout: statementTimeout,
	}
}

// TxManager keeps the active transaction in the context so every repository
// called with that context joins it.
type TxManager struct {
	pool     *pgxpool.Pool
	opts     TxOptions
	spSerial atomic.Uint64
}

// NewTxManager creates a transaction manager over pool.
func NewTxManager(pool *pgxpool.Pool, statementTimeout time.Duration) *TxManager {
	return &TxManager{pool: pool, opts: DefaultTxOptions(statementTimeout)}
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

type txKey struct{}

// RunInTransaction runs fn in a transaction. An already open transaction is reused.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if existing := txFromContext(ctx); existing != nil {
		return fn(ctx)
	}
	return m.startNewTransaction(ctx, fn)
}

// RunInSavepoint runs fn behind a savepoint when a transaction is already open,
// so that a failing statement inside fn can be rolled back without aborting
// the outer transaction. Without a transaction it starts one.
func (m *TxManager) RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	existing := txFromContext(ctx)
	if existing == nil {
		return m.startNewTransaction(ctx, fn)
	}

	name := fmt.Sprintf("sp_%d", m.spSerial.Add(1))
	if _, err := existing.Exec(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("create savepoint: %w", err)
	}

	if err := fn(ctx); err != nil {
		if _, rbErr := existing.Exec(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			slog.ErrorContext(ctx, "rollback to savepoint failed", "savepoint", name, "error", rbErr)
		}
		return err
	}

	if _, err := existing.Exec(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}

func (m *TxManager) startNewTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, "transaction",
		trace.WithAttributes(attribute.String("tx.isolation", string(m.opts.IsolationLevel))))
	defer span.End()

	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   m.opts.IsolationLevel,
		AccessMode: m.opts.AccessMode,
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	if m.opts.StatementTimeout > 0 {
		_, err = tx.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = '%dms'", m.opts.StatementTimeout.Milliseconds()))
		if err != nil {
			_ = tx.Rollback(context.Background())
			return fmt.Errorf("set statement_timeout: %w", err)
		}
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)
	if err := fn(txCtx); err != nil {
		span.RecordError(err)
		// the request context may already be cancelled
		if rbErr := tx.Rollback(context.Background()); rbErr != nil {
			slog.ErrorContext(ctx, "rollback failed", "error", rbErr, "original_error", err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetQuerier returns the transaction in ctx, or the pool when there is none.
func (m *TxManager) GetQuerier(ctx context.Context) Querier {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return m.pool
}

func txFromContext(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}
