package tx

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jmoiron/sqlx"

	"github.com/loglit-app/loglit/internal/logger"
)

// UnitOfWork is a callback executed against a transaction-bound executor.
// All queries issued through q share one connection and one transactional
// scope.
type UnitOfWork func(ctx context.Context, q sqlx.ExtContext) error

// Runner executes a unit of work inside a transactional scope.
//
// DBRunner gives each unit its own transaction. SavepointRunner nests
// units as savepoints inside one ambient transaction so that several
// units can observe each other's uncommitted writes.
type Runner interface {
	Run(ctx context.Context, fn UnitOfWork) error
}

// DBRunner runs each unit of work in a fresh transaction on a pooled
// connection. The connection is returned to the pool on every exit path
// (commit, rollback, panic).
type DBRunner struct {
	db *sqlx.DB
}

// NewDBRunner creates a Runner backed by the given database pool.
func NewDBRunner(db *sqlx.DB) *DBRunner {
	return &DBRunner{db: db}
}

// Run begins a transaction, invokes fn, and commits on success. On
// failure the transaction is rolled back best-effort and the unit's
// original error is returned; a rollback failure is logged, not raised.
// Run must not be re-entered from inside fn — composing several units in
// one transaction is SavepointRunner's job.
func (r *DBRunner) Run(ctx context.Context, fn UnitOfWork) error {
	txn, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			if rbErr := txn.Rollback(); rbErr != nil {
				logger.Log.Errorw("rollback after panic failed", "error", rbErr)
			}
			panic(rec)
		}
	}()

	if err := fn(ctx, txn); err != nil {
		if rbErr := txn.Rollback(); rbErr != nil {
			logger.Log.Errorw("rollback failed", "error", rbErr)
		}
		return err
	}

	if err := txn.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// SavepointRunner runs each unit of work inside a named savepoint on an
// already-open transaction. A successful unit is released into the
// ambient transaction; a failed unit is rolled back to its savepoint,
// leaving the ambient transaction open and usable for further units.
//
// The ambient transaction itself is owned by the caller, which is
// expected to roll it back wholesale (tests rely on this for isolation
// without schema resets). SavepointRunner must never be wired into
// production request handling.
type SavepointRunner struct {
	tx  *sqlx.Tx
	seq atomic.Int64
}

// NewSavepointRunner wraps an already-begun transaction.
func NewSavepointRunner(txn *sqlx.Tx) *SavepointRunner {
	return &SavepointRunner{tx: txn}
}

// Run issues a savepoint, invokes fn, and releases the savepoint on
// success. On failure it rolls back to the savepoint and returns the
// unit's original error.
func (r *SavepointRunner) Run(ctx context.Context, fn UnitOfWork) error {
	name := fmt.Sprintf("sp_%d", r.seq.Add(1))

	if _, err := r.tx.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("savepoint %s: %w", name, err)
	}

	if err := fn(ctx, r.tx); err != nil {
		if _, rbErr := r.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			logger.Log.Errorw("rollback to savepoint failed", "savepoint", name, "error", rbErr)
		}
		return err
	}

	if _, err := r.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return fmt.Errorf("release savepoint %s: %w", name, err)
	}
	return nil
}
