package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/elearn-api/internal/store"
)

// Transactor runs fn directly with a nil *sql.Tx.
type Transactor struct {
	// Err, when set, is returned without calling fn.
	Err   error
	Calls int
}

var _ store.Transactor = (*Transactor)(nil)

// RunInTransaction implements store.Transactor.
func (t *Transactor) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	t.Calls++
	if t.Err != nil {
		return t.Err
	}
	var tx *sql.Tx
	return fn(ctx, tx)
}
