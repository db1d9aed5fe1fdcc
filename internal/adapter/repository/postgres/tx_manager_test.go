package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

type fakePgxTx struct {
	pgx.Tx

	committed  bool
	rolledBack bool
}

func (t *fakePgxTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakePgxTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakePool struct {
	tx  *fakePgxTx
	err error
}

func (p *fakePool) Begin(ctx context.Context) (pgx.Tx, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.tx, nil
}

func TestTxManagerBeginAndCommit(t *testing.T) {
	fake := &fakePgxTx{}
	manager := newTxManagerWithPool(&fakePool{tx: fake})

	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	if !fake.committed {
		t.Fatal("expected underlying tx to be committed")
	}
}

func TestTxManagerBeginError(t *testing.T) {
	beginErr := errors.New("begin failed")
	manager := newTxManagerWithPool(&fakePool{err: beginErr})

	_, err := manager.Begin(context.Background())
	if !errors.Is(err, beginErr) {
		t.Fatalf("expected begin error, got %v", err)
	}
}

func TestTxRollback(t *testing.T) {
	fake := &fakePgxTx{}
	manager := newTxManagerWithPool(&fakePool{tx: fake})

	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tx.Rollback(context.Background()); err != nil {
		t.Fatalf("rollback failed: %v", err)
	}

	if !fake.rolledBack {
		t.Fatal("expected underlying tx to be rolled back")
	}
}
