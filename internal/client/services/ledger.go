package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/crack-social/crack-cli/internal/client/repositories/state"
	"github.com/crack-social/crack-cli/internal/common"
	"github.com/crack-social/crack-cli/internal/dbx"
	"github.com/crack-social/crack-cli/internal/logging"
)

// balanceKey is the store key owned by the ledger service.
const balanceKey = "ledger_balance"

// InitialBalance is the amount granted on the very first read of an
// empty store.
const InitialBalance int64 = 500

// LedgerService owns the spendable credit balance.
//
// Contract:
//   - Read: current balance, lazily initialized to InitialBalance.
//   - Credit: add a positive amount, return the new balance.
//   - Debit: subtract a positive amount if funds suffice, return the new
//     balance; the balance is never observed negative.
type LedgerService interface {
	Read(ctx context.Context) (int64, error)
	Credit(ctx context.Context, amount int64) (int64, error)
	Debit(ctx context.Context, amount int64) (int64, error)
}

// ledgerService is the concrete LedgerService backed by the local store.
// The mutex serializes check-then-mutate sequences so that two concurrent
// debits cannot both pass the funds check.
type ledgerService struct {
	db  *sql.DB
	log logging.Logger
	mu  sync.Mutex
}

// NewLedgerService constructs a LedgerService bound to the given DB.
func NewLedgerService(db *sql.DB, log logging.Logger) LedgerService {
	return &ledgerService{db: db, log: log.With("component", "ledger")}
}

// Read returns the current balance. On the first ever read the balance is
// initialized to InitialBalance and persisted, so consumers always see a
// defined value without a separate account-creation step.
func (l *ledgerService) Read(ctx context.Context) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var balance int64
	err := dbx.WithTx(ctx, l.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		balance, err = l.readOrInit(ctx, state.NewSQLiteRepository(tx))
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Credit adds amount to the balance and persists the result.
func (l *ledgerService) Credit(ctx context.Context, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("credit amount must be positive, got %d: %w", amount, common.ErrInvalidAmount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var balance int64
	err := dbx.WithTx(ctx, l.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		current, err := l.readOrInit(ctx, repo)
		if err != nil {
			return err
		}
		balance = current + amount
		return l.write(ctx, repo, balance)
	})
	if err != nil {
		return 0, err
	}

	l.log.Info(ctx, "balance credited", "amount", amount, "balance", balance)
	return balance, nil
}

// Debit subtracts amount from the balance if funds suffice. On
// ErrInsufficientFunds the stored balance is left unchanged; the
// non-negativity invariant takes priority over the operation succeeding.
func (l *ledgerService) Debit(ctx context.Context, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("debit amount must be positive, got %d: %w", amount, common.ErrInvalidAmount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var balance int64
	err := dbx.WithTx(ctx, l.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		current, err := l.readOrInit(ctx, repo)
		if err != nil {
			return err
		}
		if amount > current {
			return fmt.Errorf("debit of %d exceeds balance %d: %w", amount, current, common.ErrInsufficientFunds)
		}
		balance = current - amount
		return l.write(ctx, repo, balance)
	})
	if err != nil {
		return 0, err
	}

	l.log.Info(ctx, "balance debited", "amount", amount, "balance", balance)
	return balance, nil
}

// readOrInit reads the stored balance, seeding it with InitialBalance when
// the key is absent.
func (l *ledgerService) readOrInit(ctx context.Context, repo state.Repository) (int64, error) {
	raw, err := repo.Get(ctx, balanceKey)
	if err != nil {
		return 0, errors.Join(common.ErrStorageFailure, err)
	}
	if raw == nil {
		if err := l.write(ctx, repo, InitialBalance); err != nil {
			return 0, err
		}
		l.log.Info(ctx, "balance initialized", "balance", InitialBalance)
		return InitialBalance, nil
	}

	balance, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("decode balance %q: %w", raw, err)
	}
	return balance, nil
}

func (l *ledgerService) write(ctx context.Context, repo state.Repository, balance int64) error {
	if err := repo.Set(ctx, balanceKey, []byte(strconv.FormatInt(balance, 10))); err != nil {
		return errors.Join(common.ErrStorageFailure, err)
	}
	return nil
}
