package service

import (
	"bytes"
	"context"
	"fmt"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports"
	"paysecure-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerService implements ports.Ledger with pessimistic row locks.
type LedgerService struct {
	accounts ports.AccountRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accounts ports.AccountRepository) *LedgerService {
	return &LedgerService{accounts: accounts}
}

// Transfer moves amount from debitID to creditID inside tx. Both rows are
// locked in ascending id order so concurrent transfers between the same pair
// cannot deadlock. On insufficient funds nothing is written and the locks
// stay held until tx ends.
func (l *LedgerService) Transfer(ctx context.Context, tx pgx.Tx, debitID, creditID uuid.UUID, amount int64) (int64, int64, error) {
	if amount <= 0 {
		return 0, 0, apperror.ErrInvalidAmount()
	}
	if debitID == creditID {
		return 0, 0, apperror.ErrSelfTransfer()
	}

	first, second := debitID, creditID
	if bytes.Compare(second[:], first[:]) < 0 {
		first, second = second, first
	}

	locked := make(map[uuid.UUID]*domain.Account, 2)
	for _, id := range []uuid.UUID{first, second} {
		acc, err := l.accounts.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return 0, 0, apperror.ErrDatabaseError(fmt.Errorf("lock account %s: %w", id, err))
		}
		if acc == nil {
			return 0, 0, apperror.ErrNotFound("Account")
		}
		locked[id] = acc
	}

	debit, credit := locked[debitID], locked[creditID]
	if !debit.CanDebit(amount) {
		return debit.Balance, credit.Balance, apperror.ErrInsufficientFunds()
	}

	newDebit := debit.Balance - amount
	newCredit := credit.Balance + amount

	if err := l.accounts.UpdateBalance(ctx, tx, debit.ID, newDebit); err != nil {
		return 0, 0, apperror.ErrDatabaseError(fmt.Errorf("debit account: %w", err))
	}
	if err := l.accounts.UpdateBalance(ctx, tx, credit.ID, newCredit); err != nil {
		return 0, 0, apperror.ErrDatabaseError(fmt.Errorf("credit account: %w", err))
	}

	return newDebit, newCredit, nil
}
