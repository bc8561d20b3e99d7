package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports/mocks"
	"paysecure-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// orderedIDs returns two ids with lo < hi in byte order.
func orderedIDs() (uuid.UUID, uuid.UUID) {
	a, b := uuid.New(), uuid.New()
	if bytes.Compare(a[:], b[:]) > 0 {
		return b, a
	}
	return a, b
}

func TestLedger_Transfer_LocksInAscendingOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	ledger := NewLedgerService(accounts)
	ctx := context.Background()
	tx := &mockTx{}

	lo, hi := orderedIDs()
	// debit the higher id so the lock order differs from argument order
	debit := &domain.Account{ID: hi, Balance: 5000}
	credit := &domain.Account{ID: lo, Balance: 100}

	gomock.InOrder(
		accounts.EXPECT().GetByIDForUpdate(ctx, tx, lo).Return(credit, nil),
		accounts.EXPECT().GetByIDForUpdate(ctx, tx, hi).Return(debit, nil),
	)
	accounts.EXPECT().UpdateBalance(ctx, tx, hi, int64(3000)).Return(nil)
	accounts.EXPECT().UpdateBalance(ctx, tx, lo, int64(2100)).Return(nil)

	newDebit, newCredit, err := ledger.Transfer(ctx, tx, hi, lo, 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), newDebit)
	assert.Equal(t, int64(2100), newCredit)
	assert.Equal(t, int64(5100), newDebit+newCredit)
}

func TestLedger_Transfer_InsufficientFundsNoMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	ledger := NewLedgerService(accounts)
	tx := &mockTx{}

	lo, hi := orderedIDs()
	accounts.EXPECT().GetByIDForUpdate(gomock.Any(), tx, lo).Return(&domain.Account{ID: lo, Balance: 50}, nil)
	accounts.EXPECT().GetByIDForUpdate(gomock.Any(), tx, hi).Return(&domain.Account{ID: hi, Balance: 0}, nil)

	_, _, err := ledger.Transfer(context.Background(), tx, lo, hi, 51)
	assert.True(t, errors.Is(err, apperror.ErrInsufficientFunds()))
}

func TestLedger_Transfer_Rejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	ledger := NewLedgerService(accounts)
	id := uuid.New()

	_, _, err := ledger.Transfer(context.Background(), &mockTx{}, id, uuid.New(), 0)
	assert.True(t, errors.Is(err, apperror.ErrInvalidAmount()))

	_, _, err = ledger.Transfer(context.Background(), &mockTx{}, id, id, 10)
	assert.True(t, errors.Is(err, apperror.ErrSelfTransfer()))
}

func TestLedger_Transfer_MissingAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	ledger := NewLedgerService(accounts)

	lo, hi := orderedIDs()
	accounts.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), lo).Return(nil, nil)

	_, _, err := ledger.Transfer(context.Background(), &mockTx{}, lo, hi, 10)
	assert.Equal(t, "PAY_004", apperror.CodeOf(err))
}
