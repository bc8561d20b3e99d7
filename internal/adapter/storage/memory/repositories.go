package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"paysecure-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// --- Users ---

// UserRepo implements ports.UserRepository.
type UserRepo struct{ s *Store }

// NewUserRepo creates a UserRepo over s.
func NewUserRepo(s *Store) *UserRepo { return &UserRepo{s: s} }

// Create stores a new user. Emails are unique.
func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return fmt.Errorf("create user: email %s already exists", user.Email)
		}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	r.s.users[user.ID] = *user
	return nil
}

// GetByID returns the user, or nil if it does not exist.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail returns the user with this email, or nil.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// UpdateStepUp stores the TOTP secret and whether step-up is enabled.
func (r *UserRepo) UpdateStepUp(ctx context.Context, id uuid.UUID, secret string, enabled bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return fmt.Errorf("update step-up: user %s not found", id)
	}
	u.StepUpSecret = secret
	u.StepUpEnabled = enabled
	r.s.users[id] = u
	return nil
}

// --- Accounts ---

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct{ s *Store }

// NewAccountRepo creates an AccountRepo over s.
func NewAccountRepo(s *Store) *AccountRepo { return &AccountRepo{s: s} }

// Create stores a new account. An owner has at most one wallet and one bank
// account per bank username.
func (r *AccountRepo) Create(ctx context.Context, account *domain.Account) error {
	if account.Balance < 0 {
		return errors.New("create account: balance must not be negative")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accounts {
		if account.Kind == domain.AccountKindWallet && a.Kind == domain.AccountKindWallet && a.OwnerID == account.OwnerID {
			return fmt.Errorf("create account: owner %s already has a wallet", account.OwnerID)
		}
		if account.Kind == domain.AccountKindBank && a.Kind == domain.AccountKindBank &&
			a.OwnerID == account.OwnerID && a.BankUsername == account.BankUsername {
			return fmt.Errorf("create account: bank username %s already linked", account.BankUsername)
		}
	}
	now := time.Now().UTC()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now
	r.s.accounts[account.ID] = *account
	return nil
}

// GetByID returns the account, or nil if it does not exist.
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// GetWalletByOwner returns the owner's wallet, or nil.
func (r *AccountRepo) GetWalletByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error) {
	return r.find(func(a domain.Account) bool {
		return a.OwnerID == ownerID && a.Kind == domain.AccountKindWallet
	}), nil
}

// GetBankByOwnerAndUsername returns the owner's linked bank account, or nil.
func (r *AccountRepo) GetBankByOwnerAndUsername(ctx context.Context, ownerID uuid.UUID, bankUsername string) (*domain.Account, error) {
	return r.find(func(a domain.Account) bool {
		return a.OwnerID == ownerID && a.Kind == domain.AccountKindBank && a.BankUsername == bankUsername
	}), nil
}

func (r *AccountRepo) find(match func(domain.Account) bool) *domain.Account {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.accounts {
		if match(a) {
			a := a
			return &a
		}
	}
	return nil
}

// GetByIDForUpdate reads inside tx. The open transaction already excludes
// every other writer, so no row lock is needed.
func (r *AccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	if _, err := r.s.tx(tx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdateBalance writes the new balance inside tx and bumps the version.
// Rollback restores the previous row.
func (r *AccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance int64) error {
	mt, err := r.s.tx(tx)
	if err != nil {
		return err
	}
	if balance < 0 {
		return fmt.Errorf("update balance: account %s would go negative", id)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.accounts[id]
	if !ok {
		return fmt.Errorf("update balance: account %s not found", id)
	}
	next := prev
	next.Balance = balance
	next.Version++
	next.UpdatedAt = time.Now().UTC()
	r.s.accounts[id] = next
	mt.onRollback(func() { r.s.accounts[id] = prev })
	return nil
}

// --- Transactions ---

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct{ s *Store }

// NewTransactionRepo creates a TransactionRepo over s.
func NewTransactionRepo(s *Store) *TransactionRepo { return &TransactionRepo{s: s} }

// Create inserts t inside tx.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	mt, err := r.s.tx(tx)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.transactions[t.ID]; exists {
		return fmt.Errorf("insert transaction: %s already exists", t.ID)
	}
	stored := *t
	stored.RiskReasons = append([]string{}, t.RiskReasons...)
	r.s.transactions[t.ID] = stored
	r.s.txOrder = append(r.s.txOrder, t.ID)
	mt.onRollback(func() {
		delete(r.s.transactions, t.ID)
		r.s.txOrder = r.s.txOrder[:len(r.s.txOrder)-1]
	})
	return nil
}

// GetByID returns the transaction, or nil if it does not exist.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.transactions[id]
	if !ok {
		return nil, nil
	}
	t.RiskReasons = append([]string{}, t.RiskReasons...)
	return &t, nil
}

// --- Risk aggregates ---

// RiskRepo implements ports.RiskRepository over the stored transactions.
type RiskRepo struct{ s *Store }

// NewRiskRepo creates a RiskRepo over s.
func NewRiskRepo(s *Store) *RiskRepo { return &RiskRepo{s: s} }

// AverageSuccessfulAmount averages the sender's SUCCESS amounts since the
// given time. ok is false when there are none.
func (r *RiskRepo) AverageSuccessfulAmount(ctx context.Context, senderID uuid.UUID, since time.Time) (float64, bool, error) {
	var sum, n int64
	r.each(func(t domain.Transaction) {
		if t.SenderID == senderID && t.Status == domain.TransactionStatusSuccess && !t.CreatedAt.Before(since) {
			sum += t.Amount
			n++
		}
	})
	if n == 0 {
		return 0, false, nil
	}
	return float64(sum) / float64(n), true, nil
}

// CountSentSince counts the sender's transactions created since the given time.
func (r *RiskRepo) CountSentSince(ctx context.Context, senderID uuid.UUID, since time.Time) (int, error) {
	count := 0
	r.each(func(t domain.Transaction) {
		if t.SenderID == senderID && !t.CreatedAt.Before(since) {
			count++
		}
	})
	return count, nil
}

// DistinctSendersSince lists the senders that paid receiverID since the given time.
func (r *RiskRepo) DistinctSendersSince(ctx context.Context, receiverID uuid.UUID, since time.Time) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{})
	senders := []uuid.UUID{}
	r.each(func(t domain.Transaction) {
		if t.ReceiverID != receiverID || t.CreatedAt.Before(since) {
			return
		}
		if _, ok := seen[t.SenderID]; !ok {
			seen[t.SenderID] = struct{}{}
			senders = append(senders, t.SenderID)
		}
	})
	return senders, nil
}

func (r *RiskRepo) each(fn func(domain.Transaction)) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range r.s.txOrder {
		fn(r.s.transactions[id])
	}
}

// --- Audit chain ---

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct{ s *Store }

// NewAuditRepo creates an AuditRepo over s.
func NewAuditRepo(s *Store) *AuditRepo { return &AuditRepo{s: s} }

// LockChain only validates tx: holding a transaction already serializes
// appenders.
func (r *AuditRepo) LockChain(ctx context.Context, tx pgx.Tx) error {
	_, err := r.s.tx(tx)
	return err
}

// Last returns the newest entry, or nil for an empty chain.
func (r *AuditRepo) Last(ctx context.Context, tx pgx.Tx) (*domain.AuditEntry, error) {
	if _, err := r.s.tx(tx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if len(r.s.audit) == 0 {
		return nil, nil
	}
	e := r.s.audit[len(r.s.audit)-1]
	return &e, nil
}

// Insert appends entry inside tx and assigns its sequence number.
func (r *AuditRepo) Insert(ctx context.Context, tx pgx.Tx, entry *domain.AuditEntry) error {
	mt, err := r.s.tx(tx)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var seq int64 = 1
	if n := len(r.s.audit); n > 0 {
		seq = r.s.audit[n-1].Seq + 1
	}
	entry.Seq = seq
	stored := *entry
	stored.Meta = append([]byte{}, entry.Meta...)
	r.s.audit = append(r.s.audit, stored)
	mt.onRollback(func() { r.s.audit = r.s.audit[:len(r.s.audit)-1] })
	return nil
}

// ListOrdered returns every entry in sequence order.
func (r *AuditRepo) ListOrdered(ctx context.Context) ([]domain.AuditEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.AuditEntry, len(r.s.audit))
	copy(out, r.s.audit)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}
