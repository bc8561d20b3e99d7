package app

import (
	"context"
	"fmt"
	"time"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports"

	"github.com/google/uuid"
)

// SeedUser describes a demo user with a wallet and one linked bank account.
type SeedUser struct {
	Name         string
	Email        string
	Password     string
	PIN          string
	BankUsername string
	BankPassword string
}

// Seeded is what Seed created for one SeedUser.
type Seeded struct {
	User   *domain.User
	Wallet *domain.Account
	Bank   *domain.Account
}

// DemoUsers returns the default demo population.
func DemoUsers() []SeedUser {
	return []SeedUser{
		{Name: "Asha Rao", Email: "asha@example.com", Password: "asha-pass-123", PIN: "1234", BankUsername: "asha.bank", BankPassword: "bank-pass-1"},
		{Name: "Ben Okafor", Email: "ben@example.com", Password: "ben-pass-123", PIN: "4321", BankUsername: "ben.bank", BankPassword: "bank-pass-2"},
		{Name: "Chen Li", Email: "chen@example.com", Password: "chen-pass-123", PIN: "2468", BankUsername: "chen.bank", BankPassword: "bank-pass-3"},
	}
}

// Seed creates each user with a wallet holding DefaultWalletBalance and a
// bank account holding DefaultBankBalance. Users whose email already exists
// are skipped. createdAt stamps every record.
func Seed(ctx context.Context, users ports.UserRepository, accounts ports.AccountRepository, hasher domain.CredentialHasher, specs []SeedUser, createdAt time.Time) ([]Seeded, error) {
	var out []Seeded
	for _, spec := range specs {
		existing, err := users.GetByEmail(ctx, spec.Email)
		if err != nil {
			return out, fmt.Errorf("lookup %s: %w", spec.Email, err)
		}
		if existing != nil {
			continue
		}

		seeded, err := seedOne(ctx, users, accounts, hasher, spec, createdAt)
		if err != nil {
			return out, fmt.Errorf("seed %s: %w", spec.Email, err)
		}
		out = append(out, *seeded)
	}
	return out, nil
}

func seedOne(ctx context.Context, users ports.UserRepository, accounts ports.AccountRepository, hasher domain.CredentialHasher, spec SeedUser, createdAt time.Time) (*Seeded, error) {
	user := &domain.User{
		ID:        uuid.New(),
		Name:      spec.Name,
		Email:     spec.Email,
		Role:      domain.RoleUser,
		CreatedAt: createdAt,
	}
	if err := user.SetPassword(hasher, spec.Password); err != nil {
		return nil, err
	}
	if spec.PIN != "" {
		if err := user.SetPIN(hasher, spec.PIN); err != nil {
			return nil, err
		}
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}

	wallet := &domain.Account{
		ID:        uuid.New(),
		OwnerID:   user.ID,
		Kind:      domain.AccountKindWallet,
		Balance:   domain.DefaultWalletBalance,
		Version:   1,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := accounts.Create(ctx, wallet); err != nil {
		return nil, err
	}

	seeded := &Seeded{User: user, Wallet: wallet}
	if spec.BankUsername == "" {
		return seeded, nil
	}

	bank := &domain.Account{
		ID:            uuid.New(),
		OwnerID:       user.ID,
		Kind:          domain.AccountKindBank,
		Balance:       domain.DefaultBankBalance,
		BankUsername:  spec.BankUsername,
		AccountNumber: fmt.Sprintf("%010d", user.ID.ID()),
		Version:       1,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	if err := bank.SetCredential(hasher, spec.BankPassword); err != nil {
		return nil, err
	}
	if err := accounts.Create(ctx, bank); err != nil {
		return nil, err
	}
	seeded.Bank = bank
	return seeded, nil
}
