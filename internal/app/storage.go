package app

import (
	"context"
	"fmt"

	"paysecure-gateway/config"
	"paysecure-gateway/internal/adapter/storage/memory"
	pgStorage "paysecure-gateway/internal/adapter/storage/postgres"
	redisStorage "paysecure-gateway/internal/adapter/storage/redis"
	"paysecure-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// Storage bundles the repositories and stores for one backend.
type Storage struct {
	Users        ports.UserRepository
	Accounts     ports.AccountRepository
	Transactions ports.TransactionRepository
	Risk         ports.RiskRepository
	Audit        ports.AuditRepository
	Transactor   ports.DBTransactor
	OTP          ports.OtpStore
	RateLimit    ports.RateLimitStore
	Health       []ports.HealthChecker

	closers []func()
}

// Close releases connections in reverse order of opening.
func (s *Storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// OpenDatabase opens the relational backend only: users, accounts,
// transactions and the audit chain. OTP and rate-limit stores are left nil
// unless the driver is memory.
func OpenDatabase(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case "memory":
		return openMemory(), nil
	case "postgres":
		return openPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

// OpenStorage opens the relational backend plus the OTP and rate-limit
// stores. With the postgres driver those live in Redis.
func OpenStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Storage, error) {
	st, err := OpenDatabase(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if cfg.Storage.Driver == "memory" {
		return st, nil
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	st.closers = append(st.closers, func() { _ = rdb.Close() })
	st.OTP = redisStorage.NewOtpStore(rdb)
	st.RateLimit = redisStorage.NewRateLimitStore(rdb)
	st.Health = append(st.Health, redisStorage.NewHealthCheck(rdb))
	return st, nil
}

func openMemory() *Storage {
	store := memory.NewStore()
	return &Storage{
		Users:        memory.NewUserRepo(store),
		Accounts:     memory.NewAccountRepo(store),
		Transactions: memory.NewTransactionRepo(store),
		Risk:         memory.NewRiskRepo(store),
		Audit:        memory.NewAuditRepo(store),
		Transactor:   store,
		OTP:          memory.NewOtpStore(),
		RateLimit:    memory.NewRateLimitStore(),
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Storage, error) {
	if cfg.Database.AutoMigrate {
		if err := pgStorage.RunMigrations(cfg.Database.DSN()); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		log.Info().Msg("database migrations applied")
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return &Storage{
		Users:        pgStorage.NewUserRepo(pool),
		Accounts:     pgStorage.NewAccountRepo(pool),
		Transactions: pgStorage.NewTransactionRepo(pool),
		Risk:         pgStorage.NewRiskRepo(pool),
		Audit:        pgStorage.NewAuditRepo(pool),
		Transactor:   pgStorage.NewTransactor(pool, cfg.Database.LockTimeout),
		Health:       []ports.HealthChecker{pgStorage.NewHealthCheck(pool)},
		closers:      []func(){pool.Close},
	}, nil
}
