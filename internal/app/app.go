// Package app assembles the payment pipeline from configuration.
package app

import (
	"context"
	"fmt"

	"paysecure-gateway/config"
	"paysecure-gateway/docs/api"
	httpHandler "paysecure-gateway/internal/adapter/http/handler"
	"paysecure-gateway/internal/adapter/messaging/kafka"
	"paysecure-gateway/internal/adapter/metrics"
	"paysecure-gateway/internal/core/ports"
	"paysecure-gateway/internal/service"
	"paysecure-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// App is a fully wired gateway.
type App struct {
	Router   *gin.Engine
	Storage  *Storage
	Payments *service.PaymentServiceImpl
	Audit    *service.AuditChainService
	Hasher   ports.HashService
	Metrics  *metrics.Prometheus

	risk   *service.RiskService
	events ports.EventPublisher
	log    zerolog.Logger
}

// New opens storage, builds every service and mounts the HTTP routes.
// Call Close to release resources.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	st, err := OpenStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	a, err := build(cfg, st, log)
	if err != nil {
		st.Close()
		return nil, err
	}
	return a, nil
}

func build(cfg *config.Config, st *Storage, log zerolog.Logger) (*App, error) {
	prom := metrics.NewPrometheus()

	var events ports.EventPublisher = kafka.NoopPublisher{}
	if cfg.Kafka.Enabled {
		pub, err := kafka.NewPublisher(cfg.Kafka, logger.Component(log, "events"))
		if err != nil {
			return nil, fmt.Errorf("kafka publisher: %w", err)
		}
		events = pub
	}

	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		_ = events.Close()
		return nil, fmt.Errorf("encryption service: %w", err)
	}
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	keys, generated, err := service.LoadOrCreateKeyPair(cfg.Integrity.KeyDir)
	if err != nil {
		_ = events.Close()
		return nil, fmt.Errorf("signing keys: %w", err)
	}
	if generated {
		log.Warn().Str("key_dir", cfg.Integrity.KeyDir).Msg("generated a new signing key pair")
	}
	signer, err := service.NewTransactionSigner(cfg.Integrity.HMACSecret, keys)
	if err != nil {
		_ = events.Close()
		return nil, fmt.Errorf("transaction signer: %w", err)
	}

	creds := service.NewCredentialService(st.Users, st.Accounts, hashSvc)
	audit := service.NewAuditChainService(st.Audit, st.Transactor, prom, logger.Component(log, "audit"))
	stepUp := service.NewStepUpService(st.Users, audit, cfg.StepUp.Issuer, logger.Component(log, "step_up"))
	otp := service.NewOtpService(st.OTP, creds, prom, cfg.OTP.TTL, cfg.OTP.Retention, logger.Component(log, "otp"))
	ledger := service.NewLedgerService(st.Accounts)

	risk, err := service.NewRiskService(st.Risk, st.Users, st.Accounts, prom, service.RiskConfig{
		PoolSize: cfg.Risk.PoolSize,
		Timeout:  cfg.Risk.Timeout,
	}, logger.Component(log, "risk"))
	if err != nil {
		_ = events.Close()
		return nil, err
	}

	payments := service.NewPaymentService(service.PaymentServiceDeps{
		Users:        st.Users,
		Accounts:     st.Accounts,
		Transactions: st.Transactions,
		Transactor:   st.Transactor,
		Credentials:  creds,
		StepUp:       stepUp,
		OTP:          otp,
		Ledger:       ledger,
		Signer:       signer,
		Risk:         risk,
		Audit:        audit,
		Encryption:   encSvc,
		Events:       events,
		Metrics:      prom,
		EchoOTP:      cfg.OTP.DemoEcho,
	}, logger.Component(log, "payments"))
	authSvc := service.NewAuthService(creds, tokenSvc, audit, logger.Component(log, "auth"))

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		StepUp:         stepUp,
		PaymentSvc:     payments,
		TokenSvc:       tokenSvc,
		RateLimitStore: st.RateLimit,
		HealthCheckers: st.Health,
		HTTPMetrics:    prom,
		MetricsHandler: prom.Handler(),
		OpenAPISpec:    api.OpenAPI,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	return &App{
		Router:   router,
		Storage:  st,
		Payments: payments,
		Audit:    audit,
		Hasher:   hashSvc,
		Metrics:  prom,
		risk:     risk,
		events:   events,
		log:      log,
	}, nil
}

// Close flushes pending events and releases the worker pool and storage.
func (a *App) Close() {
	if err := a.events.Close(); err != nil {
		a.log.Error().Err(err).Msg("failed to close event publisher")
	}
	a.risk.Close()
	a.Storage.Close()
}
