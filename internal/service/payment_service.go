package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports"
	"paysecure-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const publishTimeout = 5 * time.Second

// PaymentServiceDeps groups the collaborators of the orchestrator.
type PaymentServiceDeps struct {
	Users        ports.UserRepository
	Accounts     ports.AccountRepository
	Transactions ports.TransactionRepository
	Transactor   ports.DBTransactor
	Credentials  ports.CredentialVerifier
	StepUp       ports.StepUpAuthenticator
	OTP          ports.OtpChallengeService
	Ledger       ports.Ledger
	Signer       ports.Signer
	Risk         ports.RiskEngine
	Audit        ports.AuditChain
	Encryption   ports.EncryptionService
	Events       ports.EventPublisher
	Metrics      ports.Metrics
	// EchoOTP returns the issued code in the initiation response. Demo only.
	EchoOTP bool
}

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	PaymentServiceDeps
	now func() time.Time
	log zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(deps PaymentServiceDeps, log zerolog.Logger) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		PaymentServiceDeps: deps,
		now:                time.Now,
		log:                log,
	}
}

// settlement is a payment that has passed every pre-check and only needs
// to be applied to the ledger and recorded.
type settlement struct {
	senderID       uuid.UUID
	receiverID     uuid.UUID
	sourceID       uuid.UUID
	destID         uuid.UUID
	amount         int64
	rail           domain.Rail
	pinPlaceholder string
	cardLast4      string
	clientIP       string
}

// Pay settles a UPI or card payment from the sender's wallet to the
// receiver's wallet.
func (s *PaymentServiceImpl) Pay(ctx context.Context, req ports.PayRequest) (*domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Rail != domain.RailUPI && req.Rail != domain.RailCard {
		return nil, apperror.ErrUnsupportedRail()
	}

	sender, senderWallet, receiverWallet, err := s.resolveParties(ctx, req.SenderID, req.ReceiverID)
	if err != nil {
		return nil, err
	}

	st := settlement{
		senderID:   sender.ID,
		receiverID: req.ReceiverID,
		sourceID:   senderWallet.ID,
		destID:     receiverWallet.ID,
		amount:     req.Amount,
		rail:       req.Rail,
		clientIP:   req.ClientIP,
	}

	switch req.Rail {
	case domain.RailUPI:
		if err := s.Credentials.VerifyPIN(ctx, sender, req.PIN); err != nil {
			return nil, err
		}
		placeholder, err := s.Encryption.Encrypt(req.PIN)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("seal pin placeholder: %w", err))
		}
		st.pinPlaceholder = placeholder
	case domain.RailCard:
		if req.Card == nil {
			return nil, apperror.Validation("card details are required for the CARD rail")
		}
		if err := s.Credentials.VerifyCard(*req.Card, s.now()); err != nil {
			return nil, err
		}
		st.pinPlaceholder = domain.PinPlaceholderNone
		st.cardLast4 = domain.LastFour(req.Card.Number)
	}

	if err := s.checkStepUp(sender, req.Amount, req.StepUpCode); err != nil {
		return nil, err
	}

	return s.settle(ctx, st)
}

// InitiateBankPayment issues the OTP challenge that a bank-rail payment is
// completed with.
func (s *PaymentServiceImpl) InitiateBankPayment(ctx context.Context, req ports.OtpInitiateRequest) (*ports.OtpIssued, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if _, _, _, err := s.resolveParties(ctx, req.SenderID, req.ReceiverID); err != nil {
		return nil, err
	}

	challenge, err := s.OTP.Initiate(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.Audit.Record(ctx, req.SenderID.String(), domain.AuditActionOTPInitiated, map[string]any{
		"receiver_id": req.ReceiverID.String(),
		"amount":      req.Amount,
	}); err != nil {
		if invErr := s.OTP.Invalidate(ctx, req.SenderID); invErr != nil {
			s.log.Warn().Err(invErr).Str("sender_id", req.SenderID.String()).Msg("failed to drop unaudited otp")
		}
		return nil, err
	}

	issued := &ports.OtpIssued{ExpiresAt: challenge.ExpiresAt}
	if s.EchoOTP {
		issued.Code = challenge.Code
	}
	return issued, nil
}

// VerifyBankOTP checks the outstanding challenge, consumes it and settles
// the bound payment from the linked bank account.
func (s *PaymentServiceImpl) VerifyBankOTP(ctx context.Context, req ports.BankVerifyRequest) (*domain.Transaction, error) {
	challenge, err := s.OTP.Check(ctx, req.SenderID, req.Code)
	if err != nil {
		return nil, err
	}

	sender, _, receiverWallet, err := s.resolveParties(ctx, req.SenderID, challenge.ReceiverID)
	if err != nil {
		return nil, err
	}

	if err := s.checkStepUp(sender, challenge.Amount, req.StepUpCode); err != nil {
		return nil, err
	}

	if err := s.OTP.Consume(ctx, challenge); err != nil {
		return nil, err
	}

	return s.settle(ctx, settlement{
		senderID:       sender.ID,
		receiverID:     challenge.ReceiverID,
		sourceID:       challenge.SourceAccountID,
		destID:         receiverWallet.ID,
		amount:         challenge.Amount,
		rail:           domain.RailBank,
		pinPlaceholder: domain.PinPlaceholderNone,
		clientIP:       req.ClientIP,
	})
}

// VerifySignature recomputes the integrity code and checks the stored
// signature of a transaction.
func (s *PaymentServiceImpl) VerifySignature(ctx context.Context, actorID uuid.UUID, transactionID uuid.UUID) (*ports.SignatureVerification, error) {
	txn, err := s.Transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("find transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("Transaction")
	}

	result := &ports.SignatureVerification{
		TransactionID: txn.ID,
		HMACValid:     s.Signer.VerifyHMAC(txn.HMACPayload(), txn.HMAC),
		PublicKey:     s.Signer.PublicKeyPEM(),
	}
	if txn.Signature != nil {
		result.IsValid = s.Signer.Verify(txn.SignaturePayload(), *txn.Signature)
	}

	if _, err := s.Audit.Record(ctx, actorID.String(), domain.AuditActionSignatureVerified, map[string]any{
		"transaction_id": txn.ID.String(),
		"is_valid":       result.IsValid,
		"hmac_valid":     result.HMACValid,
	}); err != nil {
		s.log.Warn().Err(err).Str("tx_id", txn.ID.String()).Msg("failed to audit signature verification")
	}

	return result, nil
}

// VerifyAuditChain validates the whole chain and records that it was checked.
func (s *PaymentServiceImpl) VerifyAuditChain(ctx context.Context, actorID uuid.UUID) (*domain.ChainVerification, error) {
	result, err := s.Audit.VerifyChain(ctx)
	if err != nil {
		return nil, err
	}

	meta := map[string]any{
		"valid":         result.Valid,
		"total_entries": result.TotalEntries,
	}
	if result.BrokenAt != nil {
		meta["broken_at"] = *result.BrokenAt
	}
	if _, err := s.Audit.Record(ctx, actorID.String(), domain.AuditActionChainVerified, meta); err != nil {
		s.log.Warn().Err(err).Msg("failed to audit chain verification")
	}

	return result, nil
}

// resolveParties loads the sender and both wallets and rejects self-payments.
func (s *PaymentServiceImpl) resolveParties(ctx context.Context, senderID, receiverID uuid.UUID) (*domain.User, *domain.Account, *domain.Account, error) {
	if senderID == receiverID {
		return nil, nil, nil, apperror.ErrSelfTransfer()
	}

	sender, err := s.Users.GetByID(ctx, senderID)
	if err != nil {
		return nil, nil, nil, apperror.ErrDatabaseError(fmt.Errorf("find sender: %w", err))
	}
	if sender == nil {
		return nil, nil, nil, apperror.ErrNotFound("Sender")
	}

	receiver, err := s.Users.GetByID(ctx, receiverID)
	if err != nil {
		return nil, nil, nil, apperror.ErrDatabaseError(fmt.Errorf("find receiver: %w", err))
	}
	if receiver == nil {
		return nil, nil, nil, apperror.ErrNotFound("Receiver")
	}

	senderWallet, err := s.Accounts.GetWalletByOwner(ctx, senderID)
	if err != nil {
		return nil, nil, nil, apperror.ErrDatabaseError(fmt.Errorf("find sender wallet: %w", err))
	}
	if senderWallet == nil {
		return nil, nil, nil, apperror.ErrNotFound("Sender wallet")
	}

	receiverWallet, err := s.Accounts.GetWalletByOwner(ctx, receiverID)
	if err != nil {
		return nil, nil, nil, apperror.ErrDatabaseError(fmt.Errorf("find receiver wallet: %w", err))
	}
	if receiverWallet == nil {
		return nil, nil, nil, apperror.ErrNotFound("Receiver wallet")
	}

	return sender, senderWallet, receiverWallet, nil
}

func (s *PaymentServiceImpl) checkStepUp(user *domain.User, amount int64, code string) error {
	if !s.StepUp.Required(amount, user.StepUpEnabled) {
		return nil
	}
	if code == "" {
		return apperror.ErrStepUpRequired()
	}
	if !s.StepUp.Verify(code, user.StepUpSecret) {
		return apperror.ErrStepUpInvalid()
	}
	return nil
}

// settle scores the payment, then applies it to the ledger and records the
// transaction and its audit entry in one database transaction. A payment
// rejected for insufficient funds is recorded as FAILED and returned along
// with the error.
func (s *PaymentServiceImpl) settle(ctx context.Context, st settlement) (*domain.Transaction, error) {
	now := s.now()
	risk := s.scoreAsync(ctx, domain.RiskCandidate{
		SenderID:        st.senderID,
		ReceiverID:      st.receiverID,
		SourceAccountID: st.sourceID,
		Amount:          st.amount,
		Rail:            st.rail,
		At:              now,
	})

	var assessment domain.RiskAssessment
	select {
	case assessment = <-risk:
	case <-ctx.Done():
		return nil, apperror.InternalError(fmt.Errorf("await risk: %w", ctx.Err()))
	}

	txn := domain.NewTransaction(st.senderID, st.receiverID, st.sourceID, st.amount, st.rail, st.pinPlaceholder, now)
	txn.CardLast4 = st.cardLast4

	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	action := domain.AuditActionTransactionSuccess
	_, _, transferErr := s.Ledger.Transfer(ctx, dbTx, st.sourceID, st.destID, st.amount)
	switch {
	case transferErr == nil:
		if err := txn.MarkSucceeded(assessment); err != nil {
			return nil, apperror.InternalError(err)
		}
	case errors.Is(transferErr, apperror.ErrInsufficientFunds()):
		if err := txn.MarkFailed("insufficient balance"); err != nil {
			return nil, apperror.InternalError(err)
		}
		action = domain.AuditActionTransactionFailed
	default:
		return nil, transferErr
	}

	if err := s.attest(txn); err != nil {
		return nil, err
	}

	if err := s.Transactions.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create transaction: %w", err))
	}

	meta := map[string]any{
		"transaction_id": txn.ID.String(),
		"receiver_id":    txn.ReceiverID.String(),
		"amount":         txn.Amount,
		"rail":           string(txn.Rail),
		"ip":             st.clientIP,
	}
	if txn.Status == domain.TransactionStatusSuccess {
		meta["risk_score"] = txn.RiskScore
	} else {
		meta["reason"] = txn.FailureReason
	}
	if _, err := s.Audit.Append(ctx, dbTx, txn.SenderID.String(), action, meta); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.afterCommit(ctx, txn)

	if transferErr != nil {
		return txn, transferErr
	}
	return txn, nil
}

// scoreAsync runs the risk engine in the background. The channel always
// receives exactly one assessment.
func (s *PaymentServiceImpl) scoreAsync(ctx context.Context, c domain.RiskCandidate) <-chan domain.RiskAssessment {
	out := make(chan domain.RiskAssessment, 1)
	go func() {
		out <- s.Risk.Score(ctx, c)
	}()
	return out
}

// attest computes the integrity code and signature over the final record.
func (s *PaymentServiceImpl) attest(txn *domain.Transaction) error {
	txn.HMAC = s.Signer.HMAC(txn.HMACPayload())
	sig, err := s.Signer.Sign(txn.SignaturePayload())
	if err != nil {
		return apperror.ErrIntegrityFailure(fmt.Errorf("sign transaction: %w", err))
	}
	txn.Signature = &sig
	return nil
}

func (s *PaymentServiceImpl) afterCommit(ctx context.Context, txn *domain.Transaction) {
	s.Metrics.ObservePayment(txn.Rail, txn.Status)

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.Events.PublishTransaction(pubCtx, domain.EventFromTransaction(txn)); err != nil {
		s.log.Warn().Err(err).Str("tx_id", txn.ID.String()).Msg("failed to publish transaction event")
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("sender_id", txn.SenderID.String()).
		Str("rail", string(txn.Rail)).
		Int64("amount", txn.Amount).
		Str("status", string(txn.Status)).
		Int("risk_score", txn.RiskScore).
		Msg("payment settled")
}
