package handler

import (
	"errors"
	"time"

	"paysecure-gateway/internal/adapter/http/dto"
	"paysecure-gateway/internal/adapter/http/middleware"
	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports"
	"paysecure-gateway/pkg/apperror"
	"paysecure-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler exposes the payment rails and the integrity checks.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// Pay handles POST /api/v1/payments/pay.
func (h *PaymentHandler) Pay(c *gin.Context) {
	senderID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	var req dto.PayRequest
	if !bindJSON(c, &req) {
		return
	}
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		response.Error(c, apperror.Validation("receiver_id must be a UUID"))
		return
	}

	payReq := ports.PayRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Amount:     req.Amount,
		Rail:       domain.Rail(req.Rail),
		PIN:        req.PIN,
		StepUpCode: req.StepUpCode,
		ClientIP:   c.ClientIP(),
	}
	if req.Card != nil {
		payReq.Card = &ports.CardDetails{
			Number:      req.Card.Number,
			ExpiryMonth: req.Card.ExpiryMonth,
			ExpiryYear:  req.Card.ExpiryYear,
			CVV:         req.Card.CVV,
		}
	}

	txn, err := h.paymentSvc.Pay(c.Request.Context(), payReq)
	respondSettlement(c, txn, err)
}

// InitiateBank handles POST /api/v1/payments/bank/initiate.
func (h *PaymentHandler) InitiateBank(c *gin.Context) {
	senderID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	var req dto.BankInitiateRequest
	if !bindJSON(c, &req) {
		return
	}
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		response.Error(c, apperror.Validation("receiver_id must be a UUID"))
		return
	}

	issued, err := h.paymentSvc.InitiateBankPayment(c.Request.Context(), ports.OtpInitiateRequest{
		SenderID:     senderID,
		ReceiverID:   receiverID,
		Amount:       req.Amount,
		BankUsername: req.BankUsername,
		BankPassword: req.BankPassword,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BankInitiateResponse{
		ChallengeIssued: true,
		ExpiresAt:       issued.ExpiresAt.UTC().Format(time.RFC3339),
		Code:            issued.Code,
	})
}

// VerifyBankOTP handles POST /api/v1/payments/bank/verify-otp.
func (h *PaymentHandler) VerifyBankOTP(c *gin.Context) {
	senderID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	var req dto.BankVerifyRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.paymentSvc.VerifyBankOTP(c.Request.Context(), ports.BankVerifyRequest{
		SenderID:   senderID,
		Code:       req.Code,
		StepUpCode: req.StepUpCode,
		ClientIP:   c.ClientIP(),
	})
	respondSettlement(c, txn, err)
}

// VerifySignature handles GET /api/v1/payments/verify-signature/:id.
func (h *PaymentHandler) VerifySignature(c *gin.Context) {
	actorID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	txID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("transaction id must be a UUID"))
		return
	}

	result, err := h.paymentSvc.VerifySignature(c.Request.Context(), actorID, txID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SignatureResponse{
		TransactionID: result.TransactionID.String(),
		IsValid:       result.IsValid,
		HMACValid:     result.HMACValid,
		PublicKey:     result.PublicKey,
	})
}

// VerifyAuditChain handles GET /api/v1/audit/verify-chain.
func (h *PaymentHandler) VerifyAuditChain(c *gin.Context) {
	actorID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	result, err := h.paymentSvc.VerifyAuditChain(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AuditChainResponse{
		Valid:        result.Valid,
		TotalEntries: result.TotalEntries,
		BrokenAt:     result.BrokenAt,
		Reason:       result.Reason,
	})
}

// respondSettlement writes the result of Pay or VerifyBankOTP. A payment
// refused for insufficient funds is still recorded, so its id goes out in
// the error details.
func respondSettlement(c *gin.Context, txn *domain.Transaction, err error) {
	if err != nil {
		if txn != nil && errors.Is(err, apperror.ErrInsufficientFunds()) {
			response.ErrorWithDetails(c, err, toTransactionResponse(txn))
			return
		}
		response.Error(c, err)
		return
	}
	response.Created(c, toTransactionResponse(txn))
}

func toTransactionResponse(txn *domain.Transaction) dto.TransactionResponse {
	reasons := txn.RiskReasons
	if reasons == nil {
		reasons = []string{}
	}
	return dto.TransactionResponse{
		TransactionID: txn.ID.String(),
		Status:        string(txn.Status),
		Rail:          string(txn.Rail),
		Amount:        txn.Amount,
		CardLast4:     txn.CardLast4,
		RiskScore:     txn.RiskScore,
		RiskReasons:   reasons,
		FailureReason: txn.FailureReason,
		CreatedAt:     txn.CreatedAt.Format(time.RFC3339Nano),
	}
}
