package dto

// LoginRequest is the request body for session login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=128" sanitize:"-"`
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token         string `json:"token"`
	ExpiresIn     int64  `json:"expires_in"` // seconds
	StepUpEnabled bool   `json:"step_up_enabled"`
}

// StepUpSetupResponse carries the fresh TOTP secret for the authenticator app.
type StepUpSetupResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
}

// StepUpEnableRequest confirms a TOTP secret.
type StepUpEnableRequest struct {
	Code string `json:"code" binding:"required,totp_code"`
}

// CardRequest is the card-rail secret.
type CardRequest struct {
	Number      string `json:"card_number" binding:"required,card_number" sanitize:"-"`
	ExpiryMonth int    `json:"expiry_month" binding:"required,min=1,max=12"`
	ExpiryYear  int    `json:"expiry_year" binding:"required,gte=2000,lte=2100"`
	CVV         string `json:"cvv" binding:"required,len=3,numeric" sanitize:"-"`
}

// PayRequest is the request body for UPI and card payments. Which secret is
// required depends on Rail.
type PayRequest struct {
	ReceiverID string       `json:"receiver_id" binding:"required,uuid"`
	Amount     int64        `json:"amount" binding:"required,gt=0"`
	Rail       string       `json:"rail" binding:"required,oneof=UPI CARD"`
	PIN        string       `json:"pin,omitempty" binding:"omitempty,upi_pin" sanitize:"-"`
	Card       *CardRequest `json:"card,omitempty"`
	StepUpCode string       `json:"step_up_code,omitempty" binding:"omitempty,totp_code" sanitize:"-"`
}

// BankInitiateRequest starts a bank-rail payment.
type BankInitiateRequest struct {
	BankUsername string `json:"bank_username" binding:"required,max=64,safe_id"`
	BankPassword string `json:"bank_password" binding:"required,max=128" sanitize:"-"`
	ReceiverID   string `json:"receiver_id" binding:"required,uuid"`
	Amount       int64  `json:"amount" binding:"required,gt=0"`
}

// BankInitiateResponse reports an issued OTP. Code is only set in demo mode.
type BankInitiateResponse struct {
	ChallengeIssued bool   `json:"challenge_issued"`
	ExpiresAt       string `json:"expires_at"`
	Code            string `json:"code,omitempty"`
}

// BankVerifyRequest completes a bank-rail payment.
type BankVerifyRequest struct {
	Code       string `json:"code" binding:"required,len=6,numeric" sanitize:"-"`
	StepUpCode string `json:"step_up_code,omitempty" binding:"omitempty,totp_code" sanitize:"-"`
}

// TransactionResponse is the result of a settled (or failed) payment.
type TransactionResponse struct {
	TransactionID string   `json:"transaction_id"`
	Status        string   `json:"status"`
	Rail          string   `json:"rail"`
	Amount        int64    `json:"amount"`
	CardLast4     string   `json:"card_last4,omitempty"`
	RiskScore     int      `json:"risk_score"`
	RiskReasons   []string `json:"risk_reasons"`
	FailureReason string   `json:"failure_reason,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

// SignatureResponse reports the integrity of a stored transaction.
type SignatureResponse struct {
	TransactionID string `json:"transaction_id"`
	IsValid       bool   `json:"is_valid"`
	HMACValid     bool   `json:"hmac_valid"`
	PublicKey     string `json:"public_key"`
}

// AuditChainResponse is the result of walking the audit chain.
type AuditChainResponse struct {
	Valid        bool   `json:"valid"`
	TotalEntries int    `json:"total_entries"`
	BrokenAt     *int   `json:"broken_at,omitempty"`
	Reason       string `json:"reason,omitempty"`
}
