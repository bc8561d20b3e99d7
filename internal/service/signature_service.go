package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// HMACSignatureService computes HMAC-SHA256 codes with a caller-supplied key.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign computes HMAC-SHA256 of payload using secretKey as lowercase hex.
func (s *HMACSignatureService) Sign(secretKey string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks signature against HMAC-SHA256(secretKey, payload) in constant time.
func (s *HMACSignatureService) Verify(secretKey string, payload string, signature string) bool {
	expected := s.Sign(secretKey, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// TransactionSigner implements ports.Signer: a shared-secret HMAC plus the
// deployment RSA key pair.
type TransactionSigner struct {
	hmac   *HMACSignatureService
	secret string
	keys   *RSAKeyPair
}

// NewTransactionSigner fails when either key is missing, so the pipeline can
// never run without attestation.
func NewTransactionSigner(hmacSecret string, keys *RSAKeyPair) (*TransactionSigner, error) {
	if hmacSecret == "" {
		return nil, errors.New("hmac secret is empty")
	}
	if keys == nil {
		return nil, errors.New("signing key pair is missing")
	}
	return &TransactionSigner{
		hmac:   NewHMACSignatureService(),
		secret: hmacSecret,
		keys:   keys,
	}, nil
}

func (s *TransactionSigner) HMAC(payload string) string {
	return s.hmac.Sign(s.secret, payload)
}

func (s *TransactionSigner) VerifyHMAC(payload string, code string) bool {
	return s.hmac.Verify(s.secret, payload, code)
}

func (s *TransactionSigner) Sign(payload string) (string, error) {
	return s.keys.Sign(payload)
}

func (s *TransactionSigner) Verify(payload string, signature string) bool {
	return s.keys.Verify(payload, signature)
}

func (s *TransactionSigner) PublicKeyPEM() string {
	return s.keys.PublicKeyPEM()
}
