package service

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	rsaKeyBits         = 2048
	privateKeyFileName = "private.pem"
	publicKeyFileName  = "public.pem"
)

// RSAKeyPair is the deployment-wide transaction signing key.
type RSAKeyPair struct {
	private   *rsa.PrivateKey
	publicPEM string
}

// LoadOrCreateKeyPair loads the key pair stored in dir, generating and
// persisting one only when no private key exists yet. An existing key is never
// replaced: historical signatures depend on it.
func LoadOrCreateKeyPair(dir string) (*RSAKeyPair, bool, error) {
	if dir == "" {
		return nil, false, errors.New("key directory is not configured")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, false, fmt.Errorf("creating key directory: %w", err)
	}

	privPath := filepath.Join(dir, privateKeyFileName)
	kp, err := loadKeyPair(privPath)
	if err == nil {
		return kp, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}

	key, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, false, fmt.Errorf("generating RSA key: %w", err)
	}
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	// O_EXCL: if another process wrote the key first, use theirs.
	f, err := os.OpenFile(privPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		kp, err := loadKeyPair(privPath)
		return kp, false, err
	}
	if err != nil {
		return nil, false, fmt.Errorf("creating private key file: %w", err)
	}
	if _, err := f.Write(privPEM); err != nil {
		f.Close()
		return nil, false, fmt.Errorf("writing private key: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, false, fmt.Errorf("closing private key file: %w", err)
	}

	kp, err = newRSAKeyPair(key)
	if err != nil {
		return nil, false, err
	}
	if err := os.WriteFile(filepath.Join(dir, publicKeyFileName), []byte(kp.publicPEM), 0o644); err != nil {
		return nil, false, fmt.Errorf("writing public key: %w", err)
	}
	return kp, true, nil
}

func loadKeyPair(privPath string) (*RSAKeyPair, error) {
	data, err := os.ReadFile(privPath)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%s: no PEM block found", privPath)
	}
	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}
	return newRSAKeyPair(key)
}

func newRSAKeyPair(key *rsa.PrivateKey) (*RSAKeyPair, error) {
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("encoding public key: %w", err)
	}
	pub := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return &RSAKeyPair{private: key, publicPEM: string(pub)}, nil
}

// Sign returns the base64 PKCS#1 v1.5 SHA-256 signature of payload.
func (k *RSAKeyPair) Sign(payload string) (string, error) {
	hashed := sha256.Sum256([]byte(payload))
	sig, err := rsa.SignPKCS1v15(rand.Reader, k.private, crypto.SHA256, hashed[:])
	if err != nil {
		return "", fmt.Errorf("signing payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// Verify reports whether signature is a valid signature of payload.
func (k *RSAKeyPair) Verify(payload string, signature string) bool {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	hashed := sha256.Sum256([]byte(payload))
	return rsa.VerifyPKCS1v15(&k.private.PublicKey, crypto.SHA256, hashed[:], sig) == nil
}

// PublicKeyPEM returns the PKIX public key in PEM form.
func (k *RSAKeyPair) PublicKeyPEM() string {
	return k.publicPEM
}
