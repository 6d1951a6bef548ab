package core

import (
	"context"
	"time"
)

const (
	VaultVersion      = 1
	VaultAlgorithm    = "AES-GCM"
	VaultKDF          = "PBKDF2-SHA256"
	DefaultIterations = 120_000
)

// EncryptedSecret is an authenticated-encryption envelope of a locally held
// secret. Binary fields are base64 encoded.
type EncryptedSecret struct {
	Version    int       `json:"version"`
	Algorithm  string    `json:"algorithm"`
	KDF        string    `json:"kdf"`
	Iterations int       `json:"iterations"`
	Salt       string    `json:"salt"`
	IV         string    `json:"iv"`
	CipherText string    `json:"cipherText"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PasswordVerifier is stored apart from EncryptedSecret and carries nothing
// that can decrypt it.
type PasswordVerifier struct {
	Version    int    `json:"version"`
	KDF        string `json:"kdf"`
	Iterations int    `json:"iterations"`
	Salt       string `json:"salt"`
	Hash       string `json:"hash"`
}

type VaultStatus struct {
	HasSecret   bool      `json:"hasSecret"`
	HasVerifier bool      `json:"hasVerifier"`
	Iterations  int       `json:"iterations,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

type VaultService interface {
	Create(ctx context.Context, secret, password string) error
	Verify(ctx context.Context, password string) (bool, error)
	Unlock(ctx context.Context, password string) (string, error)
	Status(ctx context.Context) (*VaultStatus, error)
}
