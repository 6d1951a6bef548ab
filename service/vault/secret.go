package vault

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pandodao/watch-wallet/core"
)

// Encrypt seals plaintext with AES-256-GCM under a key derived from password.
// Salt and nonce are drawn fresh on every call.
func Encrypt(ctx context.Context, plaintext, password string, iterations int) (*core.EncryptedSecret, error) {
	if plaintext == "" || password == "" {
		return nil, errors.New("secret and password must not be empty")
	}

	if iterations <= 0 || iterations > maxIterations {
		return nil, fmt.Errorf("iterations must be in [1, %d]", maxIterations)
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	iv := make([]byte, ivLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	pwd := []byte(password)
	defer clear(pwd)

	key, err := deriveKey(ctx, pwd, salt, iterations, purposeEncryption)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	data := []byte(plaintext)
	defer clear(data)

	return &core.EncryptedSecret{
		Version:    core.VaultVersion,
		Algorithm:  core.VaultAlgorithm,
		KDF:        core.VaultKDF,
		Iterations: iterations,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(iv),
		CipherText: base64.StdEncoding.EncodeToString(aead.Seal(nil, iv, data, nil)),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Decrypt opens payload with password. Every failure that could depend on
// the password or on tampered data is reported as core.ErrAuthentication.
func Decrypt(ctx context.Context, payload *core.EncryptedSecret, password string) (string, error) {
	if payload == nil || payload.Version != core.VaultVersion ||
		payload.Algorithm != core.VaultAlgorithm || payload.KDF != core.VaultKDF || payload.Iterations <= 0 || payload.Iterations > maxIterations {
		return "", core.ErrAuthentication
	}

	salt, err1 := base64.StdEncoding.DecodeString(payload.Salt)
	iv, err2 := base64.StdEncoding.DecodeString(payload.IV)
	ciphertext, err3 := base64.StdEncoding.DecodeString(payload.CipherText)
	if err := errors.Join(err1, err2, err3); err != nil || len(iv) != ivLen {
		return "", core.ErrAuthentication
	}

	pwd := []byte(password)
	defer clear(pwd)

	key, err := deriveKey(ctx, pwd, salt, payload.Iterations, purposeEncryption)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", core.ErrAuthentication
	}
	defer clear(plaintext)

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aead, nil
}
