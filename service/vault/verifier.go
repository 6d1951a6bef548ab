package vault

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/pandodao/watch-wallet/core"
)

func NewVerifier(ctx context.Context, password string, iterations int) (*core.PasswordVerifier, error) {
	if password == "" {
		return nil, errors.New("password must not be empty")
	}

	if iterations <= 0 || iterations > maxIterations {
		return nil, fmt.Errorf("iterations must be in [1, %d]", maxIterations)
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	pwd := []byte(password)
	defer clear(pwd)

	hash, err := deriveKey(ctx, pwd, salt, iterations, purposeVerification)
	if err != nil {
		return nil, fmt.Errorf("failed to derive digest: %w", err)
	}

	return &core.PasswordVerifier{
		Version:    core.VaultVersion,
		KDF:        core.VaultKDF,
		Iterations: iterations,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Hash:       base64.StdEncoding.EncodeToString(hash),
	}, nil
}

// Check re-derives the digest with the record's salt and iterations. It never
// looks at the encrypted secret.
func Check(ctx context.Context, password string, record *core.PasswordVerifier) (bool, error) {
	if record == nil || record.Version != core.VaultVersion || record.KDF != core.VaultKDF ||
		record.Iterations <= 0 || record.Iterations > maxIterations {
		return false, nil
	}

	salt, err := base64.StdEncoding.DecodeString(record.Salt)
	if err != nil {
		return false, nil
	}

	want, err := base64.StdEncoding.DecodeString(record.Hash)
	if err != nil || len(want) != keyLen {
		return false, nil
	}

	pwd := []byte(password)
	defer clear(pwd)

	got, err := deriveKey(ctx, pwd, salt, record.Iterations, purposeVerification)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
