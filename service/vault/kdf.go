package vault

import (
	"context"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

type purpose string

// the two purposes never share key material: each mixes its own label into
// the salt and callers draw a separate random salt for each.
const (
	purposeEncryption   purpose = "watch-wallet/encryption-key/v1"
	purposeVerification purpose = "watch-wallet/verification-digest/v1"
)

// maxIterations bounds the work a stored record can ask for.
const maxIterations = 10_000_000

const (
	keyLen  = 32
	saltLen = 16
	ivLen   = 12
)

func deriveKey(ctx context.Context, password []byte, salt []byte, iterations int, p purpose) ([]byte, error) {
	s := make([]byte, 0, len(p)+len(salt))
	s = append(s, p...)
	s = append(s, salt...)

	done := make(chan []byte, 1)
	go func() {
		done <- pbkdf2.Key(password, s, iterations, keyLen, sha256.New)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case key := <-done:
		return key, nil
	}
}
