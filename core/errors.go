package core

import (
	"errors"
	"fmt"
)

var (
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrAuthentication covers both a verifier mismatch and a failed
	// decryption, so callers can't tell them apart.
	ErrAuthentication = errors.New("incorrect password")
	ErrVaultExists    = errors.New("vault already initialized")
	ErrVaultEmpty     = errors.New("vault not initialized")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}

	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider call failed: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Message: err.Error(), Err: err}
}
