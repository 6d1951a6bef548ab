package vault

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asaskevich/govalidator"
	"github.com/pandodao/watch-wallet/core"
)

type Config struct {
	Iterations int `valid:"range(1000|10000000)"`
}

func New(properties core.PropertyStore, logger *slog.Logger, cfg Config) core.VaultService {
	if cfg.Iterations == 0 {
		cfg.Iterations = core.DefaultIterations
	}

	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	return &service{
		properties: properties,
		logger:     logger.With("service", "vault"),
		iterations: cfg.Iterations,
	}
}

type service struct {
	properties core.PropertyStore
	logger     *slog.Logger
	iterations int
}

func (s *service) Create(ctx context.Context, secret, password string) error {
	status, err := s.Status(ctx)
	if err != nil {
		return err
	}

	// a vault holding only one of the two records was never completed and
	// is written over.
	if status.HasSecret && status.HasVerifier {
		return core.ErrVaultExists
	}

	if status.HasSecret || status.HasVerifier {
		s.logger.Warn("incomplete vault found, reinitializing")
	}

	payload, err := Encrypt(ctx, secret, password, s.iterations)
	if err != nil {
		return err
	}

	verifier, err := NewVerifier(ctx, password, s.iterations)
	if err != nil {
		return err
	}

	if err := s.properties.Set(ctx, core.PropertyVaultSecret, payload); err != nil {
		s.logger.Error("properties.Set", "key", core.PropertyVaultSecret, "err", err)
		return err
	}

	if err := s.properties.Set(ctx, core.PropertyVaultVerifier, verifier); err != nil {
		s.logger.Error("properties.Set", "key", core.PropertyVaultVerifier, "err", err)
		return err
	}

	s.logger.Info("vault created", "iterations", s.iterations)
	return nil
}

func (s *service) Verify(ctx context.Context, password string) (bool, error) {
	var verifier core.PasswordVerifier
	if err := s.properties.Get(ctx, core.PropertyVaultVerifier, &verifier); err != nil {
		s.logger.Error("properties.Get", "key", core.PropertyVaultVerifier, "err", err)
		return false, err
	}

	if verifier.Version == 0 {
		return false, core.ErrVaultEmpty
	}

	return Check(ctx, password, &verifier)
}

func (s *service) Unlock(ctx context.Context, password string) (string, error) {
	var payload core.EncryptedSecret
	if err := s.properties.Get(ctx, core.PropertyVaultSecret, &payload); err != nil {
		s.logger.Error("properties.Get", "key", core.PropertyVaultSecret, "err", err)
		return "", err
	}

	if payload.Version == 0 {
		return "", core.ErrVaultEmpty
	}

	secret, err := Decrypt(ctx, &payload, password)
	if err != nil {
		s.logger.Debug("unlock failed")
		return "", err
	}

	return secret, nil
}

func (s *service) Status(ctx context.Context) (*core.VaultStatus, error) {
	var (
		payload  core.EncryptedSecret
		verifier core.PasswordVerifier
	)

	if err := s.properties.Get(ctx, core.PropertyVaultSecret, &payload); err != nil {
		return nil, fmt.Errorf("read vault secret: %w", err)
	}

	if err := s.properties.Get(ctx, core.PropertyVaultVerifier, &verifier); err != nil {
		return nil, fmt.Errorf("read vault verifier: %w", err)
	}

	return &core.VaultStatus{
		HasSecret:   payload.Version > 0,
		HasVerifier: verifier.Version > 0,
		Iterations:  payload.Iterations,
		CreatedAt:   payload.CreatedAt,
	}, nil
}
