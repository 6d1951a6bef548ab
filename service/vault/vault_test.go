package vault

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/pandodao/watch-wallet/core"
	"github.com/pandodao/watch-wallet/store/property"
)

func newTestService() core.VaultService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(property.NewMemory(), logger, Config{Iterations: testIterations})
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	status, err := s.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	if status.HasSecret || status.HasVerifier {
		t.Fatalf("fresh vault status = %+v", status)
	}

	if _, err := s.Verify(ctx, "whatever"); !errors.Is(err, core.ErrVaultEmpty) {
		t.Errorf("Verify on empty vault err = %v, want ErrVaultEmpty", err)
	}

	if _, err := s.Unlock(ctx, "whatever"); !errors.Is(err, core.ErrVaultEmpty) {
		t.Errorf("Unlock on empty vault err = %v, want ErrVaultEmpty", err)
	}

	if err := s.Create(ctx, "my seed words", "correct-password"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Create(ctx, "other", "correct-password"); !errors.Is(err, core.ErrVaultExists) {
		t.Errorf("second Create err = %v, want ErrVaultExists", err)
	}

	status, err = s.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	if !status.HasSecret || !status.HasVerifier || status.Iterations != testIterations {
		t.Errorf("status = %+v", status)
	}

	ok, err := s.Verify(ctx, "wrong-password")
	if err != nil || ok {
		t.Errorf("Verify(wrong) = %v, %v", ok, err)
	}

	if _, err := s.Unlock(ctx, "wrong-password"); !errors.Is(err, core.ErrAuthentication) {
		t.Errorf("Unlock(wrong) err = %v, want ErrAuthentication", err)
	}

	ok, err = s.Verify(ctx, "correct-password")
	if err != nil || !ok {
		t.Errorf("Verify(correct) = %v, %v", ok, err)
	}

	secret, err := s.Unlock(ctx, "correct-password")
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	if secret != "my seed words" {
		t.Errorf("Unlock = %q", secret)
	}
}

type flakyStore struct {
	core.PropertyStore
	failKey string
}

func (s *flakyStore) Set(ctx context.Context, key string, value any) error {
	if key == s.failKey {
		return errors.New("disk full")
	}

	return s.PropertyStore.Set(ctx, key, value)
}

func TestCreateRetryAfterPartialWrite(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, key := range []string{core.PropertyVaultSecret, core.PropertyVaultVerifier} {
		t.Run(key, func(t *testing.T) {
			properties := &flakyStore{PropertyStore: property.NewMemory(), failKey: key}
			s := New(properties, logger, Config{Iterations: testIterations})

			if err := s.Create(ctx, "my seed words", "correct-password"); err == nil {
				t.Fatal("Create succeeded with a failing store")
			}

			properties.failKey = ""

			if err := s.Create(ctx, "my seed words", "correct-password"); err != nil {
				t.Fatalf("retry Create: %v", err)
			}

			ok, err := s.Verify(ctx, "correct-password")
			if err != nil || !ok {
				t.Errorf("Verify = %v, %v", ok, err)
			}

			secret, err := s.Unlock(ctx, "correct-password")
			if err != nil || secret != "my seed words" {
				t.Errorf("Unlock = %q, %v", secret, err)
			}

			if err := s.Create(ctx, "other", "correct-password"); !errors.Is(err, core.ErrVaultExists) {
				t.Errorf("Create on complete vault err = %v, want ErrVaultExists", err)
			}
		})
	}
}

func TestNewRejectsWeakIterations(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New did not panic on iterations below the floor")
		}
	}()

	New(property.NewMemory(), slog.Default(), Config{Iterations: 10})
}
