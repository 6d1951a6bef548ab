package property

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pandodao/watch-wallet/core"
	"github.com/pandodao/watch-wallet/store/db"
)

func openSQLite(t *testing.T) *db.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}

	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func testPropertyStore(t *testing.T, s core.PropertyStore) {
	ctx := context.Background()

	var missing core.ProviderStatus
	if err := s.Get(ctx, "missing", &missing); err != nil {
		t.Fatalf("Get missing: %v", err)
	}

	if missing.Provider != "" {
		t.Errorf("missing key filled value: %+v", missing)
	}

	status := core.ProviderStatus{
		Provider:  core.ProviderMock,
		Network:   "mainnet",
		Height:    3100000,
		CheckedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := s.Set(ctx, core.PropertyProviderStatus, status); err != nil {
		t.Fatalf("Set: %v", err)
	}

	status.Height++
	if err := s.Set(ctx, core.PropertyProviderStatus, status); err != nil {
		t.Fatalf("Set again: %v", err)
	}

	var got core.ProviderStatus
	if err := s.Get(ctx, core.PropertyProviderStatus, &got); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got != status {
		t.Errorf("Get = %+v, want %+v", got, status)
	}
}

func TestMemoryStore(t *testing.T) {
	testPropertyStore(t, NewMemory())
}

func TestSQLStore(t *testing.T) {
	testPropertyStore(t, New(openSQLite(t)))
}
