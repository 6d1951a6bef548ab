package wallet

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pandodao/watch-wallet/core"
	"github.com/pandodao/watch-wallet/store/db"
)

func openSQLite(t *testing.T) *db.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "wallets.db"))
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}

	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func stores(t *testing.T) map[string]core.WalletStore {
	return map[string]core.WalletStore{
		"memory": NewMemory(),
		"sqlite": New(openSQLite(t)),
	}
}

func TestCreateFind(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 10, 30, 0, 123000000, time.UTC)

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			w := &core.Wallet{
				Address:       "4AdUndXHHZ6cfufTMvppY6JwXNouMBzSkbLYfpAV5Usx",
				ViewKey:       "f359631075708155cc3d92a32b75a7d02a5dcf27",
				Mode:          core.WalletModeViewKey,
				RestoreHeight: 2_950_000,
				CreatedAt:     createdAt,
			}

			if err := s.Create(ctx, w); err != nil {
				t.Fatalf("Create: %v", err)
			}

			if w.ID == "" {
				t.Fatal("Create did not assign an id")
			}

			got, err := s.Find(ctx, w.ID)
			if err != nil {
				t.Fatalf("Find: %v", err)
			}

			if got.Address != w.Address || got.ViewKey != w.ViewKey || got.Mode != w.Mode || got.RestoreHeight != w.RestoreHeight {
				t.Errorf("Find = %+v, want %+v", got, w)
			}

			if !got.CreatedAt.Equal(createdAt) {
				t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, createdAt)
			}

			// cached copies must not leak mutations back into the store
			got.Label = "changed"
			again, err := s.Find(ctx, w.ID)
			if err != nil {
				t.Fatalf("Find again: %v", err)
			}

			if again.Label != "" {
				t.Errorf("store returned shared wallet, label = %q", again.Label)
			}
		})
	}
}

func TestFindNotFound(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Find(context.Background(), "does-not-exist")
			if !errors.Is(err, core.ErrWalletNotFound) {
				t.Errorf("Find err = %v, want ErrWalletNotFound", err)
			}
		})
	}
}

func TestCreateConcurrentUniqueIDs(t *testing.T) {
	const n = 64

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var (
				wg  sync.WaitGroup
				mux sync.Mutex
				ids = map[string]bool{}
			)

			for i := 0; i < n; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()

					w := &core.Wallet{
						Address:   "local:concurrent",
						Label:     "concurrent",
						Mode:      core.WalletModeLocal,
						CreatedAt: time.Now().UTC(),
					}

					if err := s.Create(context.Background(), w); err != nil {
						t.Errorf("Create: %v", err)
						return
					}

					mux.Lock()
					ids[w.ID] = true
					mux.Unlock()
				}()
			}

			wg.Wait()

			if len(ids) != n {
				t.Errorf("got %d unique ids, want %d", len(ids), n)
			}

			wallets, err := s.List(context.Background())
			if err != nil {
				t.Fatalf("List: %v", err)
			}

			if len(wallets) != n {
				t.Errorf("List returned %d wallets, want %d", len(wallets), n)
			}
		})
	}
}
