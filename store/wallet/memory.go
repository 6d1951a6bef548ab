package wallet

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pandodao/watch-wallet/core"
)

// NewMemory returns a WalletStore that lives as long as the process.
func NewMemory() core.WalletStore {
	return &memoryStore{wallets: map[string]core.Wallet{}}
}

type memoryStore struct {
	mux     sync.RWMutex
	wallets map[string]core.Wallet
}

func (s *memoryStore) Create(_ context.Context, wallet *core.Wallet) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	id := uuid.NewString()
	for {
		if _, ok := s.wallets[id]; !ok {
			break
		}

		id = uuid.NewString()
	}

	wallet.ID = id
	s.wallets[id] = *wallet
	return nil
}

func (s *memoryStore) Find(_ context.Context, id string) (*core.Wallet, error) {
	s.mux.RLock()
	w, ok := s.wallets[id]
	s.mux.RUnlock()

	if !ok {
		return nil, core.ErrWalletNotFound
	}

	return &w, nil
}

func (s *memoryStore) List(_ context.Context) ([]*core.Wallet, error) {
	s.mux.RLock()
	wallets := make([]*core.Wallet, 0, len(s.wallets))
	for _, w := range s.wallets {
		w := w
		wallets = append(wallets, &w)
	}
	s.mux.RUnlock()

	sort.Slice(wallets, func(i, j int) bool {
		return wallets[i].CreatedAt.Before(wallets[j].CreatedAt)
	})

	return wallets, nil
}
