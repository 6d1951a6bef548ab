package wallet

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pandodao/generic"
	"github.com/pandodao/watch-wallet/core"
	"github.com/pandodao/watch-wallet/store/db"
)

// New returns a WalletStore backed by the wallets table. Wallets are
// immutable once created, so found rows are cached without invalidation.
func New(db *db.DB) core.WalletStore {
	return &walletStore{
		db:      db,
		wallets: generic.Must(lru.New[string, core.Wallet](256)),
	}
}

type walletStore struct {
	db      *db.DB
	wallets *lru.Cache[string, core.Wallet]
}

var columns = []string{"id", "address", "view_key", "label", "mode", "restore_height", "created_at"}

func (s *walletStore) Create(ctx context.Context, wallet *core.Wallet) error {
	id := uuid.NewString()

	b := s.db.Builder().Insert("wallets").
		Columns(columns...).
		Values(id, wallet.Address, wallet.ViewKey, wallet.Label, string(wallet.Mode), int64(wallet.RestoreHeight), wallet.CreatedAt.UTC())

	if _, err := b.RunWith(s.db).ExecContext(ctx); err != nil {
		return err
	}

	wallet.ID = id
	return nil
}

func (s *walletStore) Find(ctx context.Context, id string) (*core.Wallet, error) {
	if w, ok := s.wallets.Get(id); ok {
		return &w, nil
	}

	w, err := s.find(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrWalletNotFound
	} else if err != nil {
		return nil, err
	}

	s.wallets.Add(id, *w)
	return w, nil
}

func (s *walletStore) find(ctx context.Context, id string) (*core.Wallet, error) {
	b := s.db.Builder().Select(columns...).From("wallets").Where(sq.Eq{"id": id})
	return scanWallet(b.RunWith(s.db).QueryRowContext(ctx))
}

func (s *walletStore) List(ctx context.Context) ([]*core.Wallet, error) {
	b := s.db.Builder().Select(columns...).From("wallets").OrderBy("created_at")
	rows, err := b.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallets []*core.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}

		wallets = append(wallets, w)
	}

	return wallets, rows.Err()
}

func scanWallet(row sq.RowScanner) (*core.Wallet, error) {
	var (
		w             core.Wallet
		mode          string
		restoreHeight int64
	)

	if err := row.Scan(&w.ID, &w.Address, &w.ViewKey, &w.Label, &mode, &restoreHeight, &w.CreatedAt); err != nil {
		return nil, err
	}

	w.Mode = core.WalletMode(mode)
	w.RestoreHeight = uint64(restoreHeight)
	w.CreatedAt = w.CreatedAt.UTC()
	return &w, nil
}
