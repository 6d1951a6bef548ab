package core

import (
	"context"
	"time"
)

type WalletMode string

const (
	WalletModeViewKey WalletMode = "view_key"
	WalletModeLocal   WalletMode = "local"
)

// Wallet is a watch-only wallet identity. It is created once and never
// mutated afterwards.
type Wallet struct {
	ID            string     `json:"id"`
	Address       string     `json:"address"`
	ViewKey       string     `json:"-"`
	Label         string     `json:"label,omitempty"`
	Mode          WalletMode `json:"mode"`
	RestoreHeight uint64     `json:"restoreHeight"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type ImportInput struct {
	Address       string `json:"address" valid:"required,stringlength(20|256)"`
	ViewKey       string `json:"viewKey" valid:"stringlength(20|256)"`
	RestoreHeight uint64 `json:"restoreHeight"`
}

type ImportLocalInput struct {
	Label         string `json:"label" valid:"required,stringlength(1|64)"`
	RestoreHeight uint64 `json:"restoreHeight"`
}

type Summary struct {
	Wallet         *Wallet        `json:"wallet"`
	Balance        *Balance       `json:"balance"`
	Transactions   []*Transaction `json:"transactions"`
	TotalInAtomic  string         `json:"totalInAtomic"`
	TotalOutAtomic string         `json:"totalOutAtomic"`
	TotalFeeAtomic string         `json:"totalFeeAtomic"`
}

type WalletStore interface {
	// Create assigns a fresh ID to wallet and stores it.
	Create(ctx context.Context, wallet *Wallet) error
	Find(ctx context.Context, id string) (*Wallet, error)
	List(ctx context.Context) ([]*Wallet, error)
}

type WalletService interface {
	Import(ctx context.Context, input ImportInput) (*Wallet, error)
	ImportLocal(ctx context.Context, input ImportLocalInput) (*Wallet, error)
	Find(ctx context.Context, id string) (*Wallet, error)
	Balance(ctx context.Context, id string) (*Balance, error)
	Transactions(ctx context.Context, id string, limit int) ([]*Transaction, error)
	Summary(ctx context.Context, id string, limit int) (*Summary, error)
}
