package core

import (
	"context"
	"time"
)

const (
	ProviderMock = "mock"
	ProviderReal = "real"
)

const (
	DefaultTxLimit = 10
	MaxTxLimit     = 50

	// ConfirmationThreshold is the number of confirmations after which a
	// transaction is reported as confirmed.
	ConfirmationThreshold = 10
)

type TxDirection string

const (
	TxDirectionIn  TxDirection = "in"
	TxDirectionOut TxDirection = "out"
)

type TxStatus string

const (
	TxStatusPending   TxStatus = "pending"
	TxStatusConfirmed TxStatus = "confirmed"
)

// Balance is derived on every query and never cached. Atomic amounts are
// rendered as decimal integer strings.
type Balance struct {
	Network        string    `json:"network"`
	BalanceAtomic  uint64    `json:"balanceAtomic,string"`
	UnlockedAtomic uint64    `json:"unlockedAtomic,string"`
	SyncedHeight   uint64    `json:"syncedHeight"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

type Transaction struct {
	TxID          string      `json:"txid"`
	Direction     TxDirection `json:"direction"`
	AmountAtomic  uint64      `json:"amountAtomic,string"`
	FeeAtomic     uint64      `json:"feeAtomic,string"`
	Height        uint64      `json:"height"`
	Confirmations uint64      `json:"confirmations"`
	Timestamp     time.Time   `json:"timestamp"`
	Status        TxStatus    `json:"status"`
}

// ClampTxLimit bounds limit into [1, MaxTxLimit].
func ClampTxLimit(limit int) int {
	return min(max(limit, 1), MaxTxLimit)
}

// TxStatusOf returns the status for the given confirmation count.
func TxStatusOf(confirmations uint64) TxStatus {
	if confirmations >= ConfirmationThreshold {
		return TxStatusConfirmed
	}

	return TxStatusPending
}

type ProviderStatus struct {
	Provider  string    `json:"provider"`
	Network   string    `json:"network"`
	Height    uint64    `json:"height,omitempty"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// ChainProvider is the read-only source of wallet chain state. Exactly one
// implementation is bound per process.
type ChainProvider interface {
	Name() string
	Network() string
	Height(ctx context.Context) (uint64, error)
	GetBalance(ctx context.Context, wallet *Wallet) (*Balance, error)
	GetTransactions(ctx context.Context, wallet *Wallet, limit int) ([]*Transaction, error)
}
