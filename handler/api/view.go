package api

import (
	"time"

	"github.com/pandodao/watch-wallet/core"
)

// Wallet is the outward shape of a wallet. It has no view key field.
type Wallet struct {
	ID            string          `json:"id"`
	Address       string          `json:"address"`
	Label         string          `json:"label,omitempty"`
	Mode          core.WalletMode `json:"mode"`
	RestoreHeight uint64          `json:"restoreHeight"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func viewWallet(w *core.Wallet) *Wallet {
	return &Wallet{
		ID:            w.ID,
		Address:       w.Address,
		Label:         w.Label,
		Mode:          w.Mode,
		RestoreHeight: w.RestoreHeight,
		CreatedAt:     w.CreatedAt,
	}
}

type Summary struct {
	Wallet         *Wallet             `json:"wallet"`
	Balance        *core.Balance       `json:"balance"`
	Transactions   []*core.Transaction `json:"transactions"`
	TotalInAtomic  string              `json:"totalInAtomic"`
	TotalOutAtomic string              `json:"totalOutAtomic"`
	TotalFeeAtomic string              `json:"totalFeeAtomic"`
}

func viewSummary(s *core.Summary) *Summary {
	return &Summary{
		Wallet:         viewWallet(s.Wallet),
		Balance:        s.Balance,
		Transactions:   s.Transactions,
		TotalInAtomic:  s.TotalInAtomic,
		TotalOutAtomic: s.TotalOutAtomic,
		TotalFeeAtomic: s.TotalFeeAtomic,
	}
}

type ImportRequest struct {
	Address       string `json:"address"`
	ViewKey       string `json:"viewKey,omitempty"`
	RestoreHeight uint64 `json:"restoreHeight,omitempty"`
}

type ImportLocalRequest struct {
	Label         string `json:"label"`
	RestoreHeight uint64 `json:"restoreHeight,omitempty"`
}

type ImportResponse struct {
	WalletID string `json:"walletId"`
}

type Provider struct {
	Name    string `json:"name"`
	Network string `json:"network"`
}
