package cmds

import (
	"time"

	"github.com/pandodao/watch-wallet/core"
)

// Wallet is the exported form of a registered wallet. View keys never
// leave the store.
type Wallet struct {
	ID            string          `json:"id"`
	Address       string          `json:"address"`
	Label         string          `json:"label,omitempty"`
	Mode          core.WalletMode `json:"mode"`
	RestoreHeight uint64          `json:"restore_height"`
	CreatedAt     time.Time       `json:"created_at"`
}

func exportWallet(wallet *core.Wallet) *Wallet {
	return &Wallet{
		ID:            wallet.ID,
		Address:       wallet.Address,
		Label:         wallet.Label,
		Mode:          wallet.Mode,
		RestoreHeight: wallet.RestoreHeight,
		CreatedAt:     wallet.CreatedAt,
	}
}
