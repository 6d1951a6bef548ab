package cmd

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pandodao/generic"
	"github.com/pandodao/watch-wallet/core"
	"github.com/pandodao/watch-wallet/handler/api"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var txLimit int

type balanceView struct {
	Network       string    `json:"network"`
	Balance       string    `json:"balance"`
	Unlocked      string    `json:"unlocked"`
	SyncedHeight  uint64    `json:"synced_height"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

func viewBalance(b *core.Balance) *balanceView {
	return &balanceView{
		Network:       b.Network,
		Balance:       core.FormatAtomic(b.BalanceAtomic),
		Unlocked:      core.FormatAtomic(b.UnlockedAtomic),
		SyncedHeight:  b.SyncedHeight,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

type txView struct {
	TxID          string           `json:"txid"`
	Direction     core.TxDirection `json:"direction"`
	Amount        string           `json:"amount"`
	Fee           string           `json:"fee,omitempty"`
	Height        uint64           `json:"height"`
	Confirmations uint64           `json:"confirmations"`
	Status        core.TxStatus    `json:"status"`
	Timestamp     time.Time        `json:"timestamp"`
}

func viewTx(tx *core.Transaction) *txView {
	v := &txView{
		TxID:          tx.TxID,
		Direction:     tx.Direction,
		Amount:        core.FormatAtomic(tx.AmountAtomic),
		Height:        tx.Height,
		Confirmations: tx.Confirmations,
		Status:        tx.Status,
		Timestamp:     tx.Timestamp,
	}

	if tx.FeeAtomic > 0 {
		v.Fee = core.FormatAtomic(tx.FeeAtomic)
	}

	return v
}

var balanceCmd = &cobra.Command{
	Use:   "balance <id>",
	Short: "show the balance of a wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var balance core.Balance
		r := newRequest(cmd.Context()).SetPathParam("id", args[0]).SetResult(&balance)
		if err := execute(r, http.MethodGet, "/wallets/{id}/balance"); err != nil {
			return err
		}

		return printJson(cmd, viewBalance(&balance))
	},
}

var txsCmd = &cobra.Command{
	Use:   "txs <id>",
	Short: "list recent transactions of a wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var txs []*core.Transaction
		r := newRequest(cmd.Context()).
			SetPathParam("id", args[0]).
			SetQueryParam("limit", strconv.Itoa(txLimit)).
			SetResult(&txs)
		if err := execute(r, http.MethodGet, "/wallets/{id}/transactions"); err != nil {
			return err
		}

		return printJson(cmd, generic.MapSlice(txs, viewTx))
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <id>",
	Short: "show wallet, balance and recent transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var summary api.Summary
		r := newRequest(cmd.Context()).
			SetPathParam("id", args[0]).
			SetQueryParam("limit", strconv.Itoa(txLimit)).
			SetResult(&summary)
		if err := execute(r, http.MethodGet, "/wallets/{id}/summary"); err != nil {
			return err
		}

		return printJson(cmd, map[string]any{
			"wallet":       summary.Wallet,
			"balance":      viewBalance(summary.Balance),
			"transactions": generic.MapSlice(summary.Transactions, viewTx),
			"total_in":     formatTotal(summary.TotalInAtomic),
			"total_out":    formatTotal(summary.TotalOutAtomic),
			"total_fee":    formatTotal(summary.TotalFeeAtomic),
		})
	},
}

func formatTotal(atomic string) string {
	d, err := decimal.NewFromString(atomic)
	if err != nil {
		return atomic
	}

	return d.Shift(-core.AtomicDecimals).StringFixed(core.AtomicDecimals)
}

func init() {
	rootCmd.AddCommand(balanceCmd, txsCmd, summaryCmd)

	txsCmd.Flags().IntVar(&txLimit, "limit", core.DefaultTxLimit, "number of transactions, clamped to [1, 50]")
	summaryCmd.Flags().IntVar(&txLimit, "limit", core.DefaultTxLimit, "number of transactions, clamped to [1, 50]")
}
