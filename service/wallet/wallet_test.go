package wallet

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pandodao/watch-wallet/core"
	"github.com/pandodao/watch-wallet/service/chain/simulator"
	walletstore "github.com/pandodao/watch-wallet/store/wallet"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type failingProvider struct {
	err error
}

func (p *failingProvider) Name() string    { return core.ProviderReal }
func (p *failingProvider) Network() string { return "mainnet" }

func (p *failingProvider) Height(context.Context) (uint64, error) {
	return 0, p.err
}

func (p *failingProvider) GetBalance(context.Context, *core.Wallet) (*core.Balance, error) {
	return nil, p.err
}

func (p *failingProvider) GetTransactions(context.Context, *core.Wallet, int) ([]*core.Transaction, error) {
	return nil, p.err
}

func newTestService(chain core.ChainProvider) core.WalletService {
	return New(walletstore.NewMemory(), chain, discard)
}

func TestImportScenario(t *testing.T) {
	ctx := context.Background()
	s := newTestService(simulator.New("mainnet"))

	w, err := s.Import(ctx, core.ImportInput{
		Address:       strings.Repeat("a", 20),
		ViewKey:       strings.Repeat("b", 20),
		RestoreHeight: 100,
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if w.ID == "" || w.Mode != core.WalletModeViewKey {
		t.Fatalf("Import = %+v", w)
	}

	b, err := s.Balance(ctx, w.ID)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}

	if b.SyncedHeight < 100 {
		t.Errorf("SyncedHeight = %d, want >= 100", b.SyncedHeight)
	}

	if b.UnlockedAtomic > b.BalanceAtomic {
		t.Errorf("unlocked %d exceeds balance %d", b.UnlockedAtomic, b.BalanceAtomic)
	}
}

func TestRestoreHeightIsFloor(t *testing.T) {
	ctx := context.Background()
	s := newTestService(simulator.New("mainnet"))

	const restore = simulator.BaseHeight + simulator.HeightJitter + 1000
	w, err := s.ImportLocal(ctx, core.ImportLocalInput{Label: "cold storage", RestoreHeight: restore})
	if err != nil {
		t.Fatalf("ImportLocal: %v", err)
	}

	if w.Address != "local:cold storage" || w.ViewKey != "" || w.Mode != core.WalletModeLocal {
		t.Errorf("ImportLocal = %+v", w)
	}

	b, err := s.Balance(ctx, w.ID)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}

	if b.SyncedHeight != restore {
		t.Errorf("SyncedHeight = %d, want %d", b.SyncedHeight, restore)
	}
}

func TestImportValidation(t *testing.T) {
	s := newTestService(simulator.New("mainnet"))

	tests := []struct {
		name  string
		input core.ImportInput
		field string
	}{
		{"missing address", core.ImportInput{}, "address"},
		{"short address", core.ImportInput{Address: "abc"}, "address"},
		{"short view key", core.ImportInput{Address: strings.Repeat("a", 20), ViewKey: "short"}, "viewKey"},
		{"restore height overflow", core.ImportInput{Address: strings.Repeat("a", 20), RestoreHeight: 1 << 60}, "restoreHeight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Import(context.Background(), tt.input)

			var ve *core.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Import err = %v, want ValidationError", err)
			}

			if !strings.EqualFold(ve.Field, tt.field) {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}

	if _, err := s.ImportLocal(context.Background(), core.ImportLocalInput{}); err == nil {
		t.Error("ImportLocal accepted an empty label")
	}
}

func TestUnknownWallet(t *testing.T) {
	ctx := context.Background()
	s := newTestService(simulator.New("mainnet"))

	if _, err := s.Find(ctx, "missing"); !errors.Is(err, core.ErrWalletNotFound) {
		t.Errorf("Find err = %v", err)
	}

	if _, err := s.Balance(ctx, "missing"); !errors.Is(err, core.ErrWalletNotFound) {
		t.Errorf("Balance err = %v", err)
	}

	if _, err := s.Transactions(ctx, "missing", 10); !errors.Is(err, core.ErrWalletNotFound) {
		t.Errorf("Transactions err = %v", err)
	}

	if _, err := s.Summary(ctx, "missing", 10); !errors.Is(err, core.ErrWalletNotFound) {
		t.Errorf("Summary err = %v", err)
	}
}

func TestTransactionsLimitClamp(t *testing.T) {
	ctx := context.Background()
	s := newTestService(simulator.New("mainnet"))

	w, err := s.Import(ctx, core.ImportInput{Address: strings.Repeat("a", 20)})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	tests := []struct {
		limit int
		want  int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{10, 10},
		{50, 50},
		{51, 50},
		{1000, 50},
	}

	for _, tt := range tests {
		txs, err := s.Transactions(ctx, w.ID, tt.limit)
		if err != nil {
			t.Fatalf("Transactions(%d): %v", tt.limit, err)
		}

		if len(txs) != tt.want {
			t.Errorf("Transactions(%d) returned %d entries, want %d", tt.limit, len(txs), tt.want)
		}
	}
}

func TestSummaryTotals(t *testing.T) {
	ctx := context.Background()
	s := newTestService(simulator.New("mainnet"))

	w, err := s.Import(ctx, core.ImportInput{Address: strings.Repeat("c", 32)})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	sum, err := s.Summary(ctx, w.ID, 6)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if len(sum.Transactions) != 6 || sum.Balance == nil || sum.Wallet.ID != w.ID {
		t.Fatalf("Summary = %+v", sum)
	}

	var in, out, fee uint64
	for _, tx := range sum.Transactions {
		if tx.Direction == core.TxDirectionOut {
			out += tx.AmountAtomic
		} else {
			in += tx.AmountAtomic
		}
		fee += tx.FeeAtomic
	}

	for name, got := range map[string][2]string{
		"in":  {sum.TotalInAtomic, core.AtomicDecimal(in).String()},
		"out": {sum.TotalOutAtomic, core.AtomicDecimal(out).String()},
		"fee": {sum.TotalFeeAtomic, core.AtomicDecimal(fee).String()},
	} {
		if got[0] != got[1] {
			t.Errorf("total %s = %s, want %s", name, got[0], got[1])
		}
	}
}

func TestProviderFailure(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("connection refused")
	wallets := walletstore.NewMemory()
	s := New(wallets, &failingProvider{err: cause}, discard)

	w, err := s.Import(ctx, core.ImportInput{Address: strings.Repeat("a", 20)})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	_, err = s.Balance(ctx, w.ID)

	var pe *core.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("Balance err = %v, want ProviderError", err)
	}

	if pe.Provider != core.ProviderReal || !errors.Is(err, cause) {
		t.Errorf("ProviderError = %+v", pe)
	}

	if _, err := s.Summary(ctx, w.ID, 10); !errors.As(err, &pe) {
		t.Errorf("Summary err = %v, want ProviderError", err)
	}

	// the registry is left untouched
	list, err := wallets.List(ctx)
	if err != nil || len(list) != 1 {
		t.Errorf("List = %d wallets, %v", len(list), err)
	}
}
