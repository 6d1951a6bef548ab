package simulator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/pandodao/watch-wallet/core"
)

const (
	BaseHeight   = 3_100_000
	HeightJitter = 5_000

	// tipOffset is how far the simulated tip runs ahead of the tx base height.
	tipOffset = 12

	unlockedBase  = 250_000_000_000
	unlockedRange = 9_750_000_000_000
	pendingBase   = 10_000_000_000
	pendingRange  = 90_000_000_000

	inBase   = 1_000_000_000
	inRange  = 2_000_000_000_000
	outBase  = 500_000_000
	outRange = 1_000_000_000_000
	feeBase  = 30_000_000
	feeRange = 50_000_000

	createdAtLayout = "2006-01-02T15:04:05.000Z07:00"
)

type Option func(*Provider)

func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

func New(network string, opts ...Option) *Provider {
	p := &Provider{
		network: network,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Provider produces believable wallet state from the wallet identity alone.
// It never touches the network and never fails.
type Provider struct {
	network string
	now     func() time.Time
}

func (p *Provider) Name() string {
	return core.ProviderMock
}

func (p *Provider) Network() string {
	return p.network
}

func (p *Provider) Height(_ context.Context) (uint64, error) {
	return BaseHeight + HeightJitter + tipOffset, nil
}

func (p *Provider) GetBalance(_ context.Context, wallet *core.Wallet) (*core.Balance, error) {
	seed := uint64(seedOf(wallet.ID, wallet.Address, wallet.CreatedAt.UTC().Format(createdAtLayout)))

	unlocked := unlockedBase + seed%unlockedRange
	var pending uint64
	if seed%2 == 0 {
		pending = pendingBase + seed%pendingRange
	}

	return &core.Balance{
		Network:        p.network,
		BalanceAtomic:  unlocked + pending,
		UnlockedAtomic: unlocked,
		SyncedHeight:   syncedHeight(wallet.RestoreHeight, seed),
		LastUpdatedAt:  p.now().UTC(),
	}, nil
}

func (p *Provider) GetTransactions(_ context.Context, wallet *core.Wallet, limit int) ([]*core.Transaction, error) {
	seed := seedOf(wallet.ID, wallet.Address, "txs")
	tip := syncedHeight(wallet.RestoreHeight, uint64(seed)) + tipOffset
	seedStr := strconv.FormatUint(uint64(seed), 10)

	var (
		n      = core.ClampTxLimit(limit)
		txs    = make([]*core.Transaction, 0, n)
		height = tip
		ts     = p.now().UTC()
	)

	for i := 0; i < n; i++ {
		idx := strconv.Itoa(i)
		es := uint64(seedOf(wallet.ID, idx, seedStr))

		if i == 0 {
			height -= es % 15
		} else {
			height -= 1 + es%720
		}

		ts = ts.Add(-time.Duration(1+es%36) * time.Hour)

		tx := &core.Transaction{
			TxID:          txID(wallet.ID, idx, seedStr),
			Direction:     core.TxDirectionIn,
			AmountAtomic:  inBase + es%inRange,
			Height:        height,
			Confirmations: tip - height,
			Timestamp:     ts.Truncate(time.Second),
		}

		if i%3 == 0 {
			tx.Direction = core.TxDirectionOut
			tx.AmountAtomic = outBase + es%outRange
			tx.FeeAtomic = feeBase + es%feeRange
		}

		tx.Status = core.TxStatusOf(tx.Confirmations)
		txs = append(txs, tx)
	}

	return txs, nil
}

func syncedHeight(restoreHeight, seed uint64) uint64 {
	return max(restoreHeight, BaseHeight+seed%HeightJitter)
}

func txID(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
