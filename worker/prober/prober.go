package prober

import (
	"context"
	"log/slog"
	"time"

	"github.com/pandodao/watch-wallet/core"
)

const defaultInterval = 30 * time.Second

type Config struct {
	Interval time.Duration
}

func New(
	chain core.ChainProvider,
	properties core.PropertyStore,
	logger *slog.Logger,
	cfg Config,
) *Prober {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}

	return &Prober{
		chain:      chain,
		properties: properties,
		logger:     logger.With("worker", "prober"),
		interval:   cfg.Interval,
		now:        time.Now,
	}
}

// Prober records the reachability and tip height of the chain provider.
type Prober struct {
	chain      core.ChainProvider
	properties core.PropertyStore
	logger     *slog.Logger
	interval   time.Duration
	now        func() time.Time
}

func (w *Prober) Run(ctx context.Context) error {
	w.logger.Info("prober start", "interval", w.interval)

	for {
		_ = w.run(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.interval):
		}
	}
}

func (w *Prober) run(ctx context.Context) error {
	status := core.ProviderStatus{
		Provider: w.chain.Name(),
		Network:  w.chain.Network(),
	}

	height, err := w.chain.Height(ctx)
	if err != nil {
		w.logger.Error("chain.Height", "err", err)
		status.Error = err.Error()
	} else {
		status.Height = height
	}

	status.CheckedAt = w.now().UTC()

	if err := w.properties.Set(ctx, core.PropertyProviderStatus, status); err != nil {
		w.logger.Error("properties.Set", "err", err)
		return err
	}

	return nil
}
