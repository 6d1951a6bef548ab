package wallet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/pandodao/watch-wallet/core"
	"github.com/pandodao/watch-wallet/store"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// maxRestoreHeight keeps restore heights representable in every store and
// as a JSON number.
const maxRestoreHeight = 1<<53 - 1

type service struct {
	wallets core.WalletStore
	chain   core.ChainProvider
	logger  *slog.Logger
	now     func() time.Time
}

func New(wallets core.WalletStore, chain core.ChainProvider, logger *slog.Logger) core.WalletService {
	return &service{
		wallets: wallets,
		chain:   chain,
		logger:  logger.With("service", "wallet"),
		now:     time.Now,
	}
}

func (s *service) Import(ctx context.Context, input core.ImportInput) (*core.Wallet, error) {
	if err := validate(input, input.RestoreHeight); err != nil {
		return nil, err
	}

	return s.create(ctx, &core.Wallet{
		Address:       input.Address,
		ViewKey:       input.ViewKey,
		Mode:          core.WalletModeViewKey,
		RestoreHeight: input.RestoreHeight,
	})
}

func (s *service) ImportLocal(ctx context.Context, input core.ImportLocalInput) (*core.Wallet, error) {
	if err := validate(input, input.RestoreHeight); err != nil {
		return nil, err
	}

	return s.create(ctx, &core.Wallet{
		Address:       "local:" + input.Label,
		Label:         input.Label,
		Mode:          core.WalletModeLocal,
		RestoreHeight: input.RestoreHeight,
	})
}

func (s *service) create(ctx context.Context, wallet *core.Wallet) (*core.Wallet, error) {
	wallet.CreatedAt = s.now().UTC().Truncate(time.Millisecond)

	if err := s.wallets.Create(ctx, wallet); err != nil {
		s.logger.Error("wallets.Create", "err", err)
		return nil, err
	}

	s.logger.Info("wallet registered", "id", wallet.ID, "mode", wallet.Mode, "restore_height", wallet.RestoreHeight)
	return wallet, nil
}

func (s *service) Find(ctx context.Context, id string) (*core.Wallet, error) {
	w, err := s.wallets.Find(ctx, id)
	if err != nil {
		if !store.IsErrNotFound(err) {
			s.logger.Error("wallets.Find", "id", id, "err", err)
		}

		return nil, err
	}

	return w, nil
}

func (s *service) Balance(ctx context.Context, id string) (*core.Balance, error) {
	w, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.balance(ctx, w)
}

func (s *service) balance(ctx context.Context, w *core.Wallet) (*core.Balance, error) {
	b, err := s.chain.GetBalance(ctx, w)
	if err != nil {
		s.logger.Error("chain.GetBalance", "id", w.ID, "err", err)
		return nil, s.providerError(err)
	}

	return b, nil
}

func (s *service) Transactions(ctx context.Context, id string, limit int) ([]*core.Transaction, error) {
	w, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.transactions(ctx, w, limit)
}

func (s *service) transactions(ctx context.Context, w *core.Wallet, limit int) ([]*core.Transaction, error) {
	txs, err := s.chain.GetTransactions(ctx, w, core.ClampTxLimit(limit))
	if err != nil {
		s.logger.Error("chain.GetTransactions", "id", w.ID, "err", err)
		return nil, s.providerError(err)
	}

	return txs, nil
}

func (s *service) Summary(ctx context.Context, id string, limit int) (*core.Summary, error) {
	w, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		balance *core.Balance
		txs     []*core.Transaction
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balance, err = s.balance(ctx, w)
		return err
	})

	g.Go(func() error {
		var err error
		txs, err = s.transactions(ctx, w, limit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var in, out, fee decimal.Decimal
	for _, tx := range txs {
		amount := core.AtomicDecimal(tx.AmountAtomic)
		if tx.Direction == core.TxDirectionOut {
			out = out.Add(amount)
		} else {
			in = in.Add(amount)
		}

		fee = fee.Add(core.AtomicDecimal(tx.FeeAtomic))
	}

	return &core.Summary{
		Wallet:         w,
		Balance:        balance,
		Transactions:   txs,
		TotalInAtomic:  in.String(),
		TotalOutAtomic: out.String(),
		TotalFeeAtomic: fee.String(),
	}, nil
}

func (s *service) providerError(err error) error {
	var pe *core.ProviderError
	if errors.As(err, &pe) {
		return pe
	}

	return core.NewProviderError(s.chain.Name(), err)
}

func validate(input any, restoreHeight uint64) error {
	if _, err := govalidator.ValidateStruct(input); err != nil {
		fields := govalidator.ErrorsByField(err)
		if len(fields) == 0 {
			return &core.ValidationError{Reason: err.Error()}
		}

		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		return &core.ValidationError{Field: names[0], Reason: fields[names[0]]}
	}

	if restoreHeight > maxRestoreHeight {
		return &core.ValidationError{
			Field:  "restoreHeight",
			Reason: fmt.Sprintf("must not exceed %d", uint64(maxRestoreHeight)),
		}
	}

	return nil
}
