package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
	"github.com/pandodao/watch-wallet/core"
	"github.com/zyedidia/generic/cache"
)

type Config struct {
	QRSize      int `valid:"range(64|1024)"`
	QRCacheSize int `valid:"range(1|100000)"`
}

func New(
	wallets core.WalletService,
	chain core.ChainProvider,
	logger *slog.Logger,
	cfg Config,
) *Server {
	if cfg.QRSize == 0 {
		cfg.QRSize = 256
	}

	if cfg.QRCacheSize == 0 {
		cfg.QRCacheSize = 1024
	}

	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	return &Server{
		wallets: wallets,
		chain:   chain,
		logger:  logger.With("server", "api"),
		qrSize:  cfg.QRSize,
		qrCodes: cache.New[string, []byte](cfg.QRCacheSize),
	}
}

type Server struct {
	wallets core.WalletService
	chain   core.ChainProvider
	logger  *slog.Logger

	qrSize  int
	qrMux   sync.Mutex
	qrCodes *cache.Cache[string, []byte]
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/provider", s.handleProvider)

	r.Route("/wallets", func(r chi.Router) {
		r.Post("/", s.handleImport)
		r.Post("/local", s.handleImportLocal)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleFind)
			r.Get("/balance", s.handleBalance)
			r.Get("/transactions", s.handleTransactions)
			r.Get("/summary", s.handleSummary)
			r.Get("/qr", s.handleQRCode)
		})
	})

	return r
}
