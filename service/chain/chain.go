package chain

import (
	"log/slog"
	"strings"

	"github.com/pandodao/watch-wallet/core"
	"github.com/pandodao/watch-wallet/service/chain/node"
	"github.com/pandodao/watch-wallet/service/chain/simulator"
	"github.com/zyedidia/generic/mapset"
)

type Config struct {
	Provider string
	Network  string
	Node     node.Config
}

var providers = mapset.New[string]()

func init() {
	providers.Put(core.ProviderMock)
	providers.Put(core.ProviderReal)
}

// Resolve binds the one provider used for the lifetime of the process.
// Unknown names fall back to the simulator.
func Resolve(cfg Config, logger *slog.Logger) core.ChainProvider {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if !providers.Has(name) {
		if name != "" {
			logger.Warn("unknown chain provider, using simulator", "provider", cfg.Provider)
		}

		name = core.ProviderMock
	}

	logger.Info("chain provider resolved", "provider", name, "network", cfg.Network)

	switch name {
	case core.ProviderReal:
		nodeCfg := cfg.Node
		if nodeCfg.Network == "" {
			nodeCfg.Network = cfg.Network
		}

		return node.New(nodeCfg, logger)
	default:
		return simulator.New(cfg.Network)
	}
}
