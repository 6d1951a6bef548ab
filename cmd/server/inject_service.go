package main

import (
	"github.com/google/wire"
	"github.com/pandodao/watch-wallet/core"
	"github.com/pandodao/watch-wallet/service/chain"
	"github.com/pandodao/watch-wallet/service/chain/node"
	"github.com/pandodao/watch-wallet/service/wallet"
	"github.com/spf13/viper"
)

var serviceSet = wire.NewSet(
	provideChainConfig,
	chain.Resolve,
	wallet.New,
)

func provideChainConfig(v *viper.Viper) chain.Config {
	v.SetDefault("chain.provider", core.ProviderMock)
	v.SetDefault("chain.network", "mainnet")
	v.SetDefault("chain.node.timeout", "10s")

	return chain.Config{
		Provider: v.GetString("chain.provider"),
		Network:  v.GetString("chain.network"),
		Node: node.Config{
			URL:     v.GetString("chain.node.url"),
			Network: v.GetString("chain.node.network"),
			Timeout: v.GetDuration("chain.node.timeout"),
		},
	}
}
