package main

import (
	"github.com/google/wire"
	"github.com/pandodao/watch-wallet/worker/prober"
	"github.com/spf13/viper"
)

var workerSet = wire.NewSet(
	provideProberConfig,
	prober.New,
)

func provideProberConfig(v *viper.Viper) prober.Config {
	v.SetDefault("prober.interval", "30s")

	return prober.Config{
		Interval: v.GetDuration("prober.interval"),
	}
}
