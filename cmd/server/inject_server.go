package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/wire"
	"github.com/pandodao/watch-wallet/core"
	_ "github.com/pandodao/watch-wallet/docs"
	"github.com/pandodao/watch-wallet/handler/api"
	"github.com/pandodao/watch-wallet/handler/hc"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"
)

var serverSet = wire.NewSet(
	provideAPIConfig,
	api.New,
	provideServer,
)

func provideAPIConfig(v *viper.Viper) api.Config {
	v.SetDefault("api.qr_size", 256)
	v.SetDefault("api.qr_cache_size", 1024)

	return api.Config{
		QRSize:      v.GetInt("api.qr_size"),
		QRCacheSize: v.GetInt("api.qr_cache_size"),
	}
}

func provideServer(apiHandler *api.Server, properties core.PropertyStore) *http.Server {
	m := chi.NewMux()
	m.Use(middleware.RealIP)
	m.Use(middleware.Logger)
	m.Use(middleware.Recoverer)
	m.Use(cors.AllowAll().Handler)

	m.Mount("/api", apiHandler.Handler())
	m.Mount("/hc", hc.Handler(version, properties))
	m.Get("/swagger/*", httpSwagger.WrapHandler)

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", opt.port),
		Handler: m,
	}
}
