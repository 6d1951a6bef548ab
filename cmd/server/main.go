package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/carlmjohnson/versioninfo"
	"github.com/joho/godotenv"
	"github.com/pandodao/watch-wallet/cmd/server/cmds"
	"github.com/pandodao/watch-wallet/worker/prober"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

var (
	opt struct {
		config string
		port   int
		debug  bool
	}

	version = "0.0.1-src"
	commit  = versioninfo.Short()
)

func main() {
	flag.StringVar(&opt.config, "config", "config.yaml", "config file path")
	flag.IntVar(&opt.port, "port", 8080, "server port")
	flag.BoolVar(&opt.debug, "debug", false, "debug mode")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_ = godotenv.Load()

	v := initViper()
	logger := initLogger()

	app, cleanup, err := setupApp(v, logger)
	if err != nil {
		logger.Error("setup failed", "err", err)
		return
	}

	defer cleanup()

	if args := flag.Args(); len(args) > 0 {
		if err := app.cmd.Run(ctx, args); err != nil {
			os.Exit(1)
		}

		return
	}

	logger.Info("watch wallet server launched", "version", version, "commit", commit, "addr", app.svr.Addr)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := app.svr.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		return app.prober.Run(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		return app.svr.Shutdown(context.WithoutCancel(ctx))
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server exit", "err", err)
	}
}

type app struct {
	svr    *http.Server
	prober *prober.Prober
	cmd    *cmds.Cmd
	logger *slog.Logger
}

func initLogger() *slog.Logger {
	level := slog.LevelInfo
	if opt.debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

func initViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(opt.config)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("WATCHWALLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Panicln(err)
	}

	return v
}
