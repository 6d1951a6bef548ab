package main

import (
	"github.com/google/wire"
	"github.com/pandodao/watch-wallet/core"
	"github.com/pandodao/watch-wallet/store/db"
	"github.com/pandodao/watch-wallet/store/property"
	"github.com/pandodao/watch-wallet/store/wallet"
	"github.com/spf13/viper"
)

var storeSet = wire.NewSet(
	provideDB,
	provideWalletStore,
	providePropertyStore,
)

// provideDB returns a nil DB for the memory driver.
func provideDB(v *viper.Viper) (*db.DB, func(), error) {
	v.SetDefault("db.driver", db.DriverMemory)

	driver := v.GetString("db.driver")
	if driver == db.DriverMemory {
		return nil, func() {}, nil
	}

	dsn := v.GetString("db.dsn")
	for _, replica := range v.GetStringSlice("db.replicas") {
		dsn += ";" + replica
	}

	conn, err := db.Open(driver, dsn)
	if err != nil {
		return nil, nil, err
	}

	return conn, func() { _ = conn.Close() }, nil
}

func provideWalletStore(conn *db.DB) core.WalletStore {
	if conn == nil {
		return wallet.NewMemory()
	}

	return wallet.New(conn)
}

func providePropertyStore(conn *db.DB) core.PropertyStore {
	if conn == nil {
		return property.NewMemory()
	}

	return property.New(conn)
}
