package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pandodao/watch-wallet/core"
	"github.com/pandodao/watch-wallet/service/vault"
	"github.com/pandodao/watch-wallet/store/db"
	"github.com/pandodao/watch-wallet/store/property"
	"github.com/spf13/cobra"
)

// vaultConfig is read from WATCHWALLET_VAULT_* environment variables.
type vaultConfig struct {
	Path       string `envconfig:"VAULT_PATH" default:"watchwallet-vault.db"`
	Iterations int    `envconfig:"VAULT_ITERATIONS" default:"120000"`
}

func openVault() (core.VaultService, func(), error) {
	var cfg vaultConfig
	if err := envconfig.Process("WATCHWALLET", &cfg); err != nil {
		return nil, nil, err
	}

	conn, err := db.Open(db.DriverSQLite, cfg.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open vault %s: %w", cfg.Path, err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	vaultz := vault.New(property.New(conn), logger, vault.Config{Iterations: cfg.Iterations})
	return vaultz, func() { _ = conn.Close() }, nil
}

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "manage the local password protected secret vault",
}

var vaultInitCmd = &cobra.Command{
	Use:   "init",
	Short: "encrypt a secret into a new vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultz, closeFn, err := openVault()
		if err != nil {
			return err
		}
		defer closeFn()

		secret, err := readSecret(cmd, "secret: ")
		if err != nil {
			return err
		}

		password, err := readSecret(cmd, "password: ")
		if err != nil {
			return err
		}

		confirm, err := readSecret(cmd, "confirm password: ")
		if err != nil {
			return err
		}

		if password != confirm {
			return errors.New("passwords do not match")
		}

		if err := vaultz.Create(cmd.Context(), secret, password); err != nil {
			return err
		}

		cmd.Println("vault initialized")
		return nil
	},
}

var vaultVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "check a password against the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultz, closeFn, err := openVault()
		if err != nil {
			return err
		}
		defer closeFn()

		password, err := readSecret(cmd, "password: ")
		if err != nil {
			return err
		}

		ok, err := vaultz.Verify(cmd.Context(), password)
		if err != nil {
			return err
		}

		if !ok {
			return core.ErrAuthentication
		}

		cmd.Println("password ok")
		return nil
	},
}

var vaultUnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "decrypt and print the vault secret",
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultz, closeFn, err := openVault()
		if err != nil {
			return err
		}
		defer closeFn()

		password, err := readSecret(cmd, "password: ")
		if err != nil {
			return err
		}

		secret, err := vaultz.Unlock(cmd.Context(), password)
		if err != nil {
			return err
		}

		cmd.Println(secret)
		return nil
	},
}

var vaultStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "show whether the vault holds a secret",
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultz, closeFn, err := openVault()
		if err != nil {
			return err
		}
		defer closeFn()

		status, err := vaultz.Status(cmd.Context())
		if err != nil {
			return err
		}

		return printJson(cmd, status)
	},
}

func init() {
	rootCmd.AddCommand(vaultCmd)
	vaultCmd.AddCommand(vaultInitCmd, vaultVerifyCmd, vaultUnlockCmd, vaultStatusCmd)
}
