/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"net/http"

	"github.com/pandodao/watch-wallet/handler/api"
	"github.com/spf13/cobra"
)

var walletOpt struct {
	api.ImportRequest
	label string
}

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "register and inspect watch-only wallets",
}

var walletImportCmd = &cobra.Command{
	Use:   "import",
	Short: "register a wallet by address and view key",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp api.ImportResponse
		r := newRequest(cmd.Context()).SetBody(&walletOpt.ImportRequest).SetResult(&resp)
		if err := execute(r, http.MethodPost, "/wallets"); err != nil {
			return err
		}

		return printJson(cmd, resp)
	},
}

var walletLocalCmd = &cobra.Command{
	Use:   "local",
	Short: "register a wallet restored from a local recovery phrase",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := api.ImportLocalRequest{
			Label:         walletOpt.label,
			RestoreHeight: walletOpt.RestoreHeight,
		}

		var resp api.ImportResponse
		r := newRequest(cmd.Context()).SetBody(&req).SetResult(&resp)
		if err := execute(r, http.MethodPost, "/wallets/local"); err != nil {
			return err
		}

		return printJson(cmd, resp)
	},
}

var walletShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "show a registered wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var wallet api.Wallet
		r := newRequest(cmd.Context()).SetPathParam("id", args[0]).SetResult(&wallet)
		if err := execute(r, http.MethodGet, "/wallets/{id}"); err != nil {
			return err
		}

		return printJson(cmd, wallet)
	},
}

func init() {
	rootCmd.AddCommand(walletCmd)
	walletCmd.AddCommand(walletImportCmd, walletLocalCmd, walletShowCmd)

	walletImportCmd.Flags().StringVar(&walletOpt.Address, "address", "", "wallet address")
	walletImportCmd.Flags().StringVar(&walletOpt.ViewKey, "view-key", "", "private view key (optional)")
	walletImportCmd.Flags().Uint64Var(&walletOpt.RestoreHeight, "restore-height", 0, "restore height")

	walletLocalCmd.Flags().StringVar(&walletOpt.label, "label", "", "label")
	walletLocalCmd.Flags().Uint64Var(&walletOpt.RestoreHeight, "restore-height", 0, "restore height")
}
