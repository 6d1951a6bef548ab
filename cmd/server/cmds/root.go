package cmds

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pandodao/generic"
	"github.com/pandodao/watch-wallet/core"
	"github.com/spf13/cobra"
)

type Cmd struct {
	Wallets core.WalletStore
	Chain   core.ChainProvider
}

func (c *Cmd) Run(ctx context.Context, args []string) error {
	root := &cobra.Command{
		Use:   "watch-wallet",
		Short: "watch-wallet maintenance commands",
	}

	root.AddCommand(c.exportAllWalletsCmd())
	root.AddCommand(c.exportWalletCmd())
	root.AddCommand(c.heightCmd())

	root.SetArgs(args)
	root.SetOut(os.Stdout)

	return root.ExecuteContext(ctx)
}

func (c *Cmd) exportAllWalletsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-wallets",
		Short: "export all registered wallets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wallets, err := c.Wallets.List(ctx)
			if err != nil {
				return err
			}

			return jsonPrint(cmd, generic.MapSlice(wallets, exportWallet))
		},
	}
}

func (c *Cmd) exportWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-wallet",
		Short: "export a registered wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wallet, err := c.Wallets.Find(ctx, args[0])
			if err != nil {
				return err
			}

			return jsonPrint(cmd, exportWallet(wallet))
		},
	}
}

func (c *Cmd) heightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "height",
		Short: "print the tip height reported by the chain provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := c.Chain.Height(cmd.Context())
			if err != nil {
				return err
			}

			return jsonPrint(cmd, map[string]any{
				"provider": c.Chain.Name(),
				"network":  c.Chain.Network(),
				"height":   height,
			})
		},
	}
}

func jsonPrint(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
