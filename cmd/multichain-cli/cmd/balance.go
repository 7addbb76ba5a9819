package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"multichain-send/internal/draft"
	"multichain-send/internal/multichain"
	"multichain-send/pkg/config"
	"multichain-send/pkg/errno"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Read or seed the cached native balance of an account",
	Long: `Without --set prints the cached balance. With --set stores it, which is
only useful with the redis or multi cache driver since the memory cache lives
for one command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		network, _ := cmd.Flags().GetString("network")
		accountID, _ := cmd.Flags().GetString("account")
		set, _ := cmd.Flags().GetString("set")

		n := multichain.Network(network)
		native, ok := multichain.NativeAssetOf(n)
		if !ok {
			return errno.ErrUnsupportedNetwork.WithMessage("Unsupported network: %s", network)
		}

		ctx := cmd.Context()
		d, err := newDeps(ctx, config.Global)
		if err != nil {
			return err
		}
		defer d.close()

		if set != "" {
			if err := d.balances.Store(ctx, accountID, string(native), draft.AssetBalance{Amount: set, Unit: multichain.Symbol(n)}); err != nil {
				return err
			}
		}

		b, err := d.balances.Balance(ctx, accountID, string(native))
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", b.Amount, multichain.Symbol(n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)

	balanceCmd.Flags().String("network", string(multichain.Bitcoin), "CAIP-2 network id")
	balanceCmd.Flags().String("account", "cli", "Account id")
	balanceCmd.Flags().String("set", "", "Balance to store, in display units")
}
