package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"multichain-send/internal/builder"
	"multichain-send/pkg/config"
	"multichain-send/pkg/errno"
)

var sendTxCmd = &cobra.Command{
	Use:   "send-tx",
	Short: "Record a transaction id for a built draft",
	Long: `Hands the id returned by the wallet service to the network's builder,
which completes the draft and publishes a transaction_submitted event when an
events driver is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, _ := cmd.Flags().GetString("file")
		txID, _ := cmd.Flags().GetString("tx-id")

		f, err := readDraftFile(inputFile)
		if err != nil {
			return err
		}
		if f.Draft == nil {
			return errno.ErrBind.WithMessage("%s holds no draft", inputFile)
		}

		ctx := cmd.Context()
		cfg := config.Global
		d, err := newDeps(ctx, cfg)
		if err != nil {
			return err
		}
		defer d.close()

		p := f.Draft.TransactionParams
		b, err := builder.GetBuilder(p.Network.Network, p.Sender, p, d.options(cfg)...)
		if err != nil {
			return err
		}

		id, err := b.SendTransaction(ctx, txID)
		if err != nil {
			return err
		}

		f.Draft.Stage = b.Stage()
		if err := writeJSON(inputFile, f); err != nil {
			return err
		}
		fmt.Printf("Transaction %s recorded, draft %s is %s\n", id, f.Draft.ID, f.Draft.Stage)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendTxCmd)

	sendTxCmd.Flags().StringP("file", "f", "draft.json", "Draft written by build-tx")
	sendTxCmd.Flags().String("tx-id", "", "Transaction id returned by the wallet service")

	sendTxCmd.MarkFlagRequired("tx-id")
}
