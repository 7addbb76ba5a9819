package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"multichain-send/internal/builder/bitcoin"
	"multichain-send/internal/multichain"
	"multichain-send/pkg/errno"
)

var validateTxCmd = &cobra.Command{
	Use:   "validate-tx",
	Short: "Validate a built wire transaction",
	Long: `Checks a wire transaction against the network's schema. The file may be
a build-tx output or the bare transaction JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		network, _ := cmd.Flags().GetString("network")
		inputFile, _ := cmd.Flags().GetString("file")

		data, err := os.ReadFile(inputFile)
		if err != nil {
			return err
		}
		raw := data
		var f draftFile
		if err := json.Unmarshal(data, &f); err == nil && len(f.Transaction) > 0 {
			raw = f.Transaction
		}

		n := multichain.Network(network)
		switch multichain.FamilyOf(n) {
		case multichain.FamilyBitcoin:
			var tx bitcoin.SendManyTransaction
			if err := json.Unmarshal(raw, &tx); err != nil {
				return errno.ErrInvalidTransaction.Wrap(err)
			}
			if err := bitcoin.Validate(tx, n); err != nil {
				return err
			}
		default:
			return errno.ErrUnsupportedNetwork.WithMessage("Unsupported network: %s", network)
		}

		fmt.Println("Transaction is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateTxCmd)

	validateTxCmd.Flags().String("network", string(multichain.Bitcoin), "CAIP-2 network id")
	validateTxCmd.Flags().StringP("file", "f", "draft.json", "Transaction or draft file")
}
