package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"multichain-send/internal/builder"
	"multichain-send/internal/builder/bitcoin"
	"multichain-send/internal/draft"
	"multichain-send/internal/multichain"
	"multichain-send/pkg/config"
	"multichain-send/pkg/errno"
	"multichain-send/pkg/logger"
	"multichain-send/pkg/units"
)

// draftFile is what build-tx writes and validate-tx/send-tx read.
type draftFile struct {
	Draft       *draft.Draft    `json:"draft"`
	Transaction json.RawMessage `json:"transaction,omitempty"`
	Valid       bool            `json:"valid"`
}

var buildTxCmd = &cobra.Command{
	Use:   "build-tx",
	Short: "Draft and build an unsigned transaction",
	Long: `Runs the draft through the network's builder: selects the native asset,
validates the recipient and amount, builds the wire transaction and validates
it. The draft and the transaction are written as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		network, _ := cmd.Flags().GetString("network")
		accountID, _ := cmd.Flags().GetString("account")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		amount, _ := cmd.Flags().GetString("amount")
		fee, _ := cmd.Flags().GetString("fee")
		level, _ := cmd.Flags().GetString("fee-level")
		cached, _ := cmd.Flags().GetString("balance")
		outputFile, _ := cmd.Flags().GetString("output")

		ctx := cmd.Context()
		cfg := config.Global

		d, err := newDeps(ctx, cfg)
		if err != nil {
			return err
		}
		defer d.close()

		n := multichain.Network(network)
		if cached != "" {
			native, ok := multichain.NativeAssetOf(n)
			if !ok {
				return errno.ErrUnsupportedNetwork.WithMessage("Unsupported network: %s", network)
			}
			if err := d.balances.Store(ctx, accountID, string(native), draft.AssetBalance{Amount: cached, Unit: multichain.Symbol(n)}); err != nil {
				return err
			}
		}

		if level == "" {
			level = cfg.Fee.DefaultLevel
		}
		feeLevel, ok := draft.ParseFeeLevel(level)
		if !ok {
			return errno.ErrInvalidFee.WithMessage("Invalid fee level: %s", level)
		}

		params := draft.NewTransactionParams()
		params.Fee.FeeLevel = feeLevel
		if fee != "" {
			sats, err := units.ParseBase(fee)
			if err != nil || sats.IsNegative() {
				return errno.ErrInvalidFee.WithMessage("Invalid fee: %s", fee)
			}
			params.Fee = draft.FeeField{
				Fee:              sats.String(),
				Unit:             bitcoin.FeeUnit,
				FeeLevel:         feeLevel,
				ConfirmationTime: cfg.Fee.ConfirmationTime,
				Valid:            true,
			}
		}

		b, err := builder.GetBuilder(n, draft.SenderField{ID: accountID, Address: from}, params, d.options(cfg)...)
		if err != nil {
			return err
		}

		b.SetSendAsset(ctx)
		if r := b.SetRecipient(to); !r.Valid {
			logger.Warn("recipient rejected", zap.String("address", to), zap.String("error", r.Error))
		}
		if a := b.SetAmount(amount); !a.Valid {
			logger.Warn("amount rejected", zap.String("amount", amount), zap.String("error", a.Error))
		}

		if err := b.BuildTransaction(); err != nil {
			return err
		}

		dr := draft.New(b.TransactionParams())
		dr.TransactionParams.SendAsset = draft.ValidateAmount(dr.TransactionParams)
		draft.ValidateChecks(dr)

		txJSON, err := json.Marshal(b.Transaction())
		if err != nil {
			return err
		}
		out := draftFile{Draft: dr, Transaction: txJSON, Valid: b.ValidateTransaction()}

		if err := writeJSON(outputFile, out); err != nil {
			return err
		}

		fmt.Printf("Transaction built: %s (draft valid: %t, transaction valid: %t)\n", outputFile, dr.Valid, out.Valid)
		if e := dr.TransactionParams.SendAsset.Error; e != "" {
			fmt.Printf("Amount: %s\n", e)
		}
		return nil
	},
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func readDraftFile(path string) (draftFile, error) {
	var f draftFile
	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

func init() {
	rootCmd.AddCommand(buildTxCmd)

	buildTxCmd.Flags().String("network", string(multichain.Bitcoin), "CAIP-2 network id")
	buildTxCmd.Flags().String("account", "cli", "Sender account id")
	buildTxCmd.Flags().String("from", "", "Sender address")
	buildTxCmd.Flags().String("to", "", "Recipient address")
	buildTxCmd.Flags().String("amount", "", "Amount in base units (satoshis)")
	buildTxCmd.Flags().String("fee", "", "Known fee in base units; skips the fee check when empty")
	buildTxCmd.Flags().String("fee-level", "", "slow, average or fast (default from config)")
	buildTxCmd.Flags().String("balance", "", "Cached balance in display units (e.g. 0.5)")
	buildTxCmd.Flags().StringP("output", "o", "draft.json", "Output file")

	buildTxCmd.MarkFlagRequired("to")
	buildTxCmd.MarkFlagRequired("amount")
}
