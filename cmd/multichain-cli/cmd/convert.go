package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"multichain-send/pkg/units"
)

var convertCmd = &cobra.Command{
	Use:   "convert [to-base|to-display] <amount>",
	Short: "Convert an amount between display and base units",
	Example: `  multichain-cli convert to-base 0.01
  multichain-cli convert to-display 1000000`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		decimals, _ := cmd.Flags().GetInt32("decimals")

		var (
			out string
			err error
		)
		switch args[0] {
		case "to-base":
			out, err = units.ToBase(args[1], decimals)
		case "to-display":
			out, err = units.ToDisplay(args[1], decimals)
		default:
			return fmt.Errorf("unknown direction %q", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().Int32("decimals", 8, "Digits of the base unit")
}
