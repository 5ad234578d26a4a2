package cmd

import (
	"encoding/hex"
	"fmt"

	"abicodec/cli"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:     "encode <type> <json-value>",
	Short:   "Encodes a JSON value as the given ABI type.",
	Example: "  abi-cli encode 'uint256[][]' '[[1,2],[3]]'\n  abi-cli encode --packed 'bool[]' '[true,false]'",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		typ, err := cli.NewRegistry(cfg).Parse(args[0])
		if err != nil {
			return err
		}
		val, err := cli.ParseJSON(typ, args[1])
		if err != nil {
			return err
		}
		enc, err := typ.Encode(val, cfg.Codec.Packed)
		if err != nil {
			return err
		}
		fmt.Println("0x" + hex.EncodeToString(enc))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
