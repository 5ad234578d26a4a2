package cmd

import (
	"os"

	"abicodec/cli"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:     "decode <type> <hex>...",
	Short:   "Decodes one or more hex inputs as the given ABI type.",
	Example: `  abi-cli decode 'uint8[]' 0x00000000000000000000000000000000000000000000000000000000000000010a --packed`,
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		typ, err := cli.NewRegistry(cfg).Parse(args[0])
		if err != nil {
			return err
		}

		inputs := make([][]byte, len(args)-1)
		for i, arg := range args[1:] {
			b, err := cli.ParseHex(arg)
			if err != nil {
				return errors.Wrapf(err, "input %d", i)
			}
			inputs[i] = b
		}

		results, err := cli.DecodeAll(typ, inputs, cfg.Codec.Packed)
		if err != nil {
			return err
		}
		return cli.WriteDecodeResults(os.Stdout, cfg.Output.Format, results)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
