package cmd

import (
	"os"

	"abicodec/cli"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Lists the elementary type names.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.WriteTypeNames(os.Stdout, cfg.Output.Format, cli.NewRegistry(cfg).Names())
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
