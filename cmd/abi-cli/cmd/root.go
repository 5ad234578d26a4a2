package cmd

import (
	"fmt"
	"os"

	"abicodec/cli"
	"abicodec/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "abi-cli",
	Short: "Encodes and decodes Ethereum contract ABI values.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.ConfigureLogging(cfg)
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, cli.DefaultHome, "Home directory for the CLI's configuration.")
	rootCmd.PersistentFlags().Bool(cli.FlagPacked, config.DefaultConfig.Codec.Packed, "Use the packed encoding.")
	rootCmd.PersistentFlags().Bool(cli.FlagLenientBool, config.DefaultConfig.Codec.LenientBool, "Coerce mismatched bool array elements instead of failing.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, config.DefaultConfig.Output.Format, "Output format. One of text, json, or auto.")
	rootCmd.PersistentFlags().String(cli.FlagLogLevel, config.DefaultConfig.LogLevel, "Log level.")
	rootCmd.PersistentFlags().Bool(cli.FlagLogJSON, config.DefaultConfig.LogJSON, "Write logs as JSON.")
}
