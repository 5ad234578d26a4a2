package cli

import (
	"abicodec/abi"
	"abicodec/config"
	"abicodec/log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// LoadConfig reads the config file from the home directory and applies
// any explicitly set flags on top of it.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(GetHomeDir(cmd))
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(FlagPacked) {
		cfg.Codec.Packed, _ = flags.GetBool(FlagPacked)
	}
	if flags.Changed(FlagLenientBool) {
		cfg.Codec.LenientBool, _ = flags.GetBool(FlagLenientBool)
	}
	if flags.Changed(FlagFormat) {
		cfg.Output.Format, _ = flags.GetString(FlagFormat)
	}
	if flags.Changed(FlagLogLevel) {
		cfg.LogLevel, _ = flags.GetString(FlagLogLevel)
	}
	if flags.Changed(FlagLogJSON) {
		cfg.LogJSON, _ = flags.GetBool(FlagLogJSON)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}
	return cfg, nil
}

func ConfigureLogging(cfg *config.Config) error {
	level, err := log.NewLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetJSON(cfg.LogJSON)
	return nil
}

func NewRegistry(cfg *config.Config) *abi.Registry {
	return abi.NewRegistry(cfg.Codec.ArrayConfig())
}

type DecodeResult struct {
	Index    int         `json:"index"`
	Value    interface{} `json:"value"`
	Consumed int         `json:"consumed"`
	Trailing int         `json:"trailing"`
}

// DecodeAll decodes each input independently and in parallel with the
// same handler. The first error aborts the batch.
func DecodeAll(typ abi.Type, inputs [][]byte, packed bool) ([]*DecodeResult, error) {
	lgr := log.WithModule("cli-decode")
	results := make([]*DecodeResult, len(inputs))
	var g errgroup.Group
	for i, input := range inputs {
		i := i
		input := input
		g.Go(func() error {
			val, pos, err := typ.Decode(input, 0, packed)
			if err != nil {
				return errors.Wrapf(err, "failed to decode input %d", i)
			}
			if pos < len(input) {
				lgr.Warn("input has trailing bytes", "index", i, "trailing", len(input)-pos)
			}
			results[i] = &DecodeResult{
				Index:    i,
				Value:    val,
				Consumed: pos,
				Trailing: len(input) - pos,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
