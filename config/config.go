package config

import (
	"io"

	"abicodec/abi"
	"abicodec/log"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	LogJSON  bool         `mapstructure:"log_json"`
	Codec    CodecConfig  `mapstructure:"codec"`
	Output   OutputConfig `mapstructure:"output"`
}

type CodecConfig struct {
	Packed      bool `mapstructure:"packed"`
	LenientBool bool `mapstructure:"lenient_bool"`
	MaxArrayLen int  `mapstructure:"max_array_len"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// ArrayConfig returns the array decoding settings described by the codec
// section.
func (c CodecConfig) ArrayConfig() abi.ArrayConfig {
	return abi.ArrayConfig{
		MaxLen:      c.MaxArrayLen,
		LenientBool: c.LenientBool,
	}
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return config, nil
}

// applyDefaults fills in settings omitted from a partial config file.
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultConfig.LogLevel
	}
	if c.Codec.MaxArrayLen == 0 {
		c.Codec.MaxArrayLen = DefaultConfig.Codec.MaxArrayLen
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultConfig.Output.Format
	}
}

func (c *Config) Validate() error {
	if _, err := log.NewLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Codec.MaxArrayLen < 0 {
		return errors.New("codec.max_array_len cannot be negative")
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatAuto:
	default:
		return errors.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}
