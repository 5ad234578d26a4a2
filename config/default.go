package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"abicodec/abi"
	"abicodec/log"

	"github.com/pkg/errors"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatAuto = "auto"
)

const ConfigFilename = "config.toml"

var DefaultConfig = Config{
	LogLevel: log.LevelWarn.String(),
	LogJSON:  false,
	Codec: CodecConfig{
		Packed:      false,
		LenientBool: false,
		MaxArrayLen: abi.DefaultMaxArrayLen,
	},
	Output: OutputConfig{
		Format: FormatAuto,
	},
}

const defaultConfigTemplateText = `# abi-cli Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"
# Writes log lines to stderr as JSON objects instead of text.
log_json = {{.LogJSON}}

# Configures how values are encoded and decoded.
[codec]
  # Uses the packed encoding, which omits word padding.
  packed = {{.Codec.Packed}}
  # Restores legacy bool array decoding. Mismatched elements placed into
  # bool arrays are coerced, and undecodable ones silently become false.
  lenient_bool = {{.Codec.LenientBool}}
  # Sets the maximum array length that will be decoded.
  max_array_len = {{.Codec.MaxArrayLen}}

# Configures how results are printed.
[output]
  # Can be one of text, json, or auto. auto prints a table when
  # stdout is a terminal and JSON otherwise.
  format = "{{.Output.Format}}"
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFilename), os.O_RDONLY, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFilename), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
