package config

import (
	"os"

	"github.com/pkg/errors"
)

func HomeDirExists(path string) (bool, error) {
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	if !stat.IsDir() {
		return false, errors.New("home dir path exists, but is a file")
	}

	return true, nil
}

func InitHomeDir(homePath string) error {
	if err := os.MkdirAll(homePath, 0700); err != nil {
		return errors.Wrap(err, "error creating home directory")
	}
	return WriteDefaultConfigFile(homePath)
}

// LoadConfig reads the config file in homePath, falling back to
// DefaultConfig when the home directory or the file does not exist.
func LoadConfig(homePath string) (*Config, error) {
	exists, err := HomeDirExists(homePath)
	if err != nil {
		return nil, err
	}
	if !exists {
		cfg := DefaultConfig
		return &cfg, nil
	}
	if _, err := os.Stat(ConfigPath(homePath)); os.IsNotExist(err) {
		cfg := DefaultConfig
		return &cfg, nil
	}
	return ReadConfigFile(homePath)
}
