package config

import (
	"path"

	"github.com/mitchellh/go-homedir"
)

func ExpandHomePath(path string) string {
	res, err := homedir.Expand(path)
	if err != nil {
		panic(err)
	}
	return res
}

func ConfigPath(homePath string) string {
	return path.Join(homePath, ConfigFilename)
}
