package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

const BuildVersion = "v0.1.0-BUILD_VERSION"

type Custom struct {
	Log struct {
		Level  int    `toml:"level"`
		Filter string `toml:"filter"`
		Limit  int    `toml:"limit"`
	} `toml:"log"`
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	if config.Log.Level == 0 {
		config.Log.Level = 2
	}
	return &config, nil
}
