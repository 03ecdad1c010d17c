package main

import (
	"errors"
	"fmt"
	"io/fs"

	"golife/utils"
)

// LoadGameConfig reads the driver configuration from path. A missing file
// falls back to defaults; a present but invalid file is an error.
func LoadGameConfig(path string) (utils.Config, error) {
	cfg, err := utils.LoadConfig(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Printf("Using default configuration (%s not found)\n", path)
			return utils.DefaultConfig(), nil
		}
		return cfg, err
	}
	return cfg, nil
}
