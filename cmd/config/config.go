package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configKindString = iota
	configKindBool
	configKindInt
)

type configEntry struct {
	kind int
	help string
}

var config = map[string]configEntry{
	"java":              {configKindString, "path to the java executable"},
	"gamedir":           {configKindString, "minecraft directory with versions, libraries & assets"},
	"resolution.width":  {configKindInt, "window width"},
	"resolution.height": {configKindInt, "window height"},
	"noninteractive":    {configKindBool, "never show spinners"},
	"verboselogging":    {configKindBool, "always print debug output"},
}

var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}

// configFile returns the file viper reads, or the default location
func configFile() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mclaunch", "config.toml"), nil
}
