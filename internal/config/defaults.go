package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/vimquest.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			FeedLines: 8,
			TileWidth: 6,
			Theme: Theme{
				Title:    "12",
				Genre:    "245",
				Player:   "11",
				Exit:     "10",
				Path:     "240",
				Tile:     "236",
				Normal:   "4",
				Insert:   "2",
				Progress: "6",
				Complete: "10",
			},
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: Duration(30 * time.Minute),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
