package helpers

import (
	"os"
	"path"
)

// BaseConfigDir is where records, the config file and logs live. The host
// integration passes this directory to the record store and config loader.
func BaseConfigDir() string {
	configDir := path.Join(GetHome(), ".config", "watchlater")
	if configDirEnv := os.Getenv("WATCHLATER_CONFIG_DIR"); configDirEnv != "" {
		configDir = configDirEnv
	}

	return configDir
}

func LogPath() string {
	return path.Join(BaseConfigDir(), "log")
}
