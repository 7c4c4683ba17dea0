// Package config loads the resume policy and timing settings from the
// plugin's base directory. The file format matches the records: plain INI
// with a single [Config] section.
package config

import (
	"path"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"gitlab.com/watchlater/watchlater/helpers"
)

// Config is loaded once at startup and never mutated afterwards.
type Config struct {
	// RestartLast re-opens the most recently saved item shortly after the
	// host comes up.
	RestartLast bool

	// RestartDelay is how long to wait before re-opening, in seconds.
	RestartDelay int

	// UpdateInterval is the position poll interval while playing, in seconds.
	UpdateInterval int

	// RewindMs is subtracted from the position before saving so playback
	// resumes slightly before where it stopped.
	RewindMs int64

	// MinRuntimeMs is the least amount that must have been watched before a
	// position is worth saving.
	MinRuntimeMs int64

	// MaxRuntimeMs is the tail window: positions closer than this to the end
	// of the stream count as finished.
	MaxRuntimeMs int64
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		RestartLast:    true,
		RestartDelay:   2,
		UpdateInterval: 3,
		RewindMs:       10000,
		MinRuntimeMs:   120000,
		MaxRuntimeMs:   90000,
	}
}

// Load reads the `config` file from baseDir. A missing or unreadable file is
// never fatal; fields that cannot be parsed keep their defaults. The on-disk
// values for rewind_time, min_runtime and max_runtime are in seconds and are
// converted to milliseconds here.
func Load(baseDir string) Config {
	cfg := Default()

	v := viper.New()
	configFile := path.Join(baseDir, "config")
	if !helpers.FileExists(configFile) {
		return cfg
	}

	v.SetConfigFile(configFile)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		log.WithFields(log.Fields{"error": err, "configFile": configFile}).Warnln("An error occurred while reading config file, contents are being ignored.")
		return cfg
	}

	cfg.RestartLast = getBool(v, "config.restart_last", cfg.RestartLast)
	cfg.RestartDelay = int(getInt(v, "config.restart_delay", int64(cfg.RestartDelay)))
	cfg.UpdateInterval = int(getInt(v, "config.update_interval", int64(cfg.UpdateInterval)))
	cfg.RewindMs = getInt(v, "config.rewind_time", cfg.RewindMs/1000) * 1000
	cfg.MinRuntimeMs = getInt(v, "config.min_runtime", cfg.MinRuntimeMs/1000) * 1000
	cfg.MaxRuntimeMs = getInt(v, "config.max_runtime", cfg.MaxRuntimeMs/1000) * 1000

	return cfg
}

// getInt reads a single integer option, falling back to def when the option
// is absent or corrupt. Corrupt values are reported but never fatal.
func getInt(v *viper.Viper, key string, def int64) int64 {
	if !v.IsSet(key) {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v.GetString(key)), 10, 64)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "value": v.GetString(key)}).Warnln("Config option is not a number, using the default.")
		return def
	}
	return n
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
	case "1", "yes", "true", "on":
		return true
	case "0", "no", "false", "off":
		return false
	}
	log.WithFields(log.Fields{"key": key, "value": v.GetString(key)}).Warnln("Config option is not a boolean, using the default.")
	return def
}
