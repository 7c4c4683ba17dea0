package config

import (
	"io/ioutil"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(path.Join(dir, "config"), []byte(content), 0644))
	return dir
}

func TestLoadWithoutFile(t *testing.T) {
	require.Equal(t, Default(), Load(t.TempDir()))
}

func TestLoadOverrides(t *testing.T) {
	dir := writeConfig(t, `[Config]
restart_last = no
restart_delay = 7
rewind_time = 5
`)

	cfg := Load(dir)
	require.False(t, cfg.RestartLast)
	require.Equal(t, 7, cfg.RestartDelay)
	require.Equal(t, int64(5000), cfg.RewindMs)

	// untouched options keep their defaults
	require.Equal(t, Default().UpdateInterval, cfg.UpdateInterval)
	require.Equal(t, Default().MinRuntimeMs, cfg.MinRuntimeMs)
	require.Equal(t, Default().MaxRuntimeMs, cfg.MaxRuntimeMs)
}

func TestLoadSecondsToMilliseconds(t *testing.T) {
	dir := writeConfig(t, `[Config]
rewind_time = 2
min_runtime = 60
max_runtime = 30
`)

	cfg := Load(dir)
	require.Equal(t, int64(2000), cfg.RewindMs)
	require.Equal(t, int64(60000), cfg.MinRuntimeMs)
	require.Equal(t, int64(30000), cfg.MaxRuntimeMs)
}

func TestLoadCorruptValuesFallBack(t *testing.T) {
	dir := writeConfig(t, `[Config]
restart_last = maybe
min_runtime = soon
update_interval = 10
`)

	cfg := Load(dir)
	require.Equal(t, Default().RestartLast, cfg.RestartLast)
	require.Equal(t, Default().MinRuntimeMs, cfg.MinRuntimeMs)
	require.Equal(t, 10, cfg.UpdateInterval)
}
