package record

import (
	"errors"
	"io/ioutil"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testHash = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func TestRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	rec := &Resume{
		File:       "/Videos/50% off.mkv",
		Mountpoint: "/mnt/usb 100%",
		TimeMs:     120000,
		CreatedMs:  1600000000000,
	}
	require.NoError(t, store.Write(testHash, rec))

	got, err := store.Read(testHash)
	require.NoError(t, err)
	require.Equal(t, rec, got)

	// literal % must be doubled on disk so ConfigParser-style readers agree
	content, err := ioutil.ReadFile(store.Path(testHash))
	require.NoError(t, err)
	require.Contains(t, string(content), "50%% off.mkv")
	require.NotContains(t, string(content), "50% off.mkv")
}

func TestReadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	rec, err := store.Read(testHash)
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestReadWithoutTimeKey(t *testing.T) {
	store := NewStore(t.TempDir())
	content := "[File]\nfile = /Videos/movie.mkv\n"
	require.NoError(t, ioutil.WriteFile(store.Path(testHash), []byte(content), 0644))

	rec, err := store.Read(testHash)
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestReadCorruptTime(t *testing.T) {
	store := NewStore(t.TempDir())
	content := "[File]\nfile = /Videos/movie.mkv\ntime = potato\n"
	require.NoError(t, ioutil.WriteFile(store.Path(testHash), []byte(content), 0644))

	_, err := store.Read(testHash)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestReadConfigParserOutput(t *testing.T) {
	// A record written by the Python implementation must parse unchanged.
	content := strings.Join([]string{
		"[File]",
		"file = /Videos/some%%dir/movie.mkv",
		"mountpoint = ",
		"time = 4200000",
		"created = 1611172800000",
		"",
	}, "\n")

	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(path.Join(dir, testHash), []byte(content), 0644))

	rec, err := NewStore(dir).Read(testHash)
	require.NoError(t, err)
	require.Equal(t, &Resume{
		File:      "/Videos/some%dir/movie.mkv",
		TimeMs:    4200000,
		CreatedMs: 1611172800000,
	}, rec)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Write(testHash, &Resume{File: "/a", TimeMs: 1, CreatedMs: 1}))
	require.NoError(t, store.Delete(testHash))
	require.NoError(t, store.Delete(testHash))

	rec, err := store.Read(testHash)
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestLastPlayed(t *testing.T) {
	store := NewStore(t.TempDir())

	rawPath, err := store.LastPlayed()
	require.NoError(t, err)
	require.Equal(t, "", rawPath)

	require.NoError(t, store.WriteLastPlayed("file:///home/user/Videos/movie.mkv"))
	rawPath, err = store.LastPlayed()
	require.NoError(t, err)
	require.Equal(t, "file:///home/user/Videos/movie.mkv", rawPath)

	require.NoError(t, store.DeleteLastPlayed())
	require.NoError(t, store.DeleteLastPlayed())
	rawPath, err = store.LastPlayed()
	require.NoError(t, err)
	require.Equal(t, "", rawPath)
}
