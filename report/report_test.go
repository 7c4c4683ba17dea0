package report

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/watchlater/watchlater/record"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()
	store := record.NewStore(dir)

	hash := strings.Repeat("a", 32)
	require.NoError(t, store.Write(hash, &record.Resume{
		File:       "/sub/movie.mkv",
		Mountpoint: dir,
		TimeMs:     3661000,
		CreatedMs:  1600000000000,
	}))

	// noise the scan must ignore
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "not-a-record.txt"), []byte("hello"), 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, strings.Repeat("b", 32)), []byte("no delimiter in sight"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, strings.Repeat("c", 32)), 0755))

	rows, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	require.Equal(t, hash, row.Hash)
	require.Equal(t, "2020-09-13 12:26:40", row.Created)
	require.Equal(t, " 1:01:01", row.Elapsed)
	require.Equal(t, filepath.Join(dir, "sub/movie.mkv"), row.Path)
	require.False(t, row.Found)

	// once the media file exists the row flips to found
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "sub", "movie.mkv"), []byte("x"), 0644))

	rows, err = Scan(dir)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.True(t, rows[0].Found)
}

func TestScanSortsByCreation(t *testing.T) {
	dir := t.TempDir()
	store := record.NewStore(dir)

	newer := strings.Repeat("1", 32)
	older := strings.Repeat("2", 32)
	require.NoError(t, store.Write(newer, &record.Resume{File: "/b.mkv", TimeMs: 1000, CreatedMs: 1700000000000}))
	require.NoError(t, store.Write(older, &record.Resume{File: "/a.mkv", TimeMs: 1000, CreatedMs: 1600000000000}))

	rows, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, older, rows[0].Hash)
	require.Equal(t, newer, rows[1].Hash)
}

func TestReconstructPathWithoutMountpoint(t *testing.T) {
	dir := t.TempDir()
	store := record.NewStore(dir)

	hash := strings.Repeat("d", 32)
	require.NoError(t, store.Write(hash, &record.Resume{
		File:      "/home/user/movie.mkv",
		TimeMs:    1000,
		CreatedMs: 1600000000000,
	}))

	rows, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "/home/user/movie.mkv", rows[0].Path)
}

func TestFormatElapsed(t *testing.T) {
	require.Equal(t, " 0:00:00", FormatElapsed(0))
	require.Equal(t, " 0:00:59", FormatElapsed(59999))
	require.Equal(t, " 1:01:01", FormatElapsed(3661000))
	require.Equal(t, "25:01:01", FormatElapsed(90061000))
}

func TestRowFormat(t *testing.T) {
	row := Row{
		Hash:    strings.Repeat("e", 32),
		Created: "2020-09-13 12:26:40",
		Elapsed: " 1:01:01",
		Found:   false,
		Path:    "/mnt/usb/movie.mkv",
	}
	require.Contains(t, row.Format(), "missing")
	require.Contains(t, row.Format(), "/mnt/usb/movie.mkv")

	row.Found = true
	require.Contains(t, row.Format(), "found")
}
