package identity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPath(t *testing.T) {
	// Digests generated with blake2b at a 16 byte digest size; these must
	// never change or every existing record becomes unreachable.
	cases := map[string]string{
		"/home/user/Videos/movie.mkv": "09e50bd734f0c36fe39f459822bce02c",
		"/shows/s01e02.mkv":           "687b711c4c5596ed983619a3379758de",
		"/Videos/50% off.mkv":         "06f5da89f8931e871bfe157fae0753c8",
	}

	for relPath, expected := range cases {
		require.Equal(t, expected, HashPath(relPath))
		// stable across invocations
		require.Equal(t, expected, HashPath(relPath))
	}
}

func TestDecodePath(t *testing.T) {
	require.Equal(t, "/home/user/My Movie.mkv", DecodePath("file:///home/user/My%20Movie.mkv"))
	require.Equal(t, "/home/user/plain.mkv", DecodePath("/home/user/plain.mkv"))
	// undecodable input keeps its escapes, only the scheme goes
	require.Equal(t, "/bad%zzescape.mkv", DecodePath("file:///bad%zzescape.mkv"))
}

func TestRelativePathWithoutMountpoint(t *testing.T) {
	ref := &Reference{RawPath: "file:///home/user/My%20Movie.mkv"}

	relPath, err := ref.RelativePath()
	require.NoError(t, err)
	require.Equal(t, "/home/user/My Movie.mkv", relPath)
}

func TestRelativePathStripsMountpoint(t *testing.T) {
	ref := &Reference{RawPath: "file:///mnt/usb/shows/s01e02.mkv", Mountpoint: "/mnt/usb"}

	relPath, err := ref.RelativePath()
	require.NoError(t, err)
	require.Equal(t, "/shows/s01e02.mkv", relPath)

	hash, err := ref.Hash()
	require.NoError(t, err)
	require.Equal(t, "687b711c4c5596ed983619a3379758de", hash)
}

func TestRelativePathMountpointMismatch(t *testing.T) {
	ref := &Reference{RawPath: "file:///home/user/movie.mkv", Mountpoint: "/mnt/usb"}

	_, err := ref.RelativePath()
	require.Error(t, err)

	_, err = ref.Hash()
	require.Error(t, err)
}

func TestResolveMountpointRoot(t *testing.T) {
	// The root filesystem never counts as a mountpoint of its own.
	require.Equal(t, "", ResolveMountpoint("/"))
}

func TestResolveMountpointMissingPath(t *testing.T) {
	// A file that does not exist resolves against its (equally missing)
	// parents all the way up to the root.
	require.Equal(t, "", ResolveMountpoint("file:///no-such-dir-watchlater/no-such-file.mkv"))
}
