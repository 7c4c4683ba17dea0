package identity

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// ResolveMountpoint walks from the decoded path upwards until it crosses a
// filesystem boundary. It returns "" when the boundary is the root filesystem
// or when the walk fails; a resume record without a mountpoint simply hashes
// the full path.
func ResolveMountpoint(rawPath string) string {
	decoded := DecodePath(rawPath)
	p, err := filepath.EvalSymlinks(decoded)
	if err != nil {
		p = filepath.Clean(decoded)
	}

	for {
		mounted, err := isMountpoint(p)
		if err != nil && err != unix.ENOENT {
			log.WithFields(log.Fields{"error": err, "path": p}).Debugln("Mountpoint walk failed, treating the file as not mounted.")
			return ""
		}
		if mounted {
			break
		}
		parent := filepath.Dir(p)
		if parent == p {
			return ""
		}
		p = parent
	}

	if p == "/" {
		return ""
	}
	return p
}

// isMountpoint reports whether path sits on a different device than its
// parent, which is how a mount boundary shows up on disk. Paths that do not
// exist are never mountpoints.
func isMountpoint(path string) (bool, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return false, err
	}
	if st.Mode&unix.S_IFMT != unix.S_IFDIR {
		return false, nil
	}

	var parent unix.Stat_t
	if err := unix.Lstat(filepath.Dir(path), &parent); err != nil {
		return false, err
	}
	// A differing device means a boundary; identical inodes mean we reached
	// the root, which is a mountpoint by definition.
	return st.Dev != parent.Dev || st.Ino == parent.Ino, nil
}
