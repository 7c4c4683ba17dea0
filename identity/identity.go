// Package identity derives a stable, mount-independent identity for a media
// file. The identity survives re-inserting a removable drive under a
// different mount path: only the path relative to the mountpoint is hashed.
package identity

import (
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

const digestSize = 16

// Reference identifies one playable media item.
type Reference struct {
	// RawPath is the path exactly as the host player delivered it, possibly
	// a file:// URI with percent-encoding.
	RawPath string

	// Mountpoint is the filesystem boundary containing the file, or "" when
	// the file lives on the root filesystem.
	Mountpoint string
}

// NewReference builds a Reference for rawPath. Mountpoint resolution failures
// degrade to an empty mountpoint; they never propagate to the player.
func NewReference(rawPath string) *Reference {
	return &Reference{
		RawPath:    rawPath,
		Mountpoint: ResolveMountpoint(rawPath),
	}
}

// DecodePath strips the file:// scheme prefix and percent-decodes rawPath.
// Undecodable input is returned with only the scheme stripped.
func DecodePath(rawPath string) string {
	p := strings.TrimPrefix(rawPath, "file://")
	decoded, err := url.PathUnescape(p)
	if err != nil {
		return p
	}
	return decoded
}

// RelativePath is the decoded path with the mountpoint prefix removed. This
// is the string that gets hashed, so it must be byte-stable for a given file.
// A mountpoint that is not a true prefix of the path is a logic error.
func (r *Reference) RelativePath() (string, error) {
	decoded := DecodePath(r.RawPath)
	if r.Mountpoint == "" {
		return decoded, nil
	}
	if !strings.HasPrefix(decoded, r.Mountpoint) {
		return "", errors.Errorf("path %q is not under mountpoint %q", decoded, r.Mountpoint)
	}
	return strings.TrimPrefix(decoded, r.Mountpoint), nil
}

// Hash returns the 32 character hex name of the on-disk record for this
// reference.
func (r *Reference) Hash() (string, error) {
	relPath, err := r.RelativePath()
	if err != nil {
		return "", err
	}
	return HashPath(relPath), nil
}

// HashPath digests a relative path into a record name. A 16 byte blake2b
// digest keeps names short while collisions across a personal media library
// stay implausible.
func HashPath(relPath string) string {
	h, err := blake2b.New(digestSize, nil)
	if err != nil {
		// only possible for an invalid digest size
		panic(err)
	}
	h.Write([]byte(relPath))
	return hex.EncodeToString(h.Sum(nil))
}
