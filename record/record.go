// Package record reads and writes resume records and the last-played pointer.
// Records are plain INI files named after the identity hash, one [File]
// section each, with `%` doubled in string values so the format round-trips
// through ConfigParser-style readers.
package record

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

const sectionName = "File"
const lastPlayedFile = "last_played"

// Resume is one persisted playback position.
type Resume struct {
	// File is the path relative to the mountpoint, unescaped.
	File string

	// Mountpoint is the filesystem boundary the file lived under, or "".
	Mountpoint string

	// TimeMs is the saved position in milliseconds, always > 0 for a record
	// that exists on disk.
	TimeMs int64

	// CreatedMs is the epoch millisecond timestamp the record was written.
	CreatedMs int64
}

// ParseError marks a record file that exists but cannot be decoded. Callers
// log it and treat the record as absent.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse resume record %s: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Store keeps resume records under a single base directory. Only the session
// controller writes; concurrent readers see either the old or the new file.
type Store struct {
	BaseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{BaseDir: baseDir}
}

// Path returns the file backing the record for hash.
func (s *Store) Path(hash string) string {
	return path.Join(s.BaseDir, hash)
}

// Read loads the record for hash. A missing file or a record without a time
// key yields (nil, nil); a malformed record yields a *ParseError.
func (s *Store) Read(hash string) (*Resume, error) {
	return ReadFile(s.Path(hash))
}

// ReadFile parses a single record file, see Store.Read.
func ReadFile(p string) (*Resume, error) {
	f, err := ini.Load(p)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil, nil
		}
		return nil, &ParseError{Path: p, Err: err}
	}

	sec := f.Section(sectionName)
	if !sec.HasKey("time") {
		return nil, nil
	}
	timeMs, err := sec.Key("time").Int64()
	if err != nil {
		return nil, &ParseError{Path: p, Err: err}
	}

	var createdMs int64
	if sec.HasKey("created") {
		createdMs, err = sec.Key("created").Int64()
		if err != nil {
			return nil, &ParseError{Path: p, Err: err}
		}
	}

	return &Resume{
		File:       unescape(sec.Key("file").String()),
		Mountpoint: unescape(sec.Key("mountpoint").String()),
		TimeMs:     timeMs,
		CreatedMs:  createdMs,
	}, nil
}

// Write replaces the record for hash with rec.
func (s *Store) Write(hash string, rec *Resume) error {
	f := ini.Empty()
	sec := f.Section(sectionName)
	sec.Key("file").SetValue(escape(rec.File))
	sec.Key("mountpoint").SetValue(escape(rec.Mountpoint))
	sec.Key("time").SetValue(strconv.FormatInt(rec.TimeMs, 10))
	sec.Key("created").SetValue(strconv.FormatInt(rec.CreatedMs, 10))

	return errors.Wrap(f.SaveTo(s.Path(hash)), "could not write resume record")
}

// Delete removes the record for hash. A record that is already gone is fine.
func (s *Store) Delete(hash string) error {
	if err := os.Remove(s.Path(hash)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "could not delete resume record")
	}
	return nil
}

// LastPlayed returns the raw path of the most recently saved item, or ""
// when no pointer exists.
func (s *Store) LastPlayed() (string, error) {
	content, err := ioutil.ReadFile(s.lastPlayedPath())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "could not read last played pointer")
	}
	return strings.TrimSpace(string(content)), nil
}

// WriteLastPlayed points the last-played pointer at rawPath.
func (s *Store) WriteLastPlayed(rawPath string) error {
	err := ioutil.WriteFile(s.lastPlayedPath(), []byte(rawPath+"\n"), 0644)
	return errors.Wrap(err, "could not write last played pointer")
}

// DeleteLastPlayed removes the pointer; an absent pointer is fine.
func (s *Store) DeleteLastPlayed() error {
	if err := os.Remove(s.lastPlayedPath()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "could not delete last played pointer")
	}
	return nil
}

func (s *Store) lastPlayedPath() string {
	return path.Join(s.BaseDir, lastPlayedFile)
}

func escape(value string) string {
	return strings.ReplaceAll(value, "%", "%%")
}

func unescape(value string) string {
	return strings.ReplaceAll(value, "%%", "%")
}
