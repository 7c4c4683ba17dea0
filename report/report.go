// Package report produces the offline listing of stored resume records.
package report

import (
	"fmt"
	"io/ioutil"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"gitlab.com/watchlater/watchlater/helpers"
	"gitlab.com/watchlater/watchlater/record"
)

// Record files are named after the 128 bit identity hash.
var recordName = regexp.MustCompile(`^[0-9a-z]{32}$`)

// Row describes one resume record.
type Row struct {
	Hash    string
	Created string
	Elapsed string
	Found   bool
	Path    string
}

// Scan reads every resume record under dir. Entries whose names do not look
// like record hashes are ignored; unreadable records are skipped with a
// warning. Rows come back sorted by creation time, oldest first.
func Scan(dir string) ([]Row, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	rows := []Row{}
	for _, entry := range entries {
		if entry.IsDir() || !recordName.MatchString(entry.Name()) {
			continue
		}

		rec, err := record.ReadFile(path.Join(dir, entry.Name()))
		if err != nil {
			log.WithFields(log.Fields{"error": err, "file": entry.Name()}).Warnln("Skipping unreadable resume record.")
			continue
		}
		if rec == nil {
			continue
		}

		mediaPath := reconstructPath(rec)
		rows = append(rows, Row{
			Hash:    entry.Name(),
			Created: time.UnixMilli(rec.CreatedMs).UTC().Format("2006-01-02 15:04:05"),
			Elapsed: FormatElapsed(rec.TimeMs),
			Found:   helpers.FileExists(mediaPath),
			Path:    mediaPath,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Created < rows[j].Created
	})
	return rows, nil
}

// reconstructPath rebuilds the absolute media path from a record: the
// mountpoint plus the relative path when a mountpoint was recorded, the
// stored path alone otherwise.
func reconstructPath(rec *record.Resume) string {
	if rec.Mountpoint == "" {
		return rec.File
	}
	return path.Join(rec.Mountpoint, strings.TrimPrefix(rec.File, "/"))
}

// FormatElapsed renders a millisecond position as H:MM:SS. Hours do not roll
// over into days.
func FormatElapsed(ms int64) string {
	seconds := ms / 1000
	return fmt.Sprintf("%2d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}

// Format renders a row the way the report command prints it.
func (r Row) Format() string {
	status := "found  "
	if !r.Found {
		status = "missing"
	}
	return fmt.Sprintf("%s  %s  %s  %s  %s", r.Hash, r.Created, r.Elapsed, status, r.Path)
}
