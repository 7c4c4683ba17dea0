// Package session tracks the currently open media item and persists its
// playback position when it closes. It is the piece the host integration
// activates; everything else hangs off it.
package session

import (
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"gitlab.com/watchlater/watchlater/config"
	"gitlab.com/watchlater/watchlater/helpers"
	"gitlab.com/watchlater/watchlater/identity"
	"gitlab.com/watchlater/watchlater/player"
	"gitlab.com/watchlater/watchlater/policy"
	"gitlab.com/watchlater/watchlater/record"
)

// Seeking right after open tends to be refused, so the restore seek retries
// on a short interval until the engine reports itself seekable.
const seekRetryInterval = 50 * time.Millisecond

// Give up restoring the position after 30s of the engine never becoming
// seekable.
const maxSeekRetries = 600

// Controller reacts to host notifications and persists or purges resume
// records at the right moments. All handlers funnel through a single mutex,
// so record I/O never races even though the timers fire on their own
// goroutines.
type Controller struct {
	cfg        config.Config
	store      *record.Store
	playerCtrl player.Controller

	mu           sync.Mutex
	current      *identity.Reference
	currentHash  string
	currentTime  int64
	streamLength int64
	playing      bool
	logger       *log.Entry

	restartTask *task
	pollTask    *task
	seekTask    *task
	seekRetries int
	unsubscribe func()
}

// New creates a Controller that persists records via store and drives the
// given player.
func New(cfg config.Config, store *record.Store, playerCtrl player.Controller) *Controller {
	return &Controller{
		cfg:        cfg,
		store:      store,
		playerCtrl: playerCtrl,
		logger:     log.WithField("component", "session"),
	}
}

// Activate subscribes to host notifications and, when configured, arms the
// one-shot restart of the last played item. The restart is cancelled as soon
// as a real open arrives.
func (c *Controller) Activate(src player.EventSource) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unsubscribe = src.Subscribe(c)
	if c.cfg.RestartLast {
		c.restartTask = schedule(time.Duration(c.cfg.RestartDelay)*time.Second, c.restartLastPlayed)
	}
}

// Deactivate detaches from the host. Any open item is flushed as if it had
// been closed.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	c.restartTask.Cancel()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	c.FileClosed()
}

// FileOpened implements player.Listener. It looks up any existing resume
// record for the file but does not seek yet; the engine is usually not
// seekable until playback is confirmed.
func (c *Controller) FileOpened(rawPath string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.restartTask.Cancel()

	sessionID, err := uuid.NewV4()
	if err == nil {
		c.logger = log.WithFields(log.Fields{"session": sessionID.String(), "file": rawPath})
	} else {
		c.logger = log.WithField("file", rawPath)
	}

	c.current = identity.NewReference(rawPath)
	c.currentHash = ""
	c.currentTime = 0
	c.streamLength = 0
	c.playing = false

	hash, err := c.current.Hash()
	if err != nil {
		c.logger.WithError(err).Errorln("Could not derive an identity for the opened file.")
		return
	}
	c.currentHash = hash

	rec, err := c.store.Read(hash)
	if err != nil {
		c.logger.WithError(err).Warnln("Failed to read resume record, starting from the beginning.")
		return
	}
	if rec != nil {
		c.currentTime = rec.TimeMs
		c.logger.WithField("timeMs", rec.TimeMs).Debugln("Found a resume record for this file.")
	}
}

// FileHasPlayed implements player.Listener. A played file that does not match
// the opened one means host and plugin are out of sync; the notification is
// dropped loudly and the open state is kept so a correct one can still land.
func (c *Controller) FileHasPlayed(rawPath string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil || c.current.RawPath != rawPath {
		opened := ""
		if c.current != nil {
			opened = c.current.RawPath
		}
		c.logger.WithFields(log.Fields{"opened": opened, "played": rawPath}).Errorln("The played file does not match the opened file, dropping the notification.")
		return
	}

	// A repeated played notification must not stack a second timer chain.
	c.pollTask.Cancel()
	c.seekTask.Cancel()

	if c.currentTime > 0 {
		c.seekRetries = 0
		c.scheduleSeek(c.currentTime, c.currentHash)
	}

	c.playing = true
	c.updateProperties()
	c.schedulePoll(c.currentHash)
}

// FileClosed implements player.Listener. The last polled position decides
// whether a record is written or purged; both the record and the last-played
// pointer are handled best-effort and independently.
func (c *Controller) FileClosed() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pollTask.Cancel()
	c.seekTask.Cancel()

	if c.current == nil {
		return
	}

	ref := c.current
	hash := c.currentHash
	currentTime := c.currentTime
	streamLength := c.streamLength

	c.current = nil
	c.currentHash = ""
	c.currentTime = 0
	c.streamLength = 0
	c.playing = false
	logger := c.logger
	c.logger = log.WithField("component", "session")

	if hash == "" {
		return
	}

	saveTime, savable := policy.SaveTime(currentTime, streamLength, c.cfg)
	if savable && helpers.FileExists(identity.DecodePath(ref.RawPath)) {
		relPath, err := ref.RelativePath()
		if err != nil {
			logger.WithError(err).Errorln("Could not derive a relative path, not saving the position.")
			return
		}
		rec := &record.Resume{
			File:       relPath,
			Mountpoint: ref.Mountpoint,
			TimeMs:     saveTime,
			CreatedMs:  time.Now().UnixMilli(),
		}
		if err := c.store.Write(hash, rec); err != nil {
			logger.WithError(err).Errorln("Failed to write the resume record.")
		} else {
			logger.WithField("timeMs", saveTime).Debugln("Saved the playback position.")
		}
		if err := c.store.WriteLastPlayed(ref.RawPath); err != nil {
			logger.WithError(err).Errorln("Failed to write the last played pointer.")
		}
		return
	}

	if err := c.store.Delete(hash); err != nil {
		logger.WithError(err).Warnln("Failed to delete the resume record.")
	}
	if err := c.store.DeleteLastPlayed(); err != nil {
		logger.WithError(err).Warnln("Failed to delete the last played pointer.")
	}
}

// Shutdown implements player.Listener.
func (c *Controller) Shutdown() {
	c.FileClosed()
}

// scheduleSeek retries until the engine accepts seeks, then restores the
// position once. hash pins the seek to the item it was scheduled for; if a
// different file is current by the time the timer fires, nothing happens.
func (c *Controller) scheduleSeek(ms int64, hash string) {
	c.seekTask = schedule(seekRetryInterval, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.current == nil || c.currentHash != hash {
			return
		}
		if !c.playerCtrl.IsSeekable() {
			c.seekRetries++
			if c.seekRetries >= maxSeekRetries {
				c.logger.Warnln("The player never became seekable, giving up on restoring the position.")
				return
			}
			c.scheduleSeek(ms, hash)
			return
		}
		c.playerCtrl.SeekTime(ms, true)
	})
}

// schedulePoll keeps the in-memory position and length fresh while playing.
func (c *Controller) schedulePoll(hash string) {
	c.pollTask = schedule(time.Duration(c.cfg.UpdateInterval)*time.Second, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.current == nil || c.currentHash != hash || !c.playing {
			return
		}
		c.updateProperties()
		c.schedulePoll(hash)
	})
}

// updateProperties queries the engine for position and length. Callers hold
// the mutex. Query failures keep the previous values; a stale position beats
// a lost one.
func (c *Controller) updateProperties() {
	currentTime, err := c.playerCtrl.CurrentTime()
	if err != nil {
		c.logger.WithError(err).Warnln("Failed to query the playback position.")
	} else {
		c.currentTime = currentTime
	}

	streamLength, err := c.playerCtrl.StreamLength()
	if err != nil {
		c.logger.WithError(err).Warnln("Failed to query the stream length.")
	} else {
		c.streamLength = streamLength
	}
}

// restartLastPlayed asks the host to reopen the most recently saved item. It
// runs once shortly after activation unless a real open arrived first.
func (c *Controller) restartLastPlayed() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		return
	}

	rawPath, err := c.store.LastPlayed()
	if err != nil {
		c.logger.WithError(err).Warnln("Failed to read the last played pointer.")
		return
	}
	if rawPath == "" {
		return
	}
	if err := c.playerCtrl.OpenReplace(rawPath); err != nil {
		c.logger.WithError(err).Warnln("Failed to reopen the last played file.")
	}
}
