// Package policy decides whether a playback position is worth persisting.
package policy

import (
	"gitlab.com/watchlater/watchlater/config"
)

// SaveTime returns the position to persist for a stream closed at currentMs
// out of lengthMs total. ok is false when nothing should be saved and any
// existing record should be purged instead: playback never started, not
// enough was watched yet, or the stream was effectively finished.
//
// The returned position is rewound by cfg.RewindMs so playback resumes just
// before where it stopped. A rewound position of 0 is meaningless and counts
// as not savable.
func SaveTime(currentMs, lengthMs int64, cfg config.Config) (saveMs int64, ok bool) {
	if currentMs <= 0 {
		return 0, false
	}
	if currentMs < cfg.MinRuntimeMs+cfg.RewindMs {
		return 0, false
	}
	// The upper boundary is exclusive: stopping exactly maxRuntime before the
	// end already counts as finished. An unknown length (0) makes the bound
	// negative, so every position counts as finished and the record is purged.
	if currentMs >= lengthMs-cfg.MaxRuntimeMs {
		return 0, false
	}

	saveMs = currentMs - cfg.RewindMs
	if saveMs <= 0 {
		return 0, false
	}
	return saveMs, true
}
