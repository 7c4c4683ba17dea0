// Package player defines the capability surface the host media player exposes
// to the resume core, and the notifications it delivers back. The core never
// talks to a concrete engine; the host integration provides both sides.
package player

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Controller is the control surface of the host player.
//counterfeiter:generate . Controller
type Controller interface {
	// IsSeekable reports whether the engine currently accepts seeks. Right
	// after opening a file it usually does not.
	IsSeekable() bool

	// SeekTime seeks to a position in milliseconds. accurate requests an
	// exact rather than keyframe-aligned seek.
	SeekTime(ms int64, accurate bool)

	// CurrentTime returns the playback position in milliseconds.
	CurrentTime() (int64, error)

	// StreamLength returns the stream length in milliseconds.
	StreamLength() (int64, error)

	// OpenReplace replaces whatever is playing with the given path.
	OpenReplace(path string) error
}

// Listener receives playback lifecycle notifications from the host.
type Listener interface {
	// FileOpened fires when the player opened a file. Playback may not have
	// started yet and the engine may not be seekable.
	FileOpened(path string)

	// FileHasPlayed fires once the file has actually started playing. The
	// path must match the most recent FileOpened.
	FileHasPlayed(path string)

	// FileClosed fires when the current file stops being the current file.
	FileClosed()

	// Shutdown fires when the host is going away. It carries the same
	// obligations as FileClosed.
	Shutdown()
}

// EventSource delivers host notifications to a Listener. Subscribe returns a
// cancel function that detaches the listener again; calling it more than once
// is harmless.
type EventSource interface {
	Subscribe(l Listener) (cancel func())
}
