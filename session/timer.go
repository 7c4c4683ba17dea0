package session

import (
	"time"
)

// task is a cancellable deferred function. Cancel is idempotent and safe on a
// nil task or one that has already fired; the fired callback is responsible
// for checking that its work is still wanted.
type task struct {
	timer *time.Timer
}

func schedule(d time.Duration, fn func()) *task {
	return &task{timer: time.AfterFunc(d, fn)}
}

func (t *task) Cancel() {
	if t != nil {
		t.timer.Stop()
	}
}
