package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTaskFires(t *testing.T) {
	var fired int32
	schedule(10*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&fired) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestTaskCancel(t *testing.T) {
	var fired int32
	task := schedule(50*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	task.Cancel()
	task.Cancel()

	time.Sleep(100 * time.Millisecond)
	require.Zero(t, atomic.LoadInt32(&fired))
}

func TestNilTaskCancel(t *testing.T) {
	var tk *task
	require.NotPanics(t, func() { tk.Cancel() })
}
