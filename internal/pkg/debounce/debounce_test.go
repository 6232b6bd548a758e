//go:build unit

package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiresOnceAfterQuietWindow(t *testing.T) {
	var fired int64
	d := New(30*time.Millisecond, func() { atomic.AddInt64(&fired, 1) })

	d.Trigger()
	d.Trigger()
	d.Trigger()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&fired))
}

func TestTriggerResetsWindow(t *testing.T) {
	var fired int64
	d := New(50*time.Millisecond, func() { atomic.AddInt64(&fired, 1) })

	d.Trigger()
	time.Sleep(30 * time.Millisecond)
	// Still inside the window; this must push the fire out.
	d.Trigger()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int64(0), atomic.LoadInt64(&fired))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&fired))
}

func TestStopCancelsPendingFire(t *testing.T) {
	var fired int64
	d := New(20*time.Millisecond, func() { atomic.AddInt64(&fired, 1) })

	d.Trigger()
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int64(0), atomic.LoadInt64(&fired))

	// Usable again after Stop.
	d.Trigger()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&fired))
}
