package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stuckClock struct{ t time.Time }

func (c stuckClock) Now() time.Time { return c.t }

func TestIDSource_Next(t *testing.T) {
	t.Parallel()

	t.Run("tokens derive from the clock", func(t *testing.T) {
		t.Parallel()
		at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		ids := NewIDSource(stuckClock{t: at})
		assert.Equal(t, at.UnixMilli(), ids.Next())
	})

	t.Run("tokens never repeat when the clock is stuck", func(t *testing.T) {
		t.Parallel()
		ids := NewIDSource(stuckClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)})

		seen := map[int64]bool{}
		last := int64(0)
		for i := 0; i < 100; i++ {
			id := ids.Next()
			assert.Greater(t, id, last)
			assert.False(t, seen[id])
			seen[id] = true
			last = id
		}
	})
}

func TestSystemClock(t *testing.T) {
	t.Parallel()

	before := time.Now().Add(-time.Second)
	now := System().Now()
	assert.True(t, now.After(before))
}
