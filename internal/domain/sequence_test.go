package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSequenceSameMillisecond(t *testing.T) {
	frozen := time.UnixMilli(1700000000000)
	seq := NewSequence(0)
	seq.SetClock(func() time.Time { return frozen })

	first := seq.Next()
	second := seq.Next()
	assert.Equal(t, frozen.UnixMilli(), first)
	assert.Equal(t, first+1, second, "same-millisecond values must still be unique and increasing")
}

func TestSequenceSeededPastPersistedMax(t *testing.T) {
	frozen := time.UnixMilli(1000)
	seq := NewSequence(5000)
	seq.SetClock(func() time.Time { return frozen })

	assert.Equal(t, int64(5001), seq.Next(), "a clock behind the seed must not reissue old ids")
}

func TestSequenceFollowsClock(t *testing.T) {
	now := time.UnixMilli(42)
	seq := NewSequence(0)
	seq.SetClock(func() time.Time { return now })

	assert.Equal(t, int64(42), seq.Next())
	now = time.UnixMilli(99)
	assert.Equal(t, int64(99), seq.Next())
}
