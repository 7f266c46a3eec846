package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencer(t *testing.T) {
	seq := NewSequencer(1000)

	assert.Equal(t, uint64(0), seq.LastArrival())

	// Arrival stamps are strictly increasing from 1
	prev := uint64(0)
	for i := 0; i < 100; i++ {
		arrival := seq.NextArrival()
		assert.Greater(t, arrival, prev)
		prev = arrival
	}
	assert.Equal(t, uint64(100), seq.LastArrival())

	// Order IDs start at the base and never repeat
	assert.Equal(t, uint64(1000), seq.NextOrderID())
	assert.Equal(t, uint64(1001), seq.NextOrderID())
	assert.Equal(t, uint64(1002), seq.NextOrderID())
}
