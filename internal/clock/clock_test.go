package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	at := time.Date(2025, 12, 20, 19, 0, 0, 0, time.UTC)
	c := NewFixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, c.Now(), c.Now())
}

func TestFixed_ConvertsToUTC(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	c := NewFixed(time.Date(2025, 12, 20, 22, 0, 0, 0, msk))

	assert.Equal(t, time.UTC, c.Now().Location())
	assert.Equal(t, 19, c.Now().Hour())
}

func TestSystem(t *testing.T) {
	got := NewSystem().Now()

	assert.Equal(t, time.UTC, got.Location())
	assert.WithinDuration(t, time.Now(), got, time.Second)
}

func TestStepping(t *testing.T) {
	start := time.Date(2025, 12, 1, 9, 30, 0, 0, time.UTC)
	c := NewStepping(start, time.Second)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start.Add(time.Second), c.Now())
	assert.Equal(t, start.Add(2*time.Second), c.Now())
}
