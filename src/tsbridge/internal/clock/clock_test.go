package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	c := New()
	before := time.Now()
	got := c.Now()
	assert.False(t, got.Before(before))
}

func TestSleep(t *testing.T) {
	c := New()
	start := time.Now()
	c.Sleep(10 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}
