package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrayerHistoryDropsOldest(t *testing.T) {
	h := newPrayerHistory(3)
	for _, v := range []int{10, 20, 30, 40} {
		h.push(v)
	}
	require.Equal(t, 3, h.len())
	lo, hi := h.minMax()
	assert.Equal(t, 20, lo)
	assert.Equal(t, 40, hi)
}

func TestPrayerHistoryRender(t *testing.T) {
	st := testStyles(t)
	h := newPrayerHistory(10)

	assert.Contains(t, h.render(60, historyHeight, st), "No ticks yet")

	h.push(99)
	h.push(98)
	h.push(97)
	assert.Contains(t, h.render(60, historyHeight, st), "Min: 97 | Max: 99")
}

func TestPrayerHistoryMinimumSize(t *testing.T) {
	h := newPrayerHistory(0)
	h.push(1)
	h.push(2)
	assert.Equal(t, 1, h.len())
}
