package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAndAtSet(t *testing.T) {
	m := New(0, 4, 3)
	assert.Equal(t, 0, m.At(2, 1))

	m.Set(2, 1, 7)
	assert.Equal(t, 7, m.At(2, 1))
}

func TestNegativeIndexWraps(t *testing.T) {
	m := New(0, 4, 3)
	m.Set(3, 2, 9)

	assert.Equal(t, 9, m.At(-1, -1))
}

func TestOutOfRangePanics(t *testing.T) {
	m := New(0, 4, 3)

	assert.Panics(t, func() {
		m.At(4, 0)
	})
	assert.Panics(t, func() {
		m.At(0, -4)
	})
}

func TestMaxTieBreaksOnLaterScan(t *testing.T) {
	m := New(0, 3, 1)
	m.Set(0, 0, 5)
	m.Set(1, 0, 5)
	m.Set(2, 0, 2)

	x, y, best := m.Max(func(v int) int64 { return int64(v) })
	assert.Equal(t, 1, x)
	assert.Equal(t, 0, y)
	assert.EqualValues(t, 5, best)
}

func TestMaxFindsGlobalMaximum(t *testing.T) {
	m := New(0, 3, 3)
	m.Set(2, 2, 42)

	x, y, best := m.Max(func(v int) int64 { return int64(v) })
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, y)
	assert.EqualValues(t, 42, best)
}
