package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinedRect(t *testing.T) {
	infos := []Info{
		{
			WorkArea: Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1040},
			Monitor:  Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
		},
		{
			WorkArea: Rect{Left: 1920, Top: 0, Right: 3000, Bottom: 1040},
			Monitor:  Rect{Left: 1920, Top: 0, Right: 3000, Bottom: 1080},
		},
	}

	work := CombinedRect(infos, WorkRect)
	assert.Equal(t, Rect{Left: 0, Top: 0, Right: 3000, Bottom: 1040}, work)
	assert.Equal(t, int32(3000), work.Width())
	assert.Equal(t, int32(1040), work.Height())

	full := CombinedRect(infos, MonitorRect)
	assert.Equal(t, Rect{Left: 0, Top: 0, Right: 3000, Bottom: 1080}, full)
}

func TestCombinedRectNegativeOrigin(t *testing.T) {
	// Secondary display to the left of the primary.
	infos := []Info{
		{Monitor: Rect{Left: 0, Top: 0, Right: 2560, Bottom: 1440}},
		{Monitor: Rect{Left: -1920, Top: 200, Right: 0, Bottom: 1280}},
	}
	got := CombinedRect(infos, MonitorRect)
	assert.Equal(t, Rect{Left: -1920, Top: 0, Right: 2560, Bottom: 1440}, got)
}

func TestCombinedRectEmpty(t *testing.T) {
	assert.Equal(t, Rect{}, CombinedRect(nil, WorkRect))
}

func TestToLogical(t *testing.T) {
	// 200% scaling halves the extent.
	w, h := ToLogical(192, 3840, 2160)
	assert.Equal(t, int32(1920), w)
	assert.Equal(t, int32(1080), h)

	// 100% scaling is the identity.
	w, h = ToLogical(96, 1920, 1080)
	assert.Equal(t, int32(1920), w)
	assert.Equal(t, int32(1080), h)

	// 150% scaling rounds to nearest.
	w, h = ToLogical(144, 1000, 500)
	assert.Equal(t, int32(667), w)
	assert.Equal(t, int32(333), h)
}

func TestToLogicalZeroDPIPassthrough(t *testing.T) {
	w, h := ToLogical(0, 1234, 567)
	assert.Equal(t, int32(1234), w)
	assert.Equal(t, int32(567), h)
}
