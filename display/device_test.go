package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimDeviceID(t *testing.T) {
	assert.Equal(t, "DISPLAY1", TrimDeviceID(`\\.\DISPLAY1`))
	assert.Equal(t, "DISPLAY2", TrimDeviceID(`\\?\DISPLAY2`))
	assert.Equal(t, "DISPLAY1", TrimDeviceID("\\\\.\\DISPLAY1\x00\x00\x00"))
	assert.Equal(t, "DISPLAY3", TrimDeviceID("DISPLAY3"))
}

func TestResolveDeviceIDDeduplicates(t *testing.T) {
	seen := make(map[string]int)

	assert.Equal(t, "DISPLAY1", ResolveDeviceID(`\\.\DISPLAY1`, seen))
	assert.Equal(t, "DISPLAY1-1", ResolveDeviceID(`\\.\DISPLAY1`, seen))
	assert.Equal(t, "DISPLAY1-2", ResolveDeviceID(`\\.\DISPLAY1`, seen))
	assert.Equal(t, "DISPLAY2", ResolveDeviceID(`\\.\DISPLAY2`, seen))
}

func TestResolveDeviceIDAccumulatorIsPerSnapshot(t *testing.T) {
	seen := make(map[string]int)
	ResolveDeviceID(`\\.\DISPLAY1`, seen)

	// A fresh accumulator starts the numbering over.
	fresh := make(map[string]int)
	assert.Equal(t, "DISPLAY1", ResolveDeviceID(`\\.\DISPLAY1`, fresh))
}
