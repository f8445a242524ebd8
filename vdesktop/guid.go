// Package vdesktop resolves the identifier of the currently active virtual
// desktop. Explorer publishes the active desktop's GUID in the registry;
// the exporter only needs that one value, so no COM interop is involved.
package vdesktop

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FormatDesktopID renders the 16 raw GUID bytes (Windows mixed-endian
// layout: the first three fields little-endian, the rest as-is) as the
// uppercase brace-wrapped string the editor consumes.
func FormatDesktopID(raw []byte) (string, error) {
	if len(raw) != 16 {
		return "", fmt.Errorf("desktop id: want 16 GUID bytes, got %d", len(raw))
	}
	var be [16]byte
	be[0], be[1], be[2], be[3] = raw[3], raw[2], raw[1], raw[0]
	be[4], be[5] = raw[5], raw[4]
	be[6], be[7] = raw[7], raw[6]
	copy(be[8:], raw[8:])

	u, err := uuid.FromBytes(be[:])
	if err != nil {
		return "", fmt.Errorf("desktop id: %w", err)
	}
	return "{" + strings.ToUpper(u.String()) + "}", nil
}
