package display

import (
	"fmt"
	"strings"
)

// TrimDeviceID reduces a raw adapter string to its base signature: the
// `\\.\` or `\\?\` device-namespace prefix is dropped, along with any
// trailing NULs left over from fixed-size UTF-16 buffers.
func TrimDeviceID(raw string) string {
	s := strings.TrimRight(raw, "\x00")
	s = strings.TrimPrefix(s, `\\.\`)
	s = strings.TrimPrefix(s, `\\?\`)
	return s
}

// ResolveDeviceID maps a raw adapter string to an identifier unique within
// one snapshot. Multiple displays can report the same adapter signature
// (duplicate GPU outputs); the first keeps the base signature and each
// repeat gets a numeric suffix. seen counts instances per base signature
// and must be fresh for every snapshot.
func ResolveDeviceID(raw string, seen map[string]int) string {
	base := TrimDeviceID(raw)
	n := seen[base]
	seen[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}
