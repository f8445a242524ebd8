// Package zonesnap captures the current multi-monitor desktop geometry and
// exports it as a versioned document for an out-of-process zone editor.
// It queries raw geometry on a dedicated DPI-unaware thread, de-duplicates
// device identifiers across displays sharing an adapter signature, and
// supports both per-monitor and spanned-desktop capture modes.
//
// Key Features:
// - Raw geometry capture under a thread-scoped DPI-unaware context
// - Stable, de-duplicated device identifiers
// - Per-monitor and spanned capture modes
// - Atomic hand-off document writes
//
// Example:
//
//	s, err := settings.Load(path)
//	if err != nil {
//	    panic(err)
//	}
//
//	out, err := zonesnap.Export(s, nil)
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println("editor parameters written to", out)
package zonesnap
