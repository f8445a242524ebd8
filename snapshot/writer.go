package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the reserved editor-parameters file name.
const DefaultFileName = "editor-parameters.json"

// saveDirName is the exporter's folder under the user cache directory
// (%LOCALAPPDATA% on Windows).
const saveDirName = "ZoneSnap"

// DefaultPath returns the save location for the editor-parameters file.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve save folder: %w", err)
	}
	return filepath.Join(dir, saveDirName, DefaultFileName), nil
}

// Write persists doc at path atomically: the bytes land in a temporary
// file in the destination directory first and rename swaps it in, so a
// concurrent reader never observes a partial document. The destination
// directory is created if missing.
func Write(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode editor parameters: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create save folder: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write editor parameters: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write editor parameters: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write editor parameters: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace editor parameters: %w", err)
	}
	return nil
}
