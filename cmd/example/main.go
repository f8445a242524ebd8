//go:build windows

// Command example captures the current monitor topology and writes the
// editor-parameters document, printing what the zone editor would read.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"zonesnap"
	"zonesnap/settings"
	"zonesnap/snapshot"
)

func main() {
	settingsPath := flag.String("settings", "", "path to a zonesnap settings file (TOML)")
	span := flag.Bool("span", false, "force spanned capture regardless of settings")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s := settings.Default()
	if *settingsPath != "" {
		var err error
		s, err = settings.Load(*settingsPath)
		if err != nil {
			log.Error("load settings", "error", err)
			os.Exit(1)
		}
	}
	if *span {
		s.SpanZonesAcrossMonitors = true
	}

	path, err := zonesnap.Export(s, log)
	if err != nil {
		if errors.Is(err, zonesnap.ErrNoTargetMonitor) {
			log.Error("no display to open the editor on")
		}
		os.Exit(1)
	}
	fmt.Println("editor parameters written to", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("read back document", "error", err)
		os.Exit(1)
	}
	var doc snapshot.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Error("decode document", "error", err)
		os.Exit(1)
	}
	for _, m := range doc.Monitors {
		marker := " "
		if m.IsSelected {
			marker = "*"
		}
		fmt.Printf("%s %-14s dpi=%-3d work=(%d,%d %dx%d) monitor=%dx%d\n",
			marker, m.MonitorName, m.DPI,
			m.Left, m.Top, m.WorkAreaWidth, m.WorkAreaHeight,
			m.MonitorWidth, m.MonitorHeight)
	}
}
