package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/menu-editor/internal/app"
	"github.com/atomicstack/menu-editor/internal/config"
	"github.com/atomicstack/menu-editor/internal/logging"
	"github.com/atomicstack/menu-editor/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	terminal := probeTerminal(os.Stdout, os.Stdin)
	runtimeCfg.App = seedSize(runtimeCfg.App, terminal)
	events.App.Start(startupTracePayload(runtimeCfg, terminal))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalSize is what the first descriptor attached to a terminal reports.
type terminalSize struct {
	Source string `json:"source,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Err    string `json:"error,omitempty"`
}

func (s terminalSize) ok() bool {
	return s.Width > 0 && s.Height > 0
}

// probeTerminal asks each file in turn for its size and stops at the first
// one that is a terminal.
func probeTerminal(files ...*os.File) terminalSize {
	for _, f := range files {
		if f == nil {
			continue
		}
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		width, height, err := term.GetSize(fd)
		if err != nil {
			return terminalSize{Source: f.Name(), Err: err.Error()}
		}
		return terminalSize{Source: f.Name(), Width: width, Height: height}
	}
	return terminalSize{}
}

// seedSize lets the editor draw its first frame at the terminal's size.
// Explicit --width/--height values are left alone.
func seedSize(cfg app.Config, size terminalSize) app.Config {
	if !size.ok() {
		return cfg
	}
	if cfg.Width == 0 {
		cfg.InitialWidth = size.Width
	}
	if cfg.Height == 0 {
		cfg.InitialHeight = size.Height
	}
	return cfg
}

func startupTracePayload(cfg config.Config, size terminalSize) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"terminal": size,
		"menu": map[string]interface{}{
			"title":    cfg.App.Title,
			"currency": cfg.App.Currency,
			"ids":      cfg.App.IDs,
		},
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}
