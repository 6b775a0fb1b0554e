package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayn2op/grapheditor"
	"github.com/ayn2op/grapheditor/termhost"
)

func main() {
	os.Exit(run())
}

// run starts the editor and returns the process exit code. Deferred cleanup
// runs before main exits.
func run() int {
	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		return 1
	}
	level, err := cfg.Level()
	if err != nil {
		slog.Error("load config", "error", err)
		return 1
	}
	keyMap, err := cfg.KeyMap()
	if err != nil {
		slog.Error("load config", "error", err)
		return 1
	}

	// The terminal owns stdout, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Error("open log file", "path", cfg.LogFile, "error", err)
		return 1
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	grapheditor.SetLogger(logger)

	editor := grapheditor.NewEditor(
		grapheditor.WithSize(cfg.Width, cfg.Height),
		grapheditor.WithZoom(cfg.Zoom),
	)
	buildScene(editor.RootStage())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := termhost.NewApplication(editor, termhost.WithFPS(cfg.FPS), termhost.WithKeyMap(keyMap))
	defer func() {
		if surface := app.Surface(); surface != nil {
			if err := surface.Close(); err != nil {
				slog.Warn("close surface", "error", err)
			}
		}
	}()
	if err := app.Run(ctx); err != nil {
		slog.Error("run", "error", err)
		return 1
	}
	return 0
}
