// Package main is the entry point for the monitortray tray app.
//
// On Windows build with -ldflags "-H=windowsgui" so no console window opens;
// everything is logged to the log file instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/monitorctl/monitorctl/internal/buildinfo"
	"github.com/monitorctl/monitorctl/internal/config"
	"github.com/monitorctl/monitorctl/internal/daemon/tray"
	"github.com/monitorctl/monitorctl/internal/daemon/watcher"
	"github.com/monitorctl/monitorctl/internal/models"
	"github.com/monitorctl/monitorctl/internal/platform"
	"github.com/monitorctl/monitorctl/internal/startup"
	"github.com/monitorctl/monitorctl/internal/traymodel"
)

func main() {
	logFile := flag.String("log-file", "", "Log file path (default: <config dir>/monitortray.log, \"-\" for stderr)")
	noWatch := flag.Bool("no-watch", false, "Do not reload when the config file changes")
	showVersion := flag.Bool("version", false, "Print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("monitortray %s (%s)\n", buildinfo.Version, buildinfo.Codename)
		fmt.Printf("  Commit: %s\n  Built:  %s\n", buildinfo.CommitHash, buildinfo.BuildDate)
		return
	}

	log.SetPrefix("[monitortray] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure global directory exists
	if err := config.EnsureGlobalDir(); err != nil {
		log.Fatalf("Failed to create global directory: %v", err)
	}

	closeLog, err := setupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	// Check if the tray is already running
	running, info, err := config.IsTrayRunning()
	if err != nil {
		log.Fatalf("Failed to check tray status: %v", err)
	}
	if running {
		log.Fatalf("monitortray already running (PID %d)", info.PID)
	}

	backend, err := platform.New()
	if err != nil {
		log.Fatalf("Failed to initialise display backend: %v", err)
	}

	var sm traymodel.StartupManager
	if m, err := startup.New(); err != nil {
		log.Printf("Start at login unavailable: %v", err)
	} else {
		sm = m
	}

	store := config.NewFile()
	model := traymodel.New(backend, store, sm)
	if msg := model.LastError(); msg != "" {
		log.Printf("Started with error: %s", msg)
	}

	if err := config.SaveTrayInfo(models.NewTrayInfo(buildinfo.Version, os.Getpid())); err != nil {
		log.Fatalf("Failed to write tray info: %v", err)
	}
	log.Printf("monitortray %s started (PID %d)", buildinfo.Version, os.Getpid())

	var w *watcher.Watcher
	reloads := make(chan struct{})
	if !*noWatch {
		w = startWatcher(store, reloads)
	}

	// Handle OS signals: quit tray on SIGINT/SIGTERM
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down...", sig)
		tray.Quit()
	}()

	onExit := func() {
		if w != nil {
			w.Stop()
		}
		if err := config.RemoveTrayInfo(); err != nil {
			log.Printf("Failed to remove tray info: %v", err)
		}
		log.Println("monitortray stopped")
	}

	// This blocks the main goroutine until the tray exits.
	// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
	tray.Run(model, tray.Options{
		Startup: sm,
		Reloads: reloads,
		OnExit:  onExit,
	})
}

// setupLogging points the standard logger at the log file.
func setupLogging(path string) (func(), error) {
	if path == "-" {
		return func() {}, nil
	}
	if path == "" {
		var err error
		if path, err = config.LogFile(); err != nil {
			return nil, err
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(f, os.Stderr))
	return func() { _ = f.Close() }, nil
}

// startWatcher forwards config file changes to reloads. Failing to watch is
// not fatal; the tray still offers "Reload config".
func startWatcher(store *config.File, reloads chan<- struct{}) *watcher.Watcher {
	path, err := store.Path()
	if err != nil {
		log.Printf("Config watcher disabled: %v", err)
		return nil
	}

	w, err := watcher.New(path)
	if err != nil {
		log.Printf("Config watcher disabled: %v", err)
		return nil
	}
	if err := w.Start(); err != nil {
		log.Printf("Config watcher disabled: %v", err)
		w.Stop()
		return nil
	}

	go func() {
		for range w.Events() {
			reloads <- struct{}{}
		}
	}()
	return w
}
