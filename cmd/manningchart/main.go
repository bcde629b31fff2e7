package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"

	"github.com/bbsatvik01/manning-sheets-ikes/internal/config"
	"github.com/bbsatvik01/manning-sheets-ikes/internal/server"
	"github.com/bbsatvik01/manning-sheets-ikes/internal/util"
)

var (
	port     = flag.Int("port", 0, "listen port (overrides config.toml)")
	devMode  = flag.Bool("dev", false, "development mode: no browser, gin debug logging")
	dataDir  = flag.String("dataDir", "", "data directory (overrides config.toml)")
	location = flag.String("location", "", "default location profile (ikes or southside)")
)

func main() {
	flag.Parse()

	banner := color.New(color.FgHiMagenta, color.Bold)
	banner.Println("==========================================")
	banner.Println("  Manning Chart Generator")
	banner.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		color.Yellow("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if *location != "" {
		cfg.Schedule.Location = *location
	}

	resolvedDataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		color.Red("Failed to create data directory: %v", err)
		os.Exit(1)
	}
	fmt.Printf("Data directory: %s\n", resolvedDataDir)
	fmt.Printf("Default location: %s\n", cfg.Schedule.Location)

	setupLogging(resolvedDataDir)

	srv := server.NewServer(cfg)
	defer srv.Close()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)

	go func() {
		log.Printf("Starting Manning Chart web server on %s ...", url)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("Opening browser: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			color.Yellow("Could not open a browser automatically; visit %s", url)
		}
	} else {
		fmt.Printf("Dev mode: visit %s\n", url)
	}

	fmt.Println("\nPress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
}

// setupLogging mirrors the processing log to a file under logs/ so the
// web UI's log page has something to show.
func setupLogging(dataDir string) {
	logPath := filepath.Join(dataDir, config.LogsSubdir, "manning_app.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("WARNING: cannot open log file %q: %v", logPath, err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, logFile))
}
