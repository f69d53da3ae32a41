package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/pageprobe/internal/browser"
	"github.com/aleister1102/pageprobe/internal/config"
	"github.com/aleister1102/pageprobe/internal/datastore"
	"github.com/aleister1102/pageprobe/internal/inspector"
	"github.com/aleister1102/pageprobe/internal/logger"
	"github.com/aleister1102/pageprobe/internal/mcpserver"
	"github.com/aleister1102/pageprobe/internal/metrics"
)

func main() {
	// Flags
	globalConfigFile := flag.String("globalconfig", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("gc", "", "Alias for --globalconfig")

	outputDirFlag := flag.String("screenshot-dir", "", "Directory for screenshot files (overrides config file if set)")
	outputDirFlagAlias := flag.String("sd", "", "Alias for --screenshot-dir")
	flag.Parse()

	// Consolidate alias flags
	if *globalConfigFile == "" && *globalConfigFileAlias != "" {
		*globalConfigFile = *globalConfigFileAlias
	}
	if *outputDirFlag == "" && *outputDirFlagAlias != "" {
		*outputDirFlag = *outputDirFlagAlias
	}

	// Load Global Configuration
	gCfg, err := config.LoadGlobalConfig(*globalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load global config using path '%s': %v", *globalConfigFile, err)
	}

	// Initialize zerolog logger. Log output must stay off stdout because
	// stdout carries the JSON-RPC stream.
	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}

	// Override screenshot directory if the flag is set (takes precedence over config file)
	if *outputDirFlag != "" {
		gCfg.ScreenshotConfig.OutputDir = *outputDirFlag
		zLogger.Info().Str("output_dir", gCfg.ScreenshotConfig.OutputDir).Msg("Screenshot directory overridden by command line flag")
	}

	// Ensure the screenshot output directory exists before validation
	if gCfg.ScreenshotConfig.OutputDir != "" {
		if err := os.MkdirAll(gCfg.ScreenshotConfig.OutputDir, 0755); err != nil {
			zLogger.Fatal().Err(err).Str("directory", gCfg.ScreenshotConfig.OutputDir).Msg("Could not create screenshot output directory")
		}
	}

	// Validate the loaded configuration
	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}
	zLogger.Info().Msg("Configuration loaded and validated successfully")

	// Invocation history store (optional)
	var history *datastore.HistoryStore
	if gCfg.HistoryConfig.Enabled {
		history, err = datastore.NewHistoryStore(gCfg.HistoryConfig.DBPath, zLogger)
		if err != nil {
			zLogger.Fatal().Err(err).Str("db_path", gCfg.HistoryConfig.DBPath).Msg("Failed to open invocation history store")
		}
	}

	// Heartbeat metrics collector (optional)
	var collector *metrics.Collector
	if gCfg.MetricsConfig.Enabled {
		interval := time.Duration(gCfg.MetricsConfig.HeartbeatIntervalSecs) * time.Second
		collector = metrics.NewCollector(interval, zLogger)
		collector.Start()
	}

	// Browser manager launches Chrome lazily on the first tool call
	browserManager := browser.NewManager(gCfg.BrowserConfig, zLogger)
	insp := inspector.New(browserManager, gCfg.BrowserConfig, gCfg.ScreenshotConfig, zLogger)

	server := mcpserver.NewServer(insp, browserManager, history, collector, gCfg.ServerConfig, zLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Shut down cleanly on SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		zLogger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
		server.Shutdown()
	}()

	zLogger.Info().
		Str("server_name", gCfg.ServerConfig.Name).
		Str("version", gCfg.ServerConfig.Version).
		Msg("Starting MCP server on stdio")

	if err := server.ServeStdio(ctx); err != nil {
		zLogger.Error().Err(err).Msg("Server loop terminated with error")
	}
	server.Shutdown()
}
