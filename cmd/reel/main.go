package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/reelterm/reel/internal/catalog"
	"github.com/reelterm/reel/internal/command"
	"github.com/reelterm/reel/internal/config"
	"github.com/reelterm/reel/internal/log"
	"github.com/reelterm/reel/internal/shell"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	libraryFile := flag.String("library", "", "path to a library file (overrides config)")
	flag.Parse()

	if showVersion {
		fmt.Printf("reel %s\n", Version)
		return
	}

	if err := run(*libraryFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(libraryFile string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting reel", "version", Version)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("reel is interactive and needs a terminal")
	}

	if libraryFile == "" {
		libraryFile = cfg.Library.File
	}

	var cat *catalog.Catalog
	if libraryFile != "" {
		cat, err = catalog.LoadFile(libraryFile)
		if err != nil {
			return err
		}
		logger.Info("loaded library file", "path", libraryFile, "videos", cat.Len())
	} else {
		cat = catalog.Default()
		logger.Info("using built-in library", "videos", cat.Len())
	}

	svc := command.NewService(cat, nil, logger)

	if err := shell.Run(svc, cfg.Shell.Color, logger); err != nil {
		logger.Error("shell error", "error", err)
		return fmt.Errorf("shell error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
