package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/habitsync/internal/client/api"
	"github.com/iudanet/habitsync/internal/client/auth"
	"github.com/iudanet/habitsync/internal/client/cli"
	"github.com/iudanet/habitsync/internal/client/connectivity"
	"github.com/iudanet/habitsync/internal/client/data"
	"github.com/iudanet/habitsync/internal/client/iocli"
	"github.com/iudanet/habitsync/internal/client/storage/boltdb"
	"github.com/iudanet/habitsync/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", defaultDBPath(), "Path to local database")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	// Interactive process: Ctrl+C cancels in-flight work cleanly,
	// which matters for the long-lived watch command
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	args := flag.Args()
	command := ""
	if len(args) > 0 {
		command = args[0]
	}

	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(apiClient, store, logger)
	habits := data.NewService(store)
	monitor := connectivity.New(*serverURL+"/api/v1/health", logger)

	engine := sync.New(apiClient, store, store, monitor, authService, logger)
	defer engine.Close()

	// Every committed local mutation pokes the engine; the debounce
	// inside collapses bursts
	store.SetOnQueueChange(engine.QueueChanged)

	// Signing in flushes whatever was queued while signed out
	defer authService.OnChange(func(signedIn bool) {
		if signedIn {
			engine.Sync(ctx)
		}
	})()

	c := cli.New(iocli.NewStdio(), authService, habits, engine, monitor, store)
	if err := c.Run(ctx, command, argsTail(args)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func argsTail(args []string) []string {
	if len(args) < 2 {
		return nil
	}
	return args[1:]
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "habitsync.db"
	}
	return home + "/.habitsync.db"
}

func printVersion() {
	fmt.Printf("habitsync client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
