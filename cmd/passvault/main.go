package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/iudanet/passvault/internal/cli"
	"github.com/iudanet/passvault/internal/config"
	"github.com/iudanet/passvault/internal/ledger"
	"github.com/iudanet/passvault/internal/ledger/mongodb"
	"github.com/iudanet/passvault/internal/netwatch"
	"github.com/iudanet/passvault/internal/pin"
	"github.com/iudanet/passvault/internal/storage/boltdb"
	"github.com/iudanet/passvault/internal/vault"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "", "Path to local database (overrides PASSVAULT_DB_PATH)")
	offline := flag.Bool("offline", false, "Work against the local cache only")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()
	cfg := config.Load()
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Открываем локальный кэш
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Подключаемся к удаленному ledger, если не задан offline-режим.
	// Недоступный ledger не фатален: работаем с локальным кэшем.
	forceOffline := *offline || cfg.ForceOffline
	var (
		credLedger ledger.CredentialLedger
		pinLedger  ledger.PinLedger
	)
	if !forceOffline {
		remote, err := mongodb.New(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Warn("remote ledger unavailable, working offline", "error", err)
			forceOffline = true
		} else {
			defer func() {
				if err := remote.Close(ctx); err != nil {
					logger.Error("failed to close ledger connection", "error", err)
				}
			}()
			credLedger = remote
			pinLedger = remote
		}
	}

	gate := netwatch.NewGate(!forceOffline)
	if !forceOffline {
		monitor := netwatch.NewMonitor(gate, cfg.ProbeURL, netwatch.DefaultProbeInterval, logger)
		go monitor.Run(ctx)
	}

	vaultService := vault.NewService(credLedger, boltStorage, gate, logger)
	pinService := pin.NewService(pinLedger, logger)
	session := pin.NewSession(pinService, boltStorage, logger)

	c := cli.New(vaultService, pinService, session, gate)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("PassVault Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
