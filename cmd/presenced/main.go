package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"presence-lab/auth"
	"presence-lab/domain"
	"presence-lab/infrastructure/ws"
	"presence-lab/internal"
	"presence-lab/moderation"
	"presence-lab/observability"
	"presence-lab/repositories"
	"presence-lab/runtime/workers"
	"presence-lab/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// main is a thin wrapper so run's deferred cleanups always execute
	// before the process exits.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "presenced terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Storage (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Moderation
	censoredWords, err := loadCensoredWords(config.CensoredWordsFile)
	if err != nil {
		return exitConfig, err
	}
	moderator, err := moderation.NewModerator(censoredWords, charReplacement)
	if err != nil {
		return exitRuntime, fmt.Errorf("building moderator: %w", err)
	}

	// 4. Directory, persistence, sessions
	directory := domain.NewDirectory(logger)
	participantRepo := repositories.NewParticipantRepository(db, logger)
	credentialRepo := repositories.NewCredentialRepository(db, logger)
	tokens := auth.NewTokenManager(config.TokenSecret, config.AuthTokenDuration)
	sessionService := services.NewSessionService(
		logger, directory, participantRepo, credentialRepo, tokens, moderator)

	if err := sessionService.RestoreDirectory(); err != nil {
		return exitRuntime, fmt.Errorf("restoring directory: %w", err)
	}

	// 5. Gateway and maintenance workers under supervision
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	stats := observability.NewGatewayStats(logger)
	gateway := ws.NewServer(logger, sessionService, stats, address, config.ConnectionBufferSize)

	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(
		gateway,
		workers.NewProcessMonitorWorker(logger, stats, config.MetricInterval),
		workers.NewStorageGCWorker(db, logger, config.StorageGCInterval),
	)

	logger.Info("presenced starting", "address", address, "at_level", config.LogLevel)
	supervisor.Run(ctx)

	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	return options
}

// loadCensoredWords reads one word per line; blank lines and #-comments are
// skipped. A nil path disables moderation entirely.
func loadCensoredWords(path *string) ([]string, error) {
	if path == nil {
		return nil, nil
	}
	file, err := os.Open(*path)
	if err != nil {
		return nil, fmt.Errorf("opening censored words file: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}
