package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"concord/auth"
	"concord/broadcast"
	"concord/handlers"
	"concord/internal"
	"concord/repositories"
	"concord/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so deferred cleanups (database, broker) always
// execute before the process exits.
func run() (int, error) {
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	broker, err := broadcast.NewNatsBroker(config.NatsURL, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("broker connection failed: %w", err)
	}
	defer func() {
		logger.Info("Closing NATS connection...")
		broker.Close()
	}()

	scopes := repositories.NewScopeRepository(db, logger)
	messages := repositories.NewMessageRepository(db, logger, config.LimitMessages)
	resolver := services.NewMembershipResolver(scopes, logger)
	messageService := services.NewMessageService(resolver, messages, broker, logger)

	app := fiber.New()
	app.Use(auth.Middleware([]byte(config.JWTSecret)))
	handlers.NewMessageHandler(messageService, logger).Register(app)
	handlers.NewGatewayHandler(broker, resolver, logger).Register(app)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(fmt.Sprintf("%s:%d", config.Host, config.Port))
	}()
	logger.Info("Server listening", "host", config.Host, "port", config.Port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return exitRuntime, fmt.Errorf("server error: %w", err)
		}
	case sig := <-stop:
		logger.Info("Shutting down", "signal", sig.String())
		if err := app.Shutdown(); err != nil {
			return exitRuntime, fmt.Errorf("shutdown error: %w", err)
		}
	}
	return exitOK, nil
}
