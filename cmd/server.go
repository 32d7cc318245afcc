//go:build !integration

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

const shutdownTimeout = 35 * time.Second

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	listener, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}

	stop := make(chan os.Signal, 1)

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	return runServer(httpServer, listener, logger, stop, shutdownTimeout)
}

// runServer serves until stop fires, then returns only once in-flight
// requests have drained or the drain timeout has passed.
func runServer(httpServer *http.Server, listener net.Listener, logger *zerolog.Logger, stop <-chan os.Signal, timeout time.Duration) int {
	done := make(chan error, 1)

	go func() {
		logger.
			Info().
			Msg("Listening on address " + listener.Addr().String())
		done <- httpServer.Serve(listener)
	}()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.
				Error().
				Err(err).
				Msg("Server failed")
			return 1
		}

		return 0
	case sig := <-stop:
		logger.
			Info().
			Str("signal", sig.String()).
			Msg("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Shutdown blocks until every connection is idle or ctx expires
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.
			Error().
			Err(err).
			Msg("Graceful shutdown failed")
		return 1
	}

	if err := <-done; err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}

	logger.Info().Msg("Server stopped")
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:]))
}
