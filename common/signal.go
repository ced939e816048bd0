package common

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// WaitUntilSignal blocks until the process receives SIGINT or SIGTERM, then
// shuts the closer down and exits with a status reflecting the shutdown
// outcome.
func WaitUntilSignal(closer io.Closer) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	sig := <-c
	log.Info().
		Str("signal", sig.String()).
		Msg("Received signal, exiting")

	if err := closer.Close(); err != nil {
		log.Error().
			Err(err).
			Msg("Failed when shutting down server")
		os.Exit(1)
	}

	log.Info().Msg("Shutdown completed")
	os.Exit(0)
}
