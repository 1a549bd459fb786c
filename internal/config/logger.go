package config

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configura o logger global do zerolog.
// Em desenvolvimento o log sai formatado no terminal; fora dele, em JSON.
func SetupLogger(c *Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if c.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}) // Log bonito no terminal
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("service", "corresponsal-api").Logger()
}
