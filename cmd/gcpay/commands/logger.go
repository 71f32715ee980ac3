package commands

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// ZerologAdapter exposes a zerolog logger through the gcpay.Logger
// interface so the HTTP layer can emit structured debug output.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates an adapter writing console output to w.
func NewZerologAdapter(w io.Writer) *ZerologAdapter {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}

	return &ZerologAdapter{
		logger: zerolog.New(console).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

// Debug logs at debug level.
func (a *ZerologAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

// Info logs at info level.
func (a *ZerologAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

// Warn logs at warn level.
func (a *ZerologAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

// Error logs at error level.
func (a *ZerologAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}
