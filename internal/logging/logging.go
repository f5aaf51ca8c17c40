package logging

import (
    "os"
    "time"
    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"
)

// Init wires the global logger. Diagnostics go to stderr so that entry-script
// output captured on stdout stays clean.
func Init(debug bool) {
    output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
    log.Logger = zerolog.New(output).With().Timestamp().Logger()
    if debug {
        zerolog.SetGlobalLevel(zerolog.DebugLevel)
    } else {
        zerolog.SetGlobalLevel(zerolog.InfoLevel)
    }
}
