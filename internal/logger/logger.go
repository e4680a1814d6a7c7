package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var ProgramLevel = new(slog.LevelVar)

// SetupLogger initialiserer standardloggeren. format er "json" eller "text";
// alt annet gir JSON.
func SetupLogger(w io.Writer, format string) {
	if w == nil {
		w = os.Stdout
	}
	ProgramLevel.Set(slog.LevelInfo)

	opts := &slog.HandlerOptions{
		Level:     ProgramLevel,
		AddSource: false,
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// SetDebug setter loggnivået til Debug hvis debug er true.
func SetDebug(debug bool) {
	if debug {
		ProgramLevel.Set(slog.LevelDebug)
	}
}
