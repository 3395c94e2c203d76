package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

var (
	mu     sync.Mutex
	level  = new(slog.LevelVar)
	output io.Writer = os.Stderr
	logger *slog.Logger
)

func Println(v ...interface{}) {
	current().Info(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func Printf(format string, v ...interface{}) {
	current().Info(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
}

// Debugf logs only when debug output has been enabled with SetDebug.
func Debugf(format string, v ...interface{}) {
	l := current()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
}

func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = newLogger(w)
}

func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = newLogger(output)
	}
	return logger
}

func newLogger(w io.Writer) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok && f == os.Stderr {
		noColor = os.Getenv("NO_COLOR") != ""
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.StampMicro,
		NoColor:    noColor,
	}))
}
