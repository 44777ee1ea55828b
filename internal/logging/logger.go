package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level slog.Level
	// File, when set, receives JSON records in addition to the console,
	// rotated by size.
	File string
}

// InitLogger installs the default logger. The returned closer flushes the
// log file, if any.
func InitLogger(opts Options) io.Closer {
	return initLogger(os.Stdout, opts)
}

func initLogger(console io.Writer, opts Options) io.Closer {
	var handler slog.Handler = tint.NewHandler(console, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			slog.New(handler).Error("[Logger] Failed to create log directory",
				slog.String("file", opts.File),
				slog.String("error", err.Error()))
		} else {
			file := &lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    10,
				MaxBackups: 10,
				MaxAge:     30,
				Compress:   true,
			}
			handler = fanout{
				handler,
				slog.NewJSONHandler(file, &slog.HandlerOptions{Level: opts.Level}),
			}
			closer = file
		}
	}

	slog.SetDefault(slog.New(handler))
	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fanout sends every record to each handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
