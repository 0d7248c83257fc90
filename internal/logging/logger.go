// Package logging builds the zap logger used by the page. The terminal is
// owned by the UI, so logs go to a file as JSON lines.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names.
const (
	FieldComponent = "component"
	FieldSession   = "session"
	FieldIndex     = "index"
	FieldTitle     = "title"
	FieldFrom      = "from"
	FieldState     = "state"
	FieldURL       = "url"
	FieldWidth     = "width"
	FieldHeight    = "height"
	FieldError     = "error"
)

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// New opens (or creates) the log file at path and returns a logger tagged
// with a fresh session id, plus a close func that flushes and closes the
// file. An empty path yields a no-op logger.
func New(path string, debug bool) (*zap.SugaredLogger, func() error, error) {
	if path == "" {
		return Nop(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), level)

	l := zap.New(core).Sugar().With(FieldSession, uuid.NewString())
	closeFn := func() error {
		_ = l.Sync()
		return f.Close()
	}
	return l, closeFn, nil
}

// Component returns a child logger tagged with a component name.
func Component(l *zap.SugaredLogger, name string) *zap.SugaredLogger {
	if l == nil {
		l = Nop()
	}
	return l.Named(name).With(FieldComponent, name)
}
