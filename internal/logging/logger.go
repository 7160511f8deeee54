// Package logging provides the shared zap logger used by every internal package.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var (
	L *zap.Logger        = zap.NewNop()
	S *zap.SugaredLogger = L.Sugar()

	atom = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Initialize replaces L and S with a logger writing to w at the given level.
// A terminal gets the colored console encoder; anything else gets JSON.
func Initialize(level string, w io.Writer) (*zap.Logger, error) {
	if err := SetLevel(level); err != nil {
		return nil, err
	}

	var encoder zapcore.Encoder
	if isTerminal(w) {
		encoder = zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey: "message",

			LevelKey:    "level",
			EncodeLevel: zapcore.CapitalColorLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.ISO8601TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		})
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), atom)
	logger := zap.New(core, zap.AddCaller())

	L = logger
	S = logger.Sugar()
	return logger, nil
}

// SetLevel changes the level of the logger built by Initialize.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	atom.SetLevel(lvl)
	return nil
}

// Use installs an already built logger, mostly for tests.
func Use(logger *zap.Logger) {
	L = logger
	S = logger.Sugar()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
