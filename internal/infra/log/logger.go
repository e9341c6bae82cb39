// Package logs builds the process-wide slog logger from configuration.
// Production runs emit JSON for log shipping; local runs can switch to
// the text handler via the pretty flag.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"storefront/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Params holds dependencies for the logger, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the root logger every component shares. Request-scoped
// loggers derive from it by attaching the request id.
func New(params Params) (*slog.Logger, error) {
	cfg := params.Config.Env.Log

	level, ok := logLevels[strings.ToLower(cfg.Level)]
	if !ok {
		return nil, errors.Errorf("unknown log level: %s", cfg.Level)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler), nil
}
