package kit

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a production zap logger tagged with the service name.
// level accepts any zap level name ("debug", "info", "warn", ...).
func NewLogger(service, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.InitialFields = map[string]any{"service": service}
	return cfg.Build()
}
