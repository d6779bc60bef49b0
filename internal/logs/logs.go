package logs

import (
	"context"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"selector-grader/config"
)

// NewLogger builds a stderr logger so stdout stays reserved for reports.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	return Build(cfg.LogLevel)
}

func Build(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(levelFromString(level))
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}

func NewSugaredLogger(l *zap.Logger) *zap.SugaredLogger {
	return l.Sugar()
}

func RegisterLifecycle(lc fx.Lifecycle, l *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = l.Sync()
			return nil
		},
	})
}

func levelFromString(raw string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
