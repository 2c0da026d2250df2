// Package logging builds the zap loggers used across the catalog.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger flavour. Env is "prod" (JSON) or
// "local"/"dev"/"test" (console). Level overrides the default level when set.
// LogstashAddr, when set, mirrors every entry as JSON to that TCP input.
type Options struct {
	Env          string
	Level        string
	LogstashAddr string
}

// NewLogger returns the logger and a cleanup func that flushes it and closes
// the Logstash connection.
func NewLogger(opts Options) (*zap.Logger, func(), error) {
	var cfg zap.Config
	switch opts.Env {
	case "prod":
		cfg = zap.NewProductionConfig()
	case "local", "dev", "test", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, nil, fmt.Errorf("unknown environment %q for logger", opts.Env)
	}
	// stdout is reserved for command output.
	cfg.OutputPaths = []string{"stderr"}

	if opts.Level != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	buildOpts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}

	var sink *LogstashSink
	if opts.LogstashAddr != "" {
		var err error
		sink, err = NewLogstashSink(opts.LogstashAddr)
		if err != nil {
			return nil, nil, err
		}
		shipped := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			sink,
			cfg.Level,
		)
		buildOpts = append(buildOpts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, shipped)
		}))
	}

	l, err := cfg.Build(buildOpts...)
	if err != nil {
		if sink != nil {
			_ = sink.Close()
		}
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	cleanup := func() {
		_ = l.Sync()
		if sink != nil {
			_ = sink.Close()
		}
	}
	return l, cleanup, nil
}
