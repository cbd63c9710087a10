package logger

import (
	"fmt"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceName = "bsmart"
	timeLayout  = "15:04:05 02-01-2006"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// encoderConfig returns the layout for a format. Console output is colored for terminals,
// json keeps RFC 3339 timestamps and plain levels for log shippers.
func encoderConfig(format string) (zapcore.EncoderConfig, error) {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	switch format {
	case "", "console":
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		cfg.EncodeTime = zapcore.RFC3339TimeEncoder
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	default:
		return zapcore.EncoderConfig{}, fmt.Errorf("unsupported log format: %s", format)
	}
	return cfg, nil
}

// InitLogger builds the process logger from LOG_LVL and LOG_FORMAT and installs it as zap.L().
func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}
	encodeConfig, err := encoderConfig(conf.LogFormat)
	if err != nil {
		return err
	}
	encoding := conf.LogFormat
	if encoding == "" {
		encoding = "console"
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         encoding,
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build(zap.Fields(zap.String("service", serviceName)))
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger.Named(serviceName))
	zap.L().Debug("logger ready", zap.String("level", lvl.String()), zap.String("format", encoding))

	return nil
}
