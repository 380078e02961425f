package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options logger sozlamalari
type Options struct {
	Level     string // debug, info, warn, error
	File      string // bo'sh bo'lsa stderr
	MaxSizeMB int
}

// New JSON formatdagi zap logger yaratish. File berilsa lumberjack bilan aylantiriladi.
// Qaytarilgan close funksiyasi loggerni sync qiladi va log faylini yopadi.
func New(opts Options) (*zap.Logger, func() error, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	var (
		sink  zapcore.WriteSyncer
		rotor *lumberjack.Logger
	)
	if opts.File == "" {
		sink = zapcore.Lock(os.Stderr)
	} else {
		maxSize := opts.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 10
		}
		rotor = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		sink = zapcore.AddSync(rotor)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, level)
	logger := zap.New(core, zap.AddCaller())

	closeFn := func() error {
		// stderr uchun Sync ba'zi platformalarda xato beradi, e'tiborsiz qoldiriladi
		_ = logger.Sync()
		if rotor != nil {
			return rotor.Close()
		}
		return nil
	}
	return logger, closeFn, nil
}
