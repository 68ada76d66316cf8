package log

import (
	"fmt"
	"os"

	"github.com/jainam30/mohil-enterprise/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel 未知或空字串一律 info
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "dpanic":
		return zap.DPanicLevel
	case "panic":
		return zap.PanicLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

func NewLogger(conf *config.Configuration) (*zap.Logger, error) {
	if conf == nil {
		return nil, fmt.Errorf("logger: nil configuration")
	}
	atomic := zap.NewAtomicLevelAt(ParseLevel(conf.Log.Level))

	// JSON、ISO8601 時間、caller/level 鍵
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	encCfg.TimeKey = "ts"
	encCfg.CallerKey = "caller"
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(encCfg)

	// warn 以下走 stdout，warn 以上走 stderr
	stdoutLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return atomic.Enabled(l) && l < zapcore.WarnLevel
	})
	stderrLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return atomic.Enabled(l) && l >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), stdoutLevel),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), stderrLevel),
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)).
		With(zap.String("service", conf.App.Name))
	logger.Info(fmt.Sprintf("zap logger set level: %s", atomic.Level()))

	return logger, nil
}
