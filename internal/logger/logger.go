// Package logger настраивает журнал приложения на базе zap.
// Терминал занят интерфейсом, поэтому журнал пишется только в файл.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config настройки журнала
type Config struct {
	Level      string
	OutputPath string // Пустой путь отключает журнал
	MaxSize    int    // Мегабайты до ротации
	MaxBackups int
	MaxAge     int // Дни
	Compress   bool
}

// DefaultConfig возвращает настройки ротации по умолчанию для файла path
func DefaultConfig(level, path string) Config {
	return Config{
		Level:      level,
		OutputPath: path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

// ParseLevel переводит строковый уровень в zapcore.Level.
// Неизвестное значение дает InfoLevel.
func ParseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// New создает журнал. Каждому журналу присваивается ID сессии.
func New(config Config) (*zap.Logger, error) {
	if config.OutputPath == "" {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(config.OutputPath), 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории журнала: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	// Ротация файла через lumberjack
	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   config.OutputPath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	})

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		fileWriter,
		ParseLevel(config.Level),
	)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	).With(zap.String("session", uuid.NewString())), nil
}
