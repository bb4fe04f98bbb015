package logging

import (
	"go.uber.org/zap/zapcore"
)

// NewMultiCore creates a zapcore.Core that tees output to a console writer and
// a file writer, both gated by the same level enabler.
//
// The file output always uses JSON. The console uses colored human-readable
// output in development mode and JSON otherwise.
//
// Example:
//
//	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
//	core := NewMultiCore(level, zapcore.Lock(os.Stdout), NewFileWriter("app.log"), true)
//	logger := zap.New(core)
func NewMultiCore(level zapcore.LevelEnabler, consoleWriter, fileWriter zapcore.WriteSyncer, isDev bool) zapcore.Core {
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(NewEncoderConfig()),
		fileWriter,
		level,
	)

	var consoleEncoder zapcore.Encoder
	if isDev {
		consoleEncoder = zapcore.NewConsoleEncoder(NewConsoleEncoderConfig())
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(NewEncoderConfig())
	}
	consoleCore := zapcore.NewCore(consoleEncoder, consoleWriter, level)

	return zapcore.NewTee(consoleCore, fileCore)
}
