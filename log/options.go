package log

import (
	"go.uber.org/zap/zapcore"
)

type Level int8

const (
	DebugLevel = Level(zapcore.DebugLevel)
	InfoLevel  = Level(zapcore.InfoLevel)
	WarnLevel  = Level(zapcore.WarnLevel)
	ErrorLevel = Level(zapcore.ErrorLevel)
	PanicLevel = Level(zapcore.PanicLevel)
	FatalLevel = Level(zapcore.FatalLevel)
)

type (
	OutputEncoder func(config zapcore.EncoderConfig) zapcore.Encoder
	LevelEncoder  zapcore.LevelEncoder
	CallerEncoder zapcore.CallerEncoder
)

var (
	JsonOutputEncoder OutputEncoder = func(config zapcore.EncoderConfig) zapcore.Encoder {
		return zapcore.NewJSONEncoder(config)
	}
	ConsoleOutputEncoder OutputEncoder = func(config zapcore.EncoderConfig) zapcore.Encoder {
		return zapcore.NewConsoleEncoder(config)
	}
	BracketLevelEncoder LevelEncoder = func(level zapcore.Level, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString("[" + level.CapitalString() + "]")
	}
)

type Options struct {
	//output mode, the optional value is JsonOutputEncoder ConsoleOutputEncoder
	outputEncoder OutputEncoder
	//log level, the optional value is DebugLevel InfoLevel WarnLevel ErrorLevel FatalLevel PanicLevel
	level Level
	//report callerEncoder
	callerEncoder CallerEncoder
	//report levelEncoder
	levelEncoder LevelEncoder
	//report Warn level stack trace
	stacktrace bool
	//time layout
	timeLayout string
	//init the named
	name string
}

func (o *Options) WithStacktrace(stacktrace bool) *Options {
	o.stacktrace = stacktrace
	return o
}

func (o *Options) WithTimeLayout(timeLayout string) *Options {
	o.timeLayout = timeLayout
	return o
}

func (o *Options) WithOutputEncoder(outputEncoder OutputEncoder) *Options {
	o.outputEncoder = outputEncoder
	return o
}

func (o *Options) WithLevel(level Level) *Options {
	o.level = level
	return o
}

func (o *Options) WithCallerEncoder(callerEncoder CallerEncoder) *Options {
	o.callerEncoder = callerEncoder
	return o
}

func (o *Options) WithLevelEncoder(encoder LevelEncoder) *Options {
	o.levelEncoder = encoder
	return o
}

func (o *Options) WithNamed(name string) *Options {
	o.name = name
	return o
}

func DefaultOptions() *Options {
	return &Options{
		level:         InfoLevel,
		timeLayout:    "02/Jan/2006:15:04:05 +0800",
		levelEncoder:  BracketLevelEncoder,
		outputEncoder: JsonOutputEncoder,
		callerEncoder: nil,
		stacktrace:    false,
	}
}
