package log

import (
	"go.uber.org/zap/zapcore"
)

type Level int8

const (
	DebugLevel Level = iota - 1
	InfoLevel
	WarnLevel
	ErrorLevel
)

// OutputEncoder renders log entries,
// the optional value is JsonOutputEncoder ConsoleOutputEncoder
type OutputEncoder func(cfg zapcore.EncoderConfig) zapcore.Encoder

var (
	JsonOutputEncoder OutputEncoder = func(cfg zapcore.EncoderConfig) zapcore.Encoder {
		return zapcore.NewJSONEncoder(cfg)
	}
	ConsoleOutputEncoder OutputEncoder = func(cfg zapcore.EncoderConfig) zapcore.Encoder {
		return zapcore.NewConsoleEncoder(cfg)
	}
)

type Options struct {
	//output mode,the optional value is JsonOutputEncoder ConsoleOutputEncoder
	outPutEncoder OutputEncoder
	//Log level,the optional value is DebugLevel InfoLevel WarnLevel ErrorLevel
	level Level
	//Report Warn level stack trace
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
	o.outPutEncoder = outputEncoder
	return o
}

func (o *Options) WithLevel(level Level) *Options {
	o.level = level
	return o
}

func (o *Options) WithNamed(name string) *Options {
	o.name = name
	return o
}

func DefaultOptions() *Options {
	return &Options{level: InfoLevel,
		timeLayout:    "02/Jan/2006:15:04:05 -0700",
		outPutEncoder: JsonOutputEncoder}
}
