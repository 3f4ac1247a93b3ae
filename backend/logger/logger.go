// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0
//

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log         *zap.Logger
	AppLog      *zap.SugaredLogger
	InitLog     *zap.SugaredLogger
	WebUILog    *zap.SugaredLogger
	ContextLog  *zap.SugaredLogger
	GinLog      *zap.SugaredLogger
	ConfigLog   *zap.SugaredLogger
	FormLog     *zap.SugaredLogger
	SubmitLog   *zap.SugaredLogger
	atomicLevel zap.AtomicLevel
)

func init() {
	atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	config := zap.Config{
		Level:            atomicLevel,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.CallerKey = "caller"
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""

	var err error
	log, err = config.Build()
	if err != nil {
		panic(err)
	}
	setLoggers(log)
}

func setLoggers(l *zap.Logger) {
	AppLog = l.Sugar().With("component", "WebUI", "category", "App")
	InitLog = l.Sugar().With("component", "WebUI", "category", "Init")
	WebUILog = l.Sugar().With("component", "WebUI", "category", "WebUI")
	ContextLog = l.Sugar().With("component", "WebUI", "category", "Context")
	GinLog = l.Sugar().With("component", "WebUI", "category", "GIN")
	ConfigLog = l.Sugar().With("component", "WebUI", "category", "CONFIG")
	FormLog = l.Sugar().With("component", "WebUI", "category", "FORM")
	SubmitLog = l.Sugar().With("component", "WebUI", "category", "SUBMIT")
}

func GetLogger() *zap.Logger {
	return log
}

// ReplaceLogger swaps the core used by every category logger. Tests use it with
// an observer core to assert on emitted entries.
func ReplaceLogger(l *zap.Logger) (restore func()) {
	prev := log
	log = l
	setLoggers(l)
	return func() {
		log = prev
		setLoggers(prev)
	}
}

// SetLogLevel: set the log level (panic|fatal|error|warn|info|debug)
func SetLogLevel(level zapcore.Level) {
	InitLog.Infoln("set log level:", level)
	atomicLevel.SetLevel(level)
}
