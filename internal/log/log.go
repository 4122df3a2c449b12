// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// EnvLevel is the environment variable read at init to set the log level.
const EnvLevel = "PROFILER_LOG_LEVEL"

// Level is the minimum severity a message needs to be emitted.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelOff
)

// LevelNamed returns the log level corresponding to the given name, or LevelOff
// if the name corresponds to no known log level.
func LevelNamed(name string) Level {
	switch strings.ToLower(name) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	case "off":
		return LevelOff
	default:
		return LevelOff
	}
}

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return fmt.Sprintf("0x%X", uintptr(l))
	}
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelTrace:
		return logrus.TraceLevel
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarning:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// Fields are attached to a message as structured key/values.
type Fields = logrus.Fields

var (
	logger = logrus.New()
	level  atomic.Int32
)

func init() {
	level.Store(int32(LevelOff))
	if name, ok := os.LookupEnv(EnvLevel); ok {
		SetLevel(LevelNamed(name))
	}
}

// SetLevel sets the minimum level of emitted messages. LevelOff disables logging.
func SetLevel(l Level) {
	level.Store(int32(l))
	logger.SetLevel(l.logrus())
}

// CurrentLevel returns the level set by SetLevel.
func CurrentLevel() Level {
	return Level(level.Load())
}

// SetOutput redirects emitted messages to w.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func enabled(l Level) bool {
	current := CurrentLevel()
	return current != LevelOff && l >= current
}

func logMessage(l Level, fields Fields, format string, args ...any) {
	if !enabled(l) {
		return
	}
	logger.WithFields(fields).Logf(l.logrus(), "runtimeprofiler: "+format, args...)
}

// Debugf emits a message at LevelDebug.
func Debugf(fields Fields, format string, args ...any) {
	logMessage(LevelDebug, fields, format, args...)
}

// Warnf emits a message at LevelWarning.
func Warnf(fields Fields, format string, args ...any) {
	logMessage(LevelWarning, fields, format, args...)
}

// Errorf emits a message at LevelError.
func Errorf(fields Fields, format string, args ...any) {
	logMessage(LevelError, fields, format, args...)
}
