// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import "log/slog"

// ComponentLogger provides component-scoped structured logging. It binds a
// component name and optional fields, but resolves the global logger on
// every call, so loggers created at package init still honor a later
// SetupLogger reconfiguration (the --debug flag arrives after init).
type ComponentLogger struct {
	component string
	fields    []any
}

// NewLogger creates a Logger scoped to a named component.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{component: component}
}

// WithFields returns a new Logger with additional fields.
// Fields are provided as alternating key-value pairs.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	merged := make([]any, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &ComponentLogger{component: l.component, fields: merged}
}

// Component returns the component name for this logger.
func (l *ComponentLogger) Component() string {
	return l.component
}

func (l *ComponentLogger) slogger() *slog.Logger {
	args := make([]any, 0, 2+len(l.fields))
	args = append(args, "component", l.component)
	args = append(args, l.fields...)
	return Logger().With(args...)
}

// Debug logs a message at debug level.
// Debug messages are only logged when debug mode is enabled.
func (l *ComponentLogger) Debug(msg string, args ...any) {
	if IsDebugEnabled() {
		l.slogger().Debug(msg, args...)
	}
}

// Info logs a message at info level.
func (l *ComponentLogger) Info(msg string, args ...any) {
	l.slogger().Info(msg, args...)
}

// Warn logs a message at warn level.
func (l *ComponentLogger) Warn(msg string, args ...any) {
	l.slogger().Warn(msg, args...)
}

// Error logs a message at error level.
func (l *ComponentLogger) Error(msg string, args ...any) {
	l.slogger().Error(msg, args...)
}
