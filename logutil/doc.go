// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// It wraps the standard library's slog package with convenience functions and
// environment-aware configuration for the whichprob CLI and library.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("probing path entry", "dir", dir, "index", i)
//	logutil.Info("diagnosis complete", "outcome", outcome)
//	logutil.Error("diagnosis failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set WHICHPROB_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON
// instead of text. Logs always go to stderr so they never interleave with
// report output on stdout.
package logutil
