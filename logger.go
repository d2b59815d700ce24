// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avltree

// Logger matches the method set of *slog.Logger.
// See package logger for adapters to other logging libraries.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DiscardLogger is the default logger. It drops everything.
type DiscardLogger struct{}

func (DiscardLogger) Debug(string, ...any) {}

func (DiscardLogger) Info(string, ...any) {}

func (DiscardLogger) Warn(string, ...any) {}

func (DiscardLogger) Error(string, ...any) {}
