// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	plog "github.com/phuslu/log"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jba/avltree"
	"github.com/jba/avltree/logger"
)

// newLogger builds an avltree.Logger writing to w with the named library.
func newLogger(backend, format string, debug bool, w io.Writer) (avltree.Logger, error) {
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	switch backend {
	case "slog":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		if debug {
			opts.Level = slog.LevelDebug
		}
		if format == "json" {
			return slog.New(slog.NewJSONHandler(w, opts)), nil
		}
		return slog.New(slog.NewTextHandler(w, opts)), nil

	case "zap":
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc := zapcore.NewConsoleEncoder(encCfg)
		if format == "json" {
			enc = zapcore.NewJSONEncoder(encCfg)
		}
		level := zapcore.InfoLevel
		if debug {
			level = zapcore.DebugLevel
		}
		return logger.NewZap(zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))), nil

	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		if format == "json" {
			l.SetFormatter(&logrus.JSONFormatter{})
		}
		if debug {
			l.SetLevel(logrus.DebugLevel)
		}
		return logger.NewLogrus(l), nil

	case "phuslu":
		l := &plog.Logger{Level: plog.InfoLevel, Writer: &plog.IOWriter{Writer: w}}
		if format == "text" {
			l.Writer = &plog.ConsoleWriter{Writer: w}
		}
		if debug {
			l.Level = plog.DebugLevel
		}
		return logger.NewPhuslu(l), nil
	}
	return nil, fmt.Errorf("unknown logger %q", backend)
}
