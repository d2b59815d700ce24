// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger adapts common logging libraries to [avltree.Logger].
package logger

import (
	"go.uber.org/zap"

	"github.com/jba/avltree"
)

// Zap wraps a zap.Logger to implement avltree.Logger.
type Zap struct {
	logger *zap.SugaredLogger
}

// NewZap creates an avltree.Logger from a zap.Logger.
func NewZap(logger *zap.Logger) avltree.Logger {
	return &Zap{logger: logger.Sugar()}
}

func (z *Zap) Debug(msg string, args ...any) { z.logger.Debugw(msg, args...) }

func (z *Zap) Info(msg string, args ...any) { z.logger.Infow(msg, args...) }

func (z *Zap) Warn(msg string, args ...any) { z.logger.Warnw(msg, args...) }

func (z *Zap) Error(msg string, args ...any) { z.logger.Errorw(msg, args...) }
