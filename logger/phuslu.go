// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"github.com/phuslu/log"

	"github.com/jba/avltree"
)

// Phuslu wraps a phuslu/log Logger to implement avltree.Logger.
type Phuslu struct {
	logger *log.Logger
}

// NewPhuslu creates an avltree.Logger from a phuslu/log Logger.
// A nil logger means log.DefaultLogger.
func NewPhuslu(logger *log.Logger) avltree.Logger {
	if logger == nil {
		logger = &log.DefaultLogger
	}
	return &Phuslu{logger: logger}
}

func (p *Phuslu) Debug(msg string, args ...any) {
	p.logger.Debug().KeysAndValues(args...).Msg(msg)
}

func (p *Phuslu) Info(msg string, args ...any) {
	p.logger.Info().KeysAndValues(args...).Msg(msg)
}

func (p *Phuslu) Warn(msg string, args ...any) {
	p.logger.Warn().KeysAndValues(args...).Msg(msg)
}

func (p *Phuslu) Error(msg string, args ...any) {
	p.logger.Error().KeysAndValues(args...).Msg(msg)
}
