// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avltree

type options struct {
	log   Logger
	trace bool // log every rotation at debug level
}

func (o *options) logger() Logger {
	if o.log == nil {
		return DiscardLogger{}
	}
	return o.log
}

// Option configures a Tree using the functional options pattern.
type Option func(*options)

// WithLogger sets the logger that receives rejected calls and,
// with [WithRotationTrace], rotations.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithRotationTrace makes the tree log each rotation at debug level.
// This is slow and meant for debugging.
func WithRotationTrace(on bool) Option {
	return func(o *options) {
		o.trace = on
	}
}
