// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitstream

import "errors"

var (
	// ErrOverflow is returned by Flush when the bits written exceed the
	// backing buffer.
	ErrOverflow = errors.New("bitstream: bit overflow")
)
