// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a fresh random 16-byte id, hex-encoded, suitable for a
// document's layer id. Collisions are astronomically unlikely and are
// not checked for.
func NewID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand.Read on this platform failing indicates a broken
		// entropy source; there is no sane degraded id to hand back.
		panic("randx: failed to read random bytes: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}
