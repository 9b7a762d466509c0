/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

/*

ErrNoEntropy is reported by generator constructors when the application
explicitly configures an absent source of randomness.
*/
var ErrNoEntropy = errors.New("uuid: entropy source is required")

// strong is the default entropy, the platform cryptographic generator.
type strong struct{}

func (strong) Fill(p []byte) { fill(rand.Reader, p) }

func (strong) Int32() int32 { return draw32(rand.Reader) }

// stream adapts an arbitrary stream of random bytes to the Entropy
// capability, integers are read in big-endian order.
type stream struct{ src io.Reader }

func (s stream) Fill(p []byte) { fill(s.src, p) }

func (s stream) Int32() int32 { return draw32(s.src) }

func fill(r io.Reader, p []byte) {
	if _, err := io.ReadFull(r, p); err != nil {
		panic(fmt.Errorf("uuid: entropy source is exhausted: %w", err))
	}
}

func draw32(r io.Reader) int32 {
	var b [4]byte
	fill(r, b[:])
	return int32(binary.BigEndian.Uint32(b[:]))
}
