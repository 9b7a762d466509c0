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

import "net"

/*

UUID is native representation of 128-bit universally unique identifier.

The value is the canonical byte layout of RFC 4122, big-endian fields

   4 bytes   time_low
   2 bytes   time_mid
   2 bytes   time_hi_and_version
   2 bytes   clock_seq (variant tagged)
   6 bytes   node

The zero value is the nil identifier, all bits unset.
*/
type UUID [16]byte

/*

Generator is a source of unique identifiers. Implementations are safe for
concurrent use.
*/
type Generator interface {
	// Next allocates the next identifier.
	Next() UUID
}

/*

Entropy is the source of randomness consumed by generators. The package
defaults to the platform cryptographic generator, applications supply own
implementation for deterministic or hardware backed allocation.

Exhaustion of the underlying source is not a recoverable condition,
implementations panic instead of degrading to predictable output.
*/
type Entropy interface {
	// Fill populates the whole slice with random bytes.
	Fill(p []byte)
	// Int32 draws a uniformly distributed signed 32-bit integer.
	Int32() int32
}

/*

Config option of generator construction. Config options allows to define
custom strategies to source randomness, resolve the node fraction or read
the wall clock.
*/
type Config func(*conf)

// conf assembles construction time choices shared by generator flavors.
type conf struct {
	entropy Entropy
	ticker  func() int64
	node    []byte
	resolve func() net.IP
}

func defaults() *conf {
	return &conf{
		entropy: strong{},
		ticker:  unixMilli,
		resolve: localIPv4,
	}
}
