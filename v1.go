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

import "encoding/binary"

/*

V1 generates time-based identifiers of RFC 4122 version 1. The generator
orders identifiers by allocation time and keeps them unique across clock
anomalies through the clock sequence. Instances are safe for concurrent use.
*/
type V1 struct {
	entropy Entropy
	ticker  func() int64
	node    [6]byte
	clock   clock
}

/*

NewV1 creates the generator of time-based identifiers.

Without options the generator reads the platform cryptographic source of
randomness, the system wall clock and derives the node fraction from the
host IPv4 address. Use Config options to alter either choice. The
constructor fails with ErrNoEntropy when the application explicitly
configures an absent source of randomness.
*/
func NewV1(opts ...Config) (*V1, error) {
	c := defaults()
	for _, opt := range opts {
		opt(c)
	}
	if c.entropy == nil {
		return nil, ErrNoEntropy
	}

	g := &V1{entropy: c.entropy, ticker: c.ticker}
	if c.node != nil {
		copy(g.node[:], c.node)
		g.node[0] |= 0x80
	} else {
		g.node = deriveNode(c.entropy, c.resolve)
	}

	g.clock.lastMs = g.ticker()
	g.clock.seq = abs(c.entropy.Int32())
	return g, nil
}

// Next allocates the next identifier. The call never fails, uniqueness is
// kept under concurrent allocation and backward clock jumps.
func (g *V1) Next() UUID {
	simulated, seq := g.clock.advance(g.ticker, g.entropy)
	return encode(uint64(simulated), seq, g.node)
}

// encode packs the simulated timestamp, clock sequence and node into the
// canonical byte layout, tagging version 1 and variant 10.
func encode(t uint64, seq uint16, node [6]byte) (uuid UUID) {
	binary.BigEndian.PutUint32(uuid[0:], uint32(t))
	binary.BigEndian.PutUint16(uuid[4:], uint16(t>>32))
	binary.BigEndian.PutUint16(uuid[6:], uint16(t>>48)&0x0fff|0x1000)
	binary.BigEndian.PutUint16(uuid[8:], seq&0x3fff|0x8000)
	copy(uuid[10:], node[:])
	return
}
