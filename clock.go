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
	"io"
	"net"
	"sync"
	"time"
)

// clock is the generator's view of time, the last observed wall clock
// reading paired with the counter extending it below millisecond
// resolution. Both move together under one lock.
type clock struct {
	sync.Mutex
	lastMs int64
	seq    int32
}

// advance moves the clock one allocation forward and yields the simulated
// 100ns timestamp together with the 14-bit clock sequence.
//
// The wall clock is read while the lock is held, observations of time and
// state cannot interleave between callers. A reading behind lastMs means
// the system clock was set back, the counter is reseeded from entropy
// because continuity of the old sequence is lost. Within one millisecond
// the counter increments, overflow of the machine integer wraps and stays
// harmless since every consumer below is modular.
func (c *clock) advance(ticker func() int64, entropy Entropy) (simulated int64, seq uint16) {
	c.Lock()
	defer c.Unlock()

	ms := ticker()
	switch {
	case ms < c.lastMs:
		c.seq = abs(entropy.Int32())
	case ms == c.lastMs:
		c.seq++
	}
	c.lastMs = ms

	// ten thousand 100ns slots per millisecond, the low decimal digits of
	// the counter simulate the sub-millisecond clock and the rest is the
	// clock sequence
	simulated = ms*10000 + int64(c.seq%10000)
	seq = uint16((c.seq / 10000) & 0x3fff)
	return
}

// abs is two's complement negation, abs of the minimal integer stays
// negative which the counter tolerates for the same modular reason.
func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func unixMilli() int64 {
	return time.Now().UnixMilli()
}

// WithEntropy explicitly configures the source of randomness
func WithEntropy(entropy Entropy) Config {
	return func(c *conf) {
		c.entropy = entropy
	}
}

// WithRandom configures the source of randomness from a stream of bytes,
// e.g. a deterministic stream for reproducible allocation
func WithRandom(r io.Reader) Config {
	return func(c *conf) {
		if r == nil {
			c.entropy = nil
			return
		}
		c.entropy = stream{src: r}
	}
}

// WithNodeID explicitly configures the node fraction of identifiers
func WithNodeID(node [6]byte) Config {
	return func(c *conf) {
		c.node = node[:]
	}
}

// WithNodeRandom configures fully random node fraction, skipping the host
// address lookup
func WithNodeRandom() Config {
	return func(c *conf) {
		c.resolve = func() net.IP { return nil }
	}
}

// WithClock configures a custom wall clock, milliseconds since Unix epoch
func WithClock(ticker func() int64) Config {
	return func(c *conf) {
		c.ticker = ticker
	}
}
