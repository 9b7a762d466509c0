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

package uuid_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/uuid"
)

// simOf recovers the 60-bit simulated timestamp from the identifier.
func simOf(u uuid.UUID) uint64 {
	return uint64(binary.BigEndian.Uint32(u[0:4])) |
		uint64(binary.BigEndian.Uint16(u[4:6]))<<32 |
		uint64(binary.BigEndian.Uint16(u[6:8])&0x0fff)<<48
}

func TestV1(t *testing.T) {
	g, err := uuid.NewV1(
		uuid.WithRandom(bytes.NewReader([]byte{0x00, 0x01, 0x86, 0xa0})),
		uuid.WithNodeID([6]byte{0xaa, 0x11, 0x22, 0x33, 0x44, 0x55}),
		uuid.WithClock(func() int64 { return 1234567890123 }),
	)
	it.Then(t).Should(it.True(err == nil))

	a := g.Next()
	it.Then(t).Should(
		it.Equal(a, uuid.UUID{
			0x5d, 0x6b, 0x39, 0xb1, 0xdc, 0x54, 0x10, 0x2b,
			0x80, 0x0a, 0xaa, 0x11, 0x22, 0x33, 0x44, 0x55,
		}),
		it.Equal(a.String(), "5d6b39b1-dc54-102b-800a-aa1122334455"),
		it.Equal(a.Version(), 1),
		it.Equal(a.Variant(), 2),
		it.Equal(a.ClockSeq(), 10),
		it.Equal(a.Time().UnixMilli(), int64(1234567890123)),
		it.Equal(a.Node(), [6]byte{0xaa, 0x11, 0x22, 0x33, 0x44, 0x55}),
	)
}

func TestV1SameMillisecond(t *testing.T) {
	g, err := uuid.NewV1(
		uuid.WithRandom(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00})),
		uuid.WithNodeID([6]byte{0xaa, 0x11, 0x22, 0x33, 0x44, 0x55}),
		uuid.WithClock(func() int64 { return 1234567890123 }),
	)
	it.Then(t).Should(it.True(err == nil))

	a := g.Next()
	b := g.Next()
	d := g.Next()

	it.Then(t).Should(
		it.Equal(simOf(b), simOf(a)+1),
		it.Equal(simOf(d), simOf(b)+1),
		it.Equal(a.ClockSeq(), b.ClockSeq()),
		it.Equal(b.ClockSeq(), d.ClockSeq()),
		it.Equal(a.Time().UnixMilli(), int64(1234567890123)),
		it.Equal(d.Time().UnixMilli(), int64(1234567890123)),
	)
}

func TestV1ClockBackward(t *testing.T) {
	ms := int64(8000)
	g, err := uuid.NewV1(
		uuid.WithRandom(bytes.NewReader([]byte{
			0x00, 0x00, 0x27, 0x10,
			0x00, 0x07, 0xa1, 0x20,
		})),
		uuid.WithNodeID([6]byte{0xaa, 0x11, 0x22, 0x33, 0x44, 0x55}),
		uuid.WithClock(func() int64 { return ms }),
	)
	it.Then(t).Should(it.True(err == nil))

	ms = 7995
	a := g.Next()
	b := g.Next()

	it.Then(t).Should(
		it.Equal(a.ClockSeq(), 50),
		it.Equal(a.Time().UnixMilli(), int64(7995)),
		it.Equal(simOf(a)%10000, uint64(0)),
		it.Equal(simOf(b), simOf(a)+1),
		it.Equal(b.ClockSeq(), 50),
	)
}

func TestV1ClockForward(t *testing.T) {
	ms := int64(8000)
	g, err := uuid.NewV1(
		uuid.WithRandom(bytes.NewReader([]byte{0x00, 0x00, 0x27, 0x10})),
		uuid.WithNodeID([6]byte{0xaa, 0x11, 0x22, 0x33, 0x44, 0x55}),
		uuid.WithClock(func() int64 { return ms }),
	)
	it.Then(t).Should(it.True(err == nil))

	ms = 9000
	a := g.Next()
	b := g.Next()

	it.Then(t).Should(
		it.Equal(a.ClockSeq(), 1),
		it.Equal(a.Time().UnixMilli(), int64(9000)),
		it.Equal(simOf(a)%10000, uint64(0)),
		it.Equal(simOf(b), simOf(a)+1),
	)
}

func TestV1Schema(t *testing.T) {
	g, err := uuid.NewV1()
	it.Then(t).Should(it.True(err == nil))

	for n := 0; n < 256; n++ {
		a := g.Next()
		it.Then(t).Should(
			it.Equal(a.Version(), 1),
			it.Equal(a.Variant(), 2),
			it.Equal(a.Node()[0]&0x80, byte(0x80)),
		)
	}
}

func TestV1Ordered(t *testing.T) {
	g, err := uuid.NewV1()
	it.Then(t).Should(it.True(err == nil))

	a := g.Next()
	b := g.Next()
	time.Sleep(5 * time.Millisecond)
	d := g.Next()

	it.Then(t).Should(
		it.True(simOf(a) < simOf(b)),
		it.True(simOf(b) < simOf(d)),
	)
}

func TestV1Unique(t *testing.T) {
	g, err := uuid.NewV1()
	it.Then(t).Should(it.True(err == nil))

	seen := map[uuid.UUID]struct{}{}
	for n := 0; n < 10000; n++ {
		seen[g.Next()] = struct{}{}
	}

	it.Then(t).Should(it.Equal(len(seen), 10000))
}

func TestV1UniqueSameMillisecond(t *testing.T) {
	g, err := uuid.NewV1(
		uuid.WithRandom(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00})),
		uuid.WithNodeID([6]byte{0xaa, 0x11, 0x22, 0x33, 0x44, 0x55}),
		uuid.WithClock(func() int64 { return 1234567890123 }),
	)
	it.Then(t).Should(it.True(err == nil))

	seen := map[uuid.UUID]struct{}{}
	for n := 0; n < 5000; n++ {
		seen[g.Next()] = struct{}{}
	}

	it.Then(t).Should(it.Equal(len(seen), 5000))
}

func TestV1Concurrent(t *testing.T) {
	g, err := uuid.NewV1()
	it.Then(t).Should(it.True(err == nil))

	var mu sync.Mutex
	seen := map[uuid.UUID]struct{}{}

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 2048; i++ {
				a := g.Next()
				mu.Lock()
				seen[a] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	it.Then(t).Should(it.Equal(len(seen), 8*2048))
}

func TestGenerator(t *testing.T) {
	v1, err := uuid.NewV1()
	it.Then(t).Should(it.True(err == nil))

	v4, err := uuid.NewV4()
	it.Then(t).Should(it.True(err == nil))

	for _, g := range []uuid.Generator{v1, v4} {
		a := g.Next()
		it.Then(t).Should(
			it.Equal(a.Variant(), 2),
		)
		it.Then(t).ShouldNot(
			it.Equal(a, uuid.UUID{}),
		)
	}
}

func TestV1NoEntropy(t *testing.T) {
	g, err := uuid.NewV1(uuid.WithEntropy(nil))

	it.Then(t).Should(
		it.True(g == nil),
		it.True(err != nil),
		it.True(errors.Is(err, uuid.ErrNoEntropy)),
	)
}

func TestV1EntropyExhausted(t *testing.T) {
	defer func() {
		it.Then(t).Should(it.True(recover() != nil))
	}()

	uuid.NewV1(
		uuid.WithRandom(bytes.NewReader(nil)),
		uuid.WithNodeID([6]byte{0xaa, 0x11, 0x22, 0x33, 0x44, 0x55}),
	)
}

func TestV1EntropyExhaustedOnReseed(t *testing.T) {
	ms := int64(8000)
	g, err := uuid.NewV1(
		uuid.WithRandom(bytes.NewReader([]byte{0x00, 0x00, 0x27, 0x10})),
		uuid.WithNodeID([6]byte{0xaa, 0x11, 0x22, 0x33, 0x44, 0x55}),
		uuid.WithClock(func() int64 { return ms }),
	)
	it.Then(t).Should(it.True(err == nil))

	defer func() {
		it.Then(t).Should(it.True(recover() != nil))
	}()

	ms = 7000
	g.Next()
}

var uV1 uuid.UUID

func BenchmarkV1(b *testing.B) {
	g, err := uuid.NewV1()
	if err != nil {
		b.Fatal(err)
	}

	var val uuid.UUID
	for n := 0; n < b.N; n++ {
		val = g.Next()
	}
	uV1 = val
}
