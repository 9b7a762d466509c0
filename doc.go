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

/*

Package uuid implements generators of universally unique identifiers for
Golang applications, following the layout of RFC 4122
(https://tools.ietf.org/html/rfc4122). The package focuses on the time-based
version 1 schema and complements it with the random version 4 schema.

Key features

This library aims important objectives:

↣ identifiers are allocated locally, no centralized authority or coordination
with other nodes is required.

↣ time-based identifiers are roughly sortable by allocation order ("time"),
which makes them suitable as keys in time-series storages and write-ahead
structures.

↣ allocation is one short in-memory computation and never fails once the
generator is constructed, identifiers are safe to mint on hot paths.

↣ generators are values, the application composes and injects them. The
package keeps no process wide state, each generator owns its clock and its
source of randomness.

Identity Schema

A fixed size of 128-bit is used to implement identity schema

   32 bit     16 bit     16 bit    16 bit       48 bit
  |--------|---------|----------|---------|----------------|
  time_low  time_mid  time_hi &  clock_seq      node
                      version    & variant

↣ time fraction is a 60-bit simulated timestamp spread over the time_low,
time_mid and time_hi fields. The generator reads the wall clock with
millisecond precision and simulates the 100 nanosecond resolution demanded
by the schema with a counter: every allocation inside one millisecond takes
the next of its ten thousand 100ns slots.

↣ version is the 4-bit tag of the schema, the value 1 for time-based and 4
for random identifiers.

↣ clock_seq is a 14-bit sequence shielding uniqueness against clock
anomalies. It is seeded from the random source and reseeded whenever the
wall clock is observed running backwards, so identifiers minted across the
jump do not collide with identifiers minted before it. The variant tag 10
occupies the 2 most significant bits of the field.

↣ node is a 48-bit spatial identifier of the allocator. It is derived from
the host IPv4 address mixed with random bytes, or allocated fully random.
The most significant bit of the fraction is always set, the schema reserves
it to distinguish synthesized nodes from IEEE 802 hardware addresses.

The counter couples the sub-millisecond slots with the clock sequence: ten
thousand allocations within one millisecond carry the next sequence value.
The 14-bit sequence bounds the schema to about 160 million allocations
inside a single time slice before identifiers repeat, which is far beyond
the wall clock advancing on any practical host.

Random identifiers of version 4 carry 122 random bits and no structure
besides the version and variant tags. Use them when ordering does not
matter and opaqueness does.

Applications

The schema has wide range of applications where globally unique id are
required.

↣ object identity: use library to generate unique identifiers.

↣ replacement of auto increment types: out-of-the-box replacement for auto
increment fields in databases.

↣ correlation of events: trace requests across distributed components with
identifiers that carry their own timestamp.

*/
package uuid
