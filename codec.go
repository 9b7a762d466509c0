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
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// String encodes the identifier to canonical form, lowercase hexadecimal
// groups of 8-4-4-4-12 digits separated by hyphens
func (uuid UUID) String() string {
	b := make([]byte, 36)
	hex.Encode(b[0:8], uuid[0:4])
	b[8] = '-'
	hex.Encode(b[9:13], uuid[4:6])
	b[13] = '-'
	hex.Encode(b[14:18], uuid[6:8])
	b[18] = '-'
	hex.Encode(b[19:23], uuid[8:10])
	b[23] = '-'
	hex.Encode(b[24:], uuid[10:])
	return string(b)
}

// Bytes encodes the identifier to its canonical 16-byte layout
func (uuid UUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, uuid[:])
	return b
}

/*

FromString decodes the identifier from canonical form, hexadecimal digits
of either case are accepted.
*/
func FromString(val string) (uuid UUID, err error) {
	if len(val) != 36 {
		return uuid, fmt.Errorf("uuid: malformed identifier %q", val)
	}
	if val[8] != '-' || val[13] != '-' || val[18] != '-' || val[23] != '-' {
		return uuid, fmt.Errorf("uuid: malformed identifier %q", val)
	}

	h := val[0:8] + val[9:13] + val[14:18] + val[19:23] + val[24:]
	if _, err = hex.Decode(uuid[:], []byte(h)); err != nil {
		return UUID{}, fmt.Errorf("uuid: malformed identifier %q: %w", val, err)
	}
	return uuid, nil
}

/*

FromBytes decodes the identifier from its canonical 16-byte layout.
*/
func FromBytes(val []byte) (uuid UUID, err error) {
	if len(val) != 16 {
		return uuid, fmt.Errorf("uuid: malformed identifier of %d bytes", len(val))
	}
	copy(uuid[:], val)
	return uuid, nil
}

// MarshalJSON encodes the identifier to canonical form JSON string
func (uuid UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(uuid.String())
}

// UnmarshalJSON decodes the identifier from canonical form JSON string
func (uuid *UUID) UnmarshalJSON(b []byte) (err error) {
	var val string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}

	*uuid, err = FromString(val)
	return
}

// Version returns the schema tag of the identifier, the 4 most significant
// bits of the time_hi_and_version field
func (uuid UUID) Version() int {
	return int(uuid[6] >> 4)
}

// Variant returns the layout variant of the identifier, the 2 most
// significant bits of the clock_seq field. Identifiers allocated by this
// package always carry the value 2, binary 10.
func (uuid UUID) Variant() int {
	return int(uuid[8] >> 6)
}

// Time reconstructs the wall clock reading of a time-based identifier with
// millisecond precision
func (uuid UUID) Time() time.Time {
	t := uint64(binary.BigEndian.Uint32(uuid[0:4])) |
		uint64(binary.BigEndian.Uint16(uuid[4:6]))<<32 |
		uint64(binary.BigEndian.Uint16(uuid[6:8])&0x0fff)<<48
	return time.UnixMilli(int64(t / 10000))
}

// ClockSeq returns the 14-bit clock sequence fraction of a time-based
// identifier
func (uuid UUID) ClockSeq() int {
	return int(binary.BigEndian.Uint16(uuid[8:10]) & 0x3fff)
}

// Node returns the node fraction of a time-based identifier
func (uuid UUID) Node() (node [6]byte) {
	copy(node[:], uuid[10:])
	return
}
