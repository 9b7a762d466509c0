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

/*

V4 generates random identifiers of RFC 4122 version 4, 122 random bits
tagged with version and variant. Instances are safe for concurrent use with
the default source of randomness.
*/
type V4 struct {
	entropy Entropy
}

/*

NewV4 creates the generator of random identifiers. The constructor fails
with ErrNoEntropy when the application explicitly configures an absent
source of randomness.
*/
func NewV4(opts ...Config) (*V4, error) {
	c := defaults()
	for _, opt := range opts {
		opt(c)
	}
	if c.entropy == nil {
		return nil, ErrNoEntropy
	}

	return &V4{entropy: c.entropy}, nil
}

// Next allocates the next identifier.
func (g *V4) Next() UUID {
	var uuid UUID
	g.entropy.Fill(uuid[:])
	uuid[6] = uuid[6]&0x0f | 0x40
	uuid[8] = uuid[8]&0x3f | 0x80
	return uuid
}
