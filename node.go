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

// deriveNode builds the 6-byte node fraction, random filling with bytes
// 2 to 5 overwritten by the host IPv4 address when one resolves. The most
// significant bit of byte 0 is always set, the schema reserves it to
// separate synthesized nodes from IEEE 802 hardware addresses.
func deriveNode(entropy Entropy, resolve func() net.IP) (node [6]byte) {
	entropy.Fill(node[:])
	if ip := resolve(); len(ip) == 4 {
		copy(node[2:], ip)
	}
	node[0] |= 0x80
	return
}

// localIPv4 returns the first non loopback IPv4 address of the host, nil
// when none resolves.
func localIPv4() net.IP {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ip := ipnet.IP.To4(); ip != nil {
				return ip
			}
		}
	}
	return nil
}
