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

package ketama

import "crypto/md5"

// selector maps fold sub-index i in {0,1,2,3} to a byte of the digest
type selector func(i int) int

// identity selector addresses lookup keys
func identity(i int) int { return i }

// interleaved selector derives up to three distinct coordinates
// from one digest, one per sub-offset k in {0,1,2}
func interleaved(k int) selector {
	return func(i int) int { return i + k*4 }
}

// digest the key value
func digest(key string) [md5.Size]byte {
	return md5.Sum([]byte(key))
}

// fold 4 selected bytes of the digest into a ring coordinate
func fold(d [md5.Size]byte, sel selector) uint32 {
	return uint32(d[sel(3)])<<24 |
		uint32(d[sel(2)])<<16 |
		uint32(d[sel(1)])<<8 |
		uint32(d[sel(0)])
}

/*

Address calculates address of key on the ring
*/
func Address(key string) uint32 {
	return fold(digest(key), identity)
}
