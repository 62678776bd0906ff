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

// Package bisect implements binary search over ascending sequences.
package bisect

import "cmp"

/*

Right returns the index where to insert x into the ascending sequence seq,
to the right of any run of elements equal to x. The returned index i is
such that every element of seq[:i] is less than or equal to x and every
element of seq[i:] is greater than x.
*/
func Right[T cmp.Ordered](seq []T, x T) int {
	return RightRange(seq, x, 0, len(seq))
}

/*

RightRange bounds the search of Right to the half-open range [lo, hi) of
the sequence.
*/
func RightRange[T cmp.Ordered](seq []T, x T, lo, hi int) int {
	for lo < hi {
		mid := (lo + hi) / 2
		if x < seq[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}
