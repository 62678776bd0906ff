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

package bisect_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/fogfish/it"
	"github.com/fogfish/ketama/bisect"
)

func TestRight(t *testing.T) {
	seq := []uint32{1, 2, 3, 4, 5}

	it.Ok(t).
		If(bisect.Right(seq, uint32(6))).Equal(5).
		If(bisect.Right(seq, uint32(3))).Equal(3).
		If(bisect.Right(seq, uint32(0))).Equal(0).
		If(bisect.Right(seq, uint32(1))).Equal(1).
		If(bisect.Right(seq, uint32(5))).Equal(5)
}

func TestRightEmpty(t *testing.T) {
	it.Ok(t).
		If(bisect.Right([]uint32{}, uint32(1))).Equal(0)
}

func TestRightDuplicates(t *testing.T) {
	seq := []int{1, 2, 2, 2, 3}

	it.Ok(t).
		If(bisect.Right(seq, 2)).Equal(4).
		If(bisect.Right(seq, 1)).Equal(1).
		If(bisect.Right(seq, 3)).Equal(5)
}

func TestRightRange(t *testing.T) {
	seq := []int{1, 2, 3, 4, 5}

	it.Ok(t).
		If(bisect.RightRange(seq, 3, 0, 2)).Equal(2).
		If(bisect.RightRange(seq, 3, 3, 5)).Equal(3).
		If(bisect.RightRange(seq, 0, 2, 4)).Equal(2)
}

func TestRightStrings(t *testing.T) {
	seq := []string{"a", "b", "d"}

	it.Ok(t).
		If(bisect.Right(seq, "c")).Equal(2).
		If(bisect.Right(seq, "b")).Equal(2).
		If(bisect.Right(seq, "z")).Equal(3)
}

func TestRightPostcondition(t *testing.T) {
	seq := make([]uint32, 512)
	for i := range seq {
		seq[i] = rand.Uint32()
	}
	sort.Slice(seq, func(i, j int) bool { return seq[i] < seq[j] })

	for n := 0; n < 1000; n++ {
		x := rand.Uint32()
		i := bisect.Right(seq, x)

		if i > 0 {
			it.Ok(t).IfTrue(seq[i-1] <= x)
		}
		if i < len(seq) {
			it.Ok(t).IfTrue(seq[i] > x)
		}
	}
}
