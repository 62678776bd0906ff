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

// DefaultInterleave is the number of placement seeds claimed per node
// before weight scaling.
const DefaultInterleave = 40

// Option for the ring structure
type Option func(ring *Ring)

// WithInterleave configures the number of placement seeds per node. Higher
// values improve distribution uniformity at the cost of memory and search
// size.
func WithInterleave(n int) Option {
	return func(ring *Ring) { ring.interleave = n }
}

// WithRing clones ring configuration into the new instance
func WithRing(r *Ring) Option {
	return func(ring *Ring) {
		ring.interleave = r.interleave
	}
}

// Options turns a list of Option instances into an Option.
func Options(opts ...Option) Option {
	return func(ring *Ring) {
		for _, opt := range opts {
			opt(ring)
		}
	}
}
