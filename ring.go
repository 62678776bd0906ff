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

// Package ketama implements a weighted consistent hashing ring. Keys and
// nodes are hashed onto a circular space of 32-bit coordinates, each node
// claiming a number of virtual placements proportional to its weight. A key
// resolves to the node owning the nearest placement at or after the key's
// coordinate, wrapping around at the end of the space.
package ketama

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fogfish/ketama/bisect"
)

/*

Ring is weighted consistent hashing data type. The ring is built once from
a fixed list of nodes and is immutable afterwards, safe for concurrent
lookups. Use Cluster for live membership changes.
*/
type Ring struct {
	// configuration
	interleave int // placement seeds per node before weight scaling

	// internal state
	ring   map[uint32]Node // ring coordinate to owning node
	keys   []uint32        // ascending ring coordinates
	nodes  map[string]Node // registered nodes by identity
	weight int             // total capacity of registered nodes
}

// New creates instance of the ring from the given nodes
func New(nodes []Node, opts ...Option) *Ring {
	ring := &Ring{
		interleave: DefaultInterleave,
		ring:       map[uint32]Node{},
		nodes:      map[string]Node{},
	}

	for _, opt := range opts {
		opt(ring)
	}

	ring.generate(nodes)

	return ring
}

//------------------------------------------------------------------------------
//
// Ring algebra
//
//------------------------------------------------------------------------------

// generate claims ring coordinates for each node, weight proportional
func (ring *Ring) generate(nodes []Node) {
	for _, node := range nodes {
		ring.weight += node.Weight()
	}

	for _, node := range nodes {
		ring.nodes[node.String()] = node

		for j := 0; j < ring.placements(node, len(nodes)); j++ {
			d := digest(fmt.Sprintf("%s-%d", node.String(), j))
			for k := 0; k < 3; k++ {
				key := fold(d, interleaved(k))
				ring.ring[key] = node
				ring.keys = append(ring.keys, key)
			}
		}
	}

	sort.Slice(ring.keys, func(i, j int) bool {
		return ring.keys[i] < ring.keys[j]
	})
}

// placements calculates the number of seeds claimed by the node, its share
// of total capacity scaled by interleave factor and cluster size. A node
// with non-positive weight claims nothing.
func (ring *Ring) placements(node Node, n int) int {
	if ring.weight <= 0 {
		return 0
	}

	return ring.interleave * n * node.Weight() / ring.weight
}

//------------------------------------------------------------------------------
//
// Ring interface
//
//------------------------------------------------------------------------------

/*

Lookup resolves the node that owns the ring arc hit by the key. The same
key resolves to the same node on every call. It returns false only if no
nodes claimed the ring.
*/
func (ring *Ring) Lookup(key string) (Node, bool) {
	if len(ring.keys) == 0 {
		return nil, false
	}

	pos := bisect.Right(ring.keys, Address(key))
	if pos == len(ring.keys) {
		pos = 0
	}

	return ring.ring[ring.keys[pos]], true
}

/*

Size of ring, number of members joined the ring
*/
func (ring *Ring) Size() int {
	return len(ring.nodes)
}

/*

Has return true if node exists in the ring
*/
func (ring *Ring) Has(node string) bool {
	_, exists := ring.nodes[node]
	return exists
}

/*

Members return list of nodes registered at ring
*/
func (ring *Ring) Members() []Node {
	nodes := make([]Node, 0, len(ring.nodes))
	for _, node := range ring.nodes {
		nodes = append(nodes, node)
	}
	return nodes
}

/*

Weight returns total capacity of registered nodes
*/
func (ring *Ring) Weight() int {
	return ring.weight
}

/*

Placements returns all claimed ring coordinates in ascending order
*/
func (ring *Ring) Placements() []uint32 {
	keys := make([]uint32, len(ring.keys))
	copy(keys, ring.keys)
	return keys
}

/*

Nodes return list of nodes and ring coordinates claimed by each
*/
func (ring *Ring) Nodes() map[string][]uint32 {
	nodes := map[string][]uint32{}
	for node := range ring.nodes {
		nodes[node] = []uint32{}
	}

	for _, key := range ring.keys {
		node := ring.ring[key].String()
		nodes[node] = append(nodes[node], key)
	}

	return nodes
}

/*

Debug represents ring to string snapshot
*/
func (ring *Ring) Debug() string {
	buf := strings.Builder{}
	buf.WriteString(fmt.Sprintf("ring: interleave=%d, nodes=%d, weight=%d\n",
		ring.interleave, len(ring.nodes), ring.weight))
	buf.WriteString("|     [ ")
	for node := range ring.nodes {
		buf.WriteString(node)
		buf.WriteString(" ")
	}
	buf.WriteString("]\n| \n")

	for _, key := range ring.keys {
		buf.WriteString(fmt.Sprintf("| %08x [%s]\n", key, ring.ring[key]))
	}
	return buf.String()
}
