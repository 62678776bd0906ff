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

import (
	"sync"
	"sync/atomic"
)

/*

Cluster maintains live membership over immutable ring snapshots. Every
membership change builds a new Ring and atomically swaps it, readers never
observe a partially updated ring. Lookups are lock free.
*/
type Cluster struct {
	mu       sync.Mutex
	opts     []Option
	members  []Node
	snapshot atomic.Pointer[Ring]
}

// NewCluster creates empty cluster topology
func NewCluster(opts ...Option) *Cluster {
	cluster := &Cluster{opts: opts}
	cluster.snapshot.Store(New(nil, opts...))
	return cluster
}

/*

Join node to the cluster. Joining an identity that already exists replaces
its descriptor.
*/
func (cluster *Cluster) Join(node Node) *Cluster {
	cluster.mu.Lock()
	defer cluster.mu.Unlock()

	for i, member := range cluster.members {
		if member.String() == node.String() {
			cluster.members[i] = node
			cluster.rebuild()
			return cluster
		}
	}

	cluster.members = append(cluster.members, node)
	cluster.rebuild()
	return cluster
}

/*

Leave node from the cluster, no-op if the node is not a member.
*/
func (cluster *Cluster) Leave(node string) *Cluster {
	cluster.mu.Lock()
	defer cluster.mu.Unlock()

	for i, member := range cluster.members {
		if member.String() == node {
			cluster.members = append(cluster.members[:i], cluster.members[i+1:]...)
			cluster.rebuild()
			return cluster
		}
	}

	return cluster
}

// rebuild the ring snapshot, callers must hold mu
func (cluster *Cluster) rebuild() {
	members := make([]Node, len(cluster.members))
	copy(members, cluster.members)
	cluster.snapshot.Store(New(members, cluster.opts...))
}

/*

Ring returns the current immutable ring snapshot
*/
func (cluster *Cluster) Ring() *Ring {
	return cluster.snapshot.Load()
}

/*

Lookup resolves the node that owns the key on the current snapshot
*/
func (cluster *Cluster) Lookup(key string) (Node, bool) {
	return cluster.snapshot.Load().Lookup(key)
}

/*

Size of cluster, number of members joined
*/
func (cluster *Cluster) Size() int {
	return cluster.snapshot.Load().Size()
}

/*

Has return true if node is a member of the cluster
*/
func (cluster *Cluster) Has(node string) bool {
	return cluster.snapshot.Load().Has(node)
}

/*

Members return list of nodes joined the cluster
*/
func (cluster *Cluster) Members() []Node {
	return cluster.snapshot.Load().Members()
}
