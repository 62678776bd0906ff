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

/*

Node is a member of the ring. Its string form is the canonical identity,
used both as registry key and as the seed of its virtual placements. The
weight is the relative capacity of the node, nodes with higher weight claim
a proportionally larger share of the ring. Two nodes are equal iff their
string forms are equal.
*/
type Node interface {
	String() string
	Weight() int
}

/*

Host is a unit-capacity member of the ring, identified by its address.
*/
type Host string

func (host Host) String() string { return string(host) }
func (host Host) Weight() int    { return 1 }

/*

Member is a ring member with explicit capacity. Use it when nodes of the
cluster are not equal, e.g. cache servers with 128mb, 512mb and 128mb of
memory, so that the larger server claims a larger share of keys.
*/
type Member struct {
	Addr     string
	Capacity int
}

func (m Member) String() string { return m.Addr }
func (m Member) Weight() int    { return m.Capacity }
