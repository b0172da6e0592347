// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package group

import "fmt"

// Candidate is the (elements, operation, identity) triple submitted for
// validation. It holds a private copy of the elements so later edits to the
// caller's set do not affect it.
type Candidate struct {
	elements ElementSet
	op       Operation
	identity int
}

// NewCandidate builds a candidate, copying elements.
func NewCandidate(elements ElementSet, op Operation, identity int) Candidate {
	return Candidate{
		elements: elements.Clone(),
		op:       op,
		identity: identity,
	}
}

// Elements returns the candidate's frozen element set.
func (c Candidate) Elements() ElementSet { return c.elements }

// Operation returns the candidate's operation.
func (c Candidate) Operation() Operation { return c.op }

// Identity returns the candidate identity.
func (c Candidate) Identity() int { return c.identity }

// Modulus is |elements| at the moment of the call.
func (c Candidate) Modulus() int { return c.elements.Len() }

// Group is a validated finite group.
type Group struct {
	elements  []int
	identity  int
	operation string
	inverses  map[int]int
}

// Order returns the number of elements.
func (g *Group) Order() int { return len(g.elements) }

// Elements returns the members in ascending order.
func (g *Group) Elements() []int {
	out := make([]int, len(g.elements))
	copy(out, g.elements)
	return out
}

// Identity returns the identity element.
func (g *Group) Identity() int { return g.identity }

// OperationName returns the display name of the group operation.
func (g *Group) OperationName() string { return g.operation }

// Inverse returns the two-sided inverse of x.
func (g *Group) Inverse(x int) (int, bool) {
	inv, ok := g.inverses[x]
	return inv, ok
}

// Inverses returns a copy of the element to inverse mapping.
func (g *Group) Inverses() map[int]int {
	out := make(map[int]int, len(g.inverses))
	for k, v := range g.inverses {
		out[k] = v
	}
	return out
}

func (g *Group) String() string {
	return fmt.Sprintf("Group{order: %d, elements: %s, operation: %s, identity: %d}",
		g.Order(), FormatElements(g.elements), g.operation, g.identity)
}
