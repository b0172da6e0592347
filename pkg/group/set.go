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

import (
	"fmt"
	"slices"
	"strings"
)

// ElementSet is a finite set of unique integers.
//
// The zero value is an empty, ready to use set. Insertion order is not
// preserved; Sorted returns a deterministic view.
type ElementSet struct {
	items map[int]struct{}
}

// NewElementSet returns a set holding the given values. Duplicates collapse.
func NewElementSet(values ...int) ElementSet {
	s := ElementSet{items: make(map[int]struct{}, len(values))}
	for _, v := range values {
		s.items[v] = struct{}{}
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *ElementSet) Add(v int) bool {
	if s.items == nil {
		s.items = make(map[int]struct{})
	}
	if _, ok := s.items[v]; ok {
		return false
	}
	s.items[v] = struct{}{}
	return true
}

// Contains reports whether v is a member.
func (s ElementSet) Contains(v int) bool {
	_, ok := s.items[v]
	return ok
}

// Len returns the cardinality of the set.
func (s ElementSet) Len() int {
	return len(s.items)
}

// Sorted returns the members in ascending order.
func (s ElementSet) Sorted() []int {
	out := make([]int, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Clone returns an independent copy.
func (s ElementSet) Clone() ElementSet {
	out := ElementSet{items: make(map[int]struct{}, len(s.items))}
	for v := range s.items {
		out.items[v] = struct{}{}
	}
	return out
}

// String renders the set as {a, b, c} in ascending order.
func (s ElementSet) String() string {
	return FormatElements(s.Sorted())
}

// FormatElements renders values as {a, b, c}.
func FormatElements(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
