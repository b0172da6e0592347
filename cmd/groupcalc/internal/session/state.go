// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package session holds the mutable working state of one calculator session:
// the element set under construction and the identity slot.
//
// State is owned by the single REPL loop and is not safe for concurrent use.
package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AleutianAI/groupcalc/pkg/group"
)

// DefaultMaxElements bounds the working set. Associativity is O(n³).
const DefaultMaxElements = 256

// State is the working element set plus the candidate identity.
type State struct {
	elements    group.ElementSet
	identity    *int
	maxElements int
	operation   group.Operation
}

// New creates an empty State using op for validation. maxElements <= 0
// selects DefaultMaxElements.
func New(op group.Operation, maxElements int) *State {
	if maxElements <= 0 {
		maxElements = DefaultMaxElements
	}
	return &State{
		elements:    group.NewElementSet(),
		maxElements: maxElements,
		operation:   op,
	}
}

// AddResult reports the outcome of one add command.
type AddResult struct {
	// Added holds values newly inserted, in input order.
	Added []int
	// Duplicates holds values that were already present.
	Duplicates []int
	// Errors holds one entry per rejected token.
	Errors []error
}

// Add parses every token and inserts the valid ones.
//
// Invalid tokens are reported individually and do not stop the remaining
// tokens from being inserted.
func (s *State) Add(tokens []string) AddResult {
	var res AddResult
	if len(tokens) == 0 {
		res.Errors = append(res.Errors, ErrMissingArgument)
		return res
	}

	for _, tok := range tokens {
		v, err := ParseElement(tok)
		if err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}
		if s.elements.Contains(v) {
			res.Duplicates = append(res.Duplicates, v)
			continue
		}
		if s.elements.Len() >= s.maxElements {
			res.Errors = append(res.Errors, NewInputError(tok,
				fmt.Errorf("%w (limit %d)", ErrSetFull, s.maxElements)))
			continue
		}
		s.elements.Add(v)
		res.Added = append(res.Added, v)
	}
	return res
}

// SetIdentity parses token and stores it as the identity. On error the prior
// identity is kept.
func (s *State) SetIdentity(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, ErrMissingArgument
	}
	v, err := ParseElement(token)
	if err != nil {
		return 0, err
	}
	s.identity = &v
	return v, nil
}

// Identity returns the identity and whether it has been set.
func (s *State) Identity() (int, bool) {
	if s.identity == nil {
		return 0, false
	}
	return *s.identity, true
}

// Elements returns the working set in ascending order.
func (s *State) Elements() []int {
	return s.elements.Sorted()
}

// Len returns the size of the working set.
func (s *State) Len() int {
	return s.elements.Len()
}

// Operation returns the fixed operation used for validation.
func (s *State) Operation() group.Operation {
	return s.operation
}

// Set returns a copy of the working set.
func (s *State) Set() group.ElementSet {
	return s.elements.Clone()
}

// Candidate builds a fresh validation candidate from the current state.
func (s *State) Candidate() (group.Candidate, error) {
	id, ok := s.Identity()
	if !ok {
		return group.Candidate{}, ErrIdentityNotSet
	}
	return group.NewCandidate(s.elements, s.operation, id), nil
}

// ParseElement parses a base-10, 32-bit signed integer.
//
// The 32-bit bound keeps a + b within int for the validator's arithmetic.
func ParseElement(token string) (int, error) {
	tok := strings.TrimSpace(token)
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, NewInputError(tok, ErrNotInteger)
	}
	return int(v), nil
}
