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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDegenerateGroup is returned for an empty element set, where the
	// modulus |S| is zero and the operation is undefined.
	ErrDegenerateGroup = errors.New("degenerate group: element set is empty, modulus is undefined")

	// ErrNilOperation is returned when a candidate carries no operation.
	ErrNilOperation = errors.New("group operation is nil")
)

// Axiom names one of the checked group properties.
type Axiom string

const (
	// AxiomMembership requires the identity to be an element of the set.
	AxiomMembership Axiom = "Membership"
	AxiomClosure    Axiom = "Closure"
	// AxiomAssociativity requires (a∘b)∘c == a∘(b∘c) for every triple.
	AxiomAssociativity Axiom = "Associativity"
	AxiomIdentity      Axiom = "Identity"
	AxiomInverse       Axiom = "Inverse"
)

// Axioms returns every checked axiom in evaluation order.
func Axioms() []Axiom {
	return []Axiom{AxiomMembership, AxiomClosure, AxiomAssociativity, AxiomIdentity, AxiomInverse}
}

// AxiomFailure describes one unsatisfied axiom and the counterexample found.
type AxiomFailure struct {
	Axiom  Axiom
	Detail string
}

func (f AxiomFailure) String() string {
	return fmt.Sprintf("%s unsatisfied: %s", f.Axiom, f.Detail)
}

// ValidationError aggregates every axiom a candidate failed.
//
// # Description
//
// A ValidationError is a normal outcome, not a fault: most user-entered sets
// do not form a group. Error() renders one line per failure so the caller can
// print it directly.
//
// # Example
//
//	_, err := validator.Validate(ctx, candidate)
//	var verr *group.ValidationError
//	if errors.As(err, &verr) {
//	    for _, f := range verr.Failures {
//	        fmt.Println(f.Axiom, f.Detail)
//	    }
//	}
type ValidationError struct {
	Failures []AxiomFailure
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("group axioms unsatisfied:")
	for _, f := range e.Failures {
		b.WriteString("\n  - ")
		b.WriteString(f.String())
	}
	return b.String()
}

// Failed reports whether the given axiom is among the failures.
func (e *ValidationError) Failed(a Axiom) bool {
	for _, f := range e.Failures {
		if f.Axiom == a {
			return true
		}
	}
	return false
}

// Axioms returns the failed axioms in evaluation order.
func (e *ValidationError) Axioms() []Axiom {
	out := make([]Axiom, len(e.Failures))
	for i, f := range e.Failures {
		out[i] = f.Axiom
	}
	return out
}
