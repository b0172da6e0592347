// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package group verifies the group axioms for finite sets of integers.
//
// # Overview
//
// A Candidate pairs an ElementSet and an Operation with a proposed identity.
// A Validator checks, with modulus = |elements| taken at validation time:
//
//   - Membership: the identity is an element of the set
//   - Closure: a∘b is in the set for every a, b
//   - Associativity: (a∘b)∘c == a∘(b∘c) for every a, b, c
//   - Identity: a∘e == e∘a == a for every a
//   - Inverse: every a has some b with a∘b == b∘a == e
//
// On success Validate returns a *Group. On failure it returns a
// *ValidationError naming every unsatisfied axiom with a counterexample.
// An empty set is rejected with ErrDegenerateGroup before any arithmetic.
//
// # Usage
//
//	v := group.NewValidator(group.WithMetrics(group.NewMetrics(reg)))
//	c := group.NewCandidate(group.NewElementSet(0, 1, 2), group.ModularAddition{}, 0)
//	g, err := v.Validate(ctx, c)
//
// The validator never writes to the terminal; formatting is the caller's job.
package group
