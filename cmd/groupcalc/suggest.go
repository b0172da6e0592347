// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import "strings"

// CommandSuggester proposes the closest known command for a mistyped one.
//
// # Description
//
// Candidates are compared by Levenshtein distance. Ties go to the command
// registered first, so suggestions are deterministic.
//
// # Thread Safety
//
// Immutable after construction; safe for concurrent use.
type CommandSuggester struct {
	commands    []string
	maxDistance int
}

// Suggestion is a proposed correction for a single word.
type Suggestion struct {
	Original  string
	Suggested string
	Distance  int
}

// NewCommandSuggester creates a suggester over commands, in priority order.
func NewCommandSuggester(commands []string, maxDistance int) *CommandSuggester {
	normalized := make([]string, 0, len(commands))
	for _, c := range commands {
		normalized = append(normalized, strings.ToLower(c))
	}
	return &CommandSuggester{commands: normalized, maxDistance: maxDistance}
}

// Suggest returns the best match for word, or nil when word is already a
// command, is shorter than two characters, or nothing is close enough.
func (s *CommandSuggester) Suggest(word string) *Suggestion {
	lower := strings.ToLower(word)
	if len(lower) < 2 {
		return nil
	}

	var best *Suggestion
	for _, cmd := range s.commands {
		if cmd == lower {
			return nil
		}

		lenDiff := len(cmd) - len(lower)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > s.maxDistance {
			continue
		}

		dist := levenshtein(lower, cmd)
		if dist > s.maxDistance {
			continue
		}
		if best == nil || dist < best.Distance {
			best = &Suggestion{Original: word, Suggested: cmd, Distance: dist}
		}
	}
	return best
}

// levenshtein computes edit distance using two rows.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			if a[i-1] == b[j-1] {
				curr[i] = prev[i-1]
			} else {
				curr[i] = 1 + min(prev[i-1], prev[i], curr[i-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}
