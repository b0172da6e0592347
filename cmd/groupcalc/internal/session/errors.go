// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package session

import (
	"errors"
	"fmt"
)

var (
	// ErrIdentityNotSet is returned by Candidate before an identity exists.
	ErrIdentityNotSet = errors.New("identity element not set")

	// ErrMissingArgument is returned when a command needs a value and got none.
	ErrMissingArgument = errors.New("missing argument")

	// ErrNotInteger marks a token that does not parse as a 32-bit integer.
	ErrNotInteger = errors.New("not an integer")

	// ErrSetFull is returned when an add would exceed the element limit.
	ErrSetFull = errors.New("element set is full")
)

// InputError wraps an input-format failure with the offending token.
//
// # Description
//
// Input errors never end the session. The REPL reports each one and keeps
// the prior state.
//
// # Example
//
//	err := NewInputError("abc", ErrNotInteger)
//	fmt.Println(err) // invalid input "abc": not an integer
//
//	if errors.Is(err, ErrNotInteger) { ... }
type InputError struct {
	// Token is the raw input that was rejected.
	Token string

	// Wrapped is the reason, usually one of the sentinels above.
	Wrapped error
}

func (e *InputError) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("invalid input %q", e.Token)
	}
	return fmt.Sprintf("invalid input %q: %v", e.Token, e.Wrapped)
}

// Unwrap returns the underlying reason.
func (e *InputError) Unwrap() error {
	return e.Wrapped
}

// NewInputError creates an InputError.
func NewInputError(token string, reason error) *InputError {
	return &InputError{Token: token, Wrapped: reason}
}
