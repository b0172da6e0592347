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

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/AleutianAI/groupcalc/cmd/groupcalc/internal/session"
	"github.com/AleutianAI/groupcalc/pkg/ux"
)

// ValuePrompter asks the user for the argument of a command typed without
// one (`add`, `identity`).
//
// # Description
//
// validate is applied by prompters that can reject input before it is
// submitted; line prompters return the raw answer and let the command
// report format errors the usual way.
//
// # Outputs
//
//   - string: The answer, trimmed. Empty when the user gave none.
//   - error: io.EOF when input ended, or another read error
type ValuePrompter interface {
	PromptValue(label string, validate func(string) error) (string, error)
}

// =============================================================================
// linePrompter: reads the answer from the session's InputReader
// =============================================================================

type linePrompter struct {
	ui    ux.SessionUI
	input InputReader
	out   io.Writer
}

// NewLinePrompter prompts on out and reads the answer from input.
func NewLinePrompter(ui ux.SessionUI, input InputReader, out io.Writer) ValuePrompter {
	return &linePrompter{ui: ui, input: input, out: out}
}

func (p *linePrompter) PromptValue(label string, _ func(string) error) (string, error) {
	showPrompt(p.input, p.out, p.ui.ValuePrompt(label))
	return p.input.ReadLine()
}

// showPrompt lets a PromptingInputReader draw the prompt itself.
func showPrompt(input InputReader, out io.Writer, prompt string) {
	if p, ok := input.(PromptingInputReader); ok {
		p.SetPrompt(prompt)
		return
	}
	_, _ = fmt.Fprint(out, prompt)
}

// =============================================================================
// huhPrompter: interactive form input for terminals
// =============================================================================

type huhPrompter struct{}

// NewHuhPrompter returns a prompter backed by a huh input field.
// Requires a terminal on stdin.
func NewHuhPrompter() ValuePrompter {
	return huhPrompter{}
}

func (huhPrompter) PromptValue(label string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().
		Title(label).
		Value(&value)
	if validate != nil {
		input = input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			return validate(s)
		})
	}

	if err := input.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// =============================================================================
// Answer validators
// =============================================================================

// validateElement accepts exactly one integer.
func validateElement(s string) error {
	_, err := session.ParseElement(s)
	return err
}

// validateElements accepts one or more whitespace-separated integers.
func validateElements(s string) error {
	for _, tok := range strings.Fields(s) {
		if _, err := session.ParseElement(tok); err != nil {
			return err
		}
	}
	return nil
}
