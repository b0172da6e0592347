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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/AleutianAI/groupcalc/cmd/groupcalc/internal/session"
	"github.com/AleutianAI/groupcalc/pkg/group"
	"github.com/AleutianAI/groupcalc/pkg/logging"
	"github.com/AleutianAI/groupcalc/pkg/ux"
)

var (
	// ErrNilUI is returned when SessionRunnerConfig.UI is nil.
	ErrNilUI = errors.New("session runner: UI is required")

	// ErrNilInput is returned when SessionRunnerConfig.Input is nil.
	ErrNilInput = errors.New("session runner: input reader is required")

	// ErrStatsUnavailable is reported by `stats` when no metrics gatherer
	// was configured.
	ErrStatsUnavailable = errors.New("validation statistics are not being collected")
)

// commandHelp is the command table in help order. The order also breaks
// ties between equally close suggestions.
var commandHelp = []ux.CommandHelp{
	{Name: "add", Usage: "add <int> [<int> ...]", Description: "Add one or more elements to the set"},
	{Name: "identity", Usage: "identity <int>", Description: "Set the identity element"},
	{Name: "list", Usage: "list", Description: "Show the current elements and identity"},
	{Name: "create", Usage: "create", Description: "Validate the set as a group under addition mod |S|"},
	{Name: "table", Usage: "table", Description: "Show the Cayley table of the current set"},
	{Name: "stats", Usage: "stats", Description: "Show validation statistics for this session"},
	{Name: "help", Usage: "help", Description: "Show this help"},
	{Name: "exit", Usage: "exit", Description: "Exit the calculator"},
	{Name: "quit", Usage: "quit", Description: "Exit the calculator"},
}

func commandNames() []string {
	names := make([]string, 0, len(commandHelp))
	for _, c := range commandHelp {
		names = append(names, c.Name)
	}
	return names
}

// SessionRunnerConfig holds everything needed to create a SessionRunner.
//
// # Fields
//
//   - UI: Required. Renders all session output.
//   - Input: Required. Source of command lines.
//   - Prompter: Optional. Asks for missing arguments. Default: line prompter
//     over Input.
//   - Operation: Optional. Default: group.ModularAddition.
//   - MaxElements: Optional. Default: session.DefaultMaxElements.
//   - Registry: Optional. When set, validation metrics are registered on it
//     and `stats` reads them back.
//   - Logger: Optional. Default: logging.Default().
//   - SessionID: Optional. Default: a new UUID.
//   - Output: Optional. Where prompts go for readers that do not draw their
//     own. Default: os.Stdout.
type SessionRunnerConfig struct {
	UI          ux.SessionUI
	Input       InputReader
	Prompter    ValuePrompter
	Operation   group.Operation
	MaxElements int
	Registry    *prometheus.Registry
	Logger      *logging.Logger
	SessionID   string
	Output      io.Writer
}

// SessionRunner drives one interactive calculator session.
//
// # Description
//
// Reads a command per line, dispatches on the first token and mutates the
// session state. Recoverable errors (bad input, failed axioms) are reported
// through the UI and the loop continues. Only input stream failures end the
// session with an error.
//
// # Thread Safety
//
// Not thread-safe. One runner per session, driven by a single goroutine.
type SessionRunner struct {
	ui          ux.SessionUI
	input       InputReader
	prompter    ValuePrompter
	state       *session.State
	validator   *group.Validator
	gatherer    prometheus.Gatherer
	suggester   *CommandSuggester
	logger      *logging.Logger
	sessionID   string
	out         io.Writer
	validations int
}

// NewSessionRunner validates cfg and applies defaults.
func NewSessionRunner(cfg SessionRunnerConfig) (*SessionRunner, error) {
	if cfg.UI == nil {
		return nil, ErrNilUI
	}
	if cfg.Input == nil {
		return nil, ErrNilInput
	}
	if cfg.Operation == nil {
		cfg.Operation = group.ModularAddition{}
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.Prompter == nil {
		cfg.Prompter = NewLinePrompter(cfg.UI, cfg.Input, cfg.Output)
	}

	logger := cfg.Logger.With("session_id", cfg.SessionID)
	opts := []group.Option{group.WithLogger(logger.Slog())}

	var gatherer prometheus.Gatherer
	if cfg.Registry != nil {
		opts = append(opts, group.WithMetrics(group.NewMetrics(cfg.Registry)))
		gatherer = cfg.Registry
	}

	return &SessionRunner{
		ui:        cfg.UI,
		input:     cfg.Input,
		prompter:  cfg.Prompter,
		state:     session.New(cfg.Operation, cfg.MaxElements),
		validator: group.NewValidator(opts...),
		gatherer:  gatherer,
		suggester: NewCommandSuggester(commandNames(), 2),
		logger:    logger,
		sessionID: cfg.SessionID,
		out:       cfg.Output,
	}, nil
}

// SessionID returns the identifier shown in the header and logs.
func (r *SessionRunner) SessionID() string {
	return r.sessionID
}

// Validations returns how many `create` commands reached the validator.
func (r *SessionRunner) Validations() int {
	return r.validations
}

// Run executes the read-dispatch loop until exit, end of input or ctx
// cancellation.
//
// # Outputs
//
//   - error: nil on a normal end; a wrapped read error otherwise
func (r *SessionRunner) Run(ctx context.Context) error {
	r.ui.Header(ux.HeaderConfig{
		SessionID: r.sessionID,
		Operation: r.state.Operation().Name(),
	})
	r.logger.Info("session started", "operation", r.state.Operation().Name())

	defer func() {
		r.ui.SessionEnd(r.sessionID, r.validations)
		r.logger.Info("session ended", "validations", r.validations)
	}()

	for {
		if err := ctx.Err(); err != nil {
			r.logger.Debug("session cancelled", "reason", err)
			return nil
		}

		showPrompt(r.input, r.out, r.ui.Prompt())
		line, err := r.input.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}
		if line == "" {
			continue
		}

		exit, err := r.Dispatch(ctx, line)
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}

// Dispatch runs a single command line.
//
// # Outputs
//
//   - bool: true when the command ends the session
//   - error: non-nil only for input stream failures while prompting
func (r *SessionRunner) Dispatch(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	r.logger.Debug("command", "name", name, "args", args)

	switch name {
	case "add":
		return false, r.add(args)
	case "identity":
		return false, r.identity(args)
	case "list":
		r.list()
	case "create":
		r.create(ctx)
	case "table":
		r.table()
	case "stats":
		r.stats()
	case "help":
		r.ui.Help(commandHelp)
	case "exit", "quit":
		return true, nil
	default:
		suggestion := ""
		if s := r.suggester.Suggest(fields[0]); s != nil {
			suggestion = s.Suggested
		}
		r.ui.UnknownCommand(fields[0], suggestion)
	}
	return false, nil
}

func (r *SessionRunner) add(args []string) error {
	if len(args) == 0 {
		answer, err := r.promptValue("Enter elements", validateElements)
		if err != nil {
			return err
		}
		args = strings.Fields(answer)
	}

	res := r.state.Add(args)
	r.ui.ElementsAdded(res.Added, res.Duplicates)
	for _, err := range res.Errors {
		r.ui.InputError(err)
	}
	r.logger.Debug("elements added",
		"added", len(res.Added), "duplicates", len(res.Duplicates),
		"rejected", len(res.Errors), "size", r.state.Len())
	return nil
}

func (r *SessionRunner) identity(args []string) error {
	token := strings.Join(args, " ")
	if token == "" {
		answer, err := r.promptValue("Enter identity element", validateElement)
		if err != nil {
			return err
		}
		token = answer
	}

	v, err := r.state.SetIdentity(token)
	if err != nil {
		r.ui.InputError(err)
		return nil
	}
	r.ui.IdentitySet(v)
	return nil
}

// promptValue treats end of input as an empty answer so the command
// reports a missing argument and the loop then sees io.EOF.
func (r *SessionRunner) promptValue(label string, validate func(string) error) (string, error) {
	answer, err := r.prompter.PromptValue(label, validate)
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("prompt %q: %w", label, err)
	}
	return answer, nil
}

func (r *SessionRunner) list() {
	id, ok := r.state.Identity()
	r.ui.State(r.state.Elements(), id, ok)
}

func (r *SessionRunner) create(ctx context.Context) {
	candidate, err := r.state.Candidate()
	if err != nil {
		r.ui.InputError(err)
		return
	}

	r.validations++
	g, err := r.validator.Validate(ctx, candidate)
	if err != nil {
		r.ui.ValidationFailed(err)
		return
	}
	r.ui.GroupCreated(g)
}

func (r *SessionRunner) table() {
	t, err := group.CayleyTable(r.state.Set(), r.state.Operation())
	if err != nil {
		r.ui.ValidationFailed(err)
		return
	}
	r.ui.Table(t)
}

func (r *SessionRunner) stats() {
	if r.gatherer == nil {
		r.ui.Error(ErrStatsUnavailable)
		return
	}
	summary, err := group.Summarize(r.gatherer)
	if err != nil {
		r.ui.Error(fmt.Errorf("read statistics: %w", err))
		return
	}
	r.ui.Stats(summary)
}
