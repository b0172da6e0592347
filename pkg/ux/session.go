// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/AleutianAI/groupcalc/pkg/group"
)

// TestModeBanner is printed when the CLI starts with --test.
const TestModeBanner = "Test mode enabled."

// CommandPromptHint is the standing hint shown with the session header.
const CommandPromptHint = "Command (type help to list commands)"

// HeaderConfig describes the session being started.
type HeaderConfig struct {
	SessionID string
	Operation string
}

// CommandHelp is one entry of the help listing.
type CommandHelp struct {
	Name        string
	Usage       string
	Description string
}

// SessionUI renders every user-visible element of a calculator session.
// Implementations adapt the output to a personality level.
type SessionUI interface {
	// Header displays the session banner.
	Header(config HeaderConfig)

	// Prompt returns the styled input prompt string
	Prompt() string

	// ValuePrompt returns the prompt used when a command asks for a value.
	ValuePrompt(label string) string

	// Help lists the available commands.
	Help(commands []CommandHelp)

	// ElementsAdded reports inserted values and values already present.
	ElementsAdded(added, duplicates []int)

	// InputError reports one recoverable input-format error.
	InputError(err error)

	// IdentitySet confirms a new identity.
	IdentitySet(v int)

	// State shows the working set and the identity slot.
	State(elements []int, identity int, identitySet bool)

	// GroupCreated shows a successfully validated group.
	GroupCreated(g *group.Group)

	// ValidationFailed shows every failed axiom, or the degenerate-set error.
	ValidationFailed(err error)

	// Table shows a Cayley table.
	Table(t group.Table)

	// Stats shows the session validation counters.
	Stats(s group.MetricsSummary)

	// UnknownCommand shows a usage hint and an optional suggestion.
	UnknownCommand(command, suggestion string)

	// Error shows an unexpected error.
	Error(err error)

	// SessionEnd shows the goodbye line.
	SessionEnd(sessionID string, validations int)

	// Banner prints a line verbatim, regardless of personality.
	Banner(text string)
}

// terminalSessionUI implements SessionUI for terminal output
type terminalSessionUI struct {
	writer      io.Writer
	personality PersonalityLevel
}

// NewSessionUI creates a SessionUI on stdout at the current personality
func NewSessionUI() SessionUI {
	return &terminalSessionUI{
		writer:      os.Stdout,
		personality: GetPersonality(),
	}
}

// NewSessionUIWithWriter creates a SessionUI with a custom writer (for testing)
func NewSessionUIWithWriter(w io.Writer, personality PersonalityLevel) SessionUI {
	return &terminalSessionUI{
		writer:      w,
		personality: personality,
	}
}

// write is a helper that writes formatted output.
// Terminal write errors are non-recoverable here and are ignored.
func (u *terminalSessionUI) write(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(u.writer, format, args...)
}

func (u *terminalSessionUI) writeln(args ...interface{}) {
	_, _ = fmt.Fprintln(u.writer, args...)
}

func (u *terminalSessionUI) styled() bool {
	return u.personality == PersonalityFull || u.personality == PersonalityStandard
}

func (u *terminalSessionUI) Header(config HeaderConfig) {
	switch u.personality {
	case PersonalityMachine:
		u.write("SESSION_START: session=%s operation=%q\n", config.SessionID, config.Operation)
	case PersonalityMinimal:
		u.writeln("Group Calculator")
		u.writeln(CommandPromptHint + ".")
	case PersonalityStandard:
		u.writeln(Styles.Title.Render("Group Calculator") + " " +
			Styles.Muted.Render("("+config.Operation+")"))
		u.writeln(Styles.Muted.Render(CommandPromptHint + "."))
	default:
		var content strings.Builder
		content.WriteString(Styles.Highlight.Render("Group Calculator"))
		content.WriteString("\n")
		content.WriteString(fmt.Sprintf("Operation: %s", Styles.Success.Render(config.Operation)))
		if config.SessionID != "" {
			content.WriteString("\n")
			content.WriteString(fmt.Sprintf("Session: %s", Styles.Muted.Render(config.SessionID)))
		}
		u.writeln(Styles.Box.Width(60).Render(content.String()))
		u.writeln(Styles.Muted.Render(CommandPromptHint + ", 'exit' to quit."))
		u.writeln()
	}
}

func (u *terminalSessionUI) Prompt() string {
	if !u.styled() {
		return "> "
	}
	return Styles.Highlight.Render("> ")
}

func (u *terminalSessionUI) ValuePrompt(label string) string {
	if !u.styled() {
		return label + ": "
	}
	return Styles.Subtitle.Render(label+":") + " "
}

func (u *terminalSessionUI) Help(commands []CommandHelp) {
	if u.personality == PersonalityMachine {
		for _, c := range commands {
			u.write("COMMAND: %s\t%s\n", c.Usage, c.Description)
		}
		return
	}

	width := 0
	for _, c := range commands {
		width = max(width, len(c.Usage))
	}
	if !u.styled() {
		u.writeln("Available commands:")
		for _, c := range commands {
			u.write("  %-*s  %s\n", width, c.Usage, c.Description)
		}
		return
	}

	u.writeln(Styles.Bold.Render("Available commands:"))
	for _, c := range commands {
		usage := Styles.Highlight.Render(fmt.Sprintf("%-*s", width, c.Usage))
		u.write("  %s %s  %s\n", IconBullet.Render(), usage, c.Description)
	}
}

func (u *terminalSessionUI) ElementsAdded(added, duplicates []int) {
	if u.personality == PersonalityMachine {
		if len(added) > 0 {
			u.write("ADDED: %s\n", joinInts(added, " "))
		}
		if len(duplicates) > 0 {
			u.write("DUPLICATE: %s\n", joinInts(duplicates, " "))
		}
		return
	}

	if len(added) == 1 {
		u.success(fmt.Sprintf("Element %d added.", added[0]))
	} else if len(added) > 1 {
		u.success(fmt.Sprintf("Elements added: %s", group.FormatElements(added)))
	}
	for _, d := range duplicates {
		u.warning(fmt.Sprintf("Element %d is already in the set.", d))
	}
}

func (u *terminalSessionUI) InputError(err error) {
	if u.personality == PersonalityMachine {
		u.write("INPUT_ERROR: %v\n", err)
		return
	}
	u.failure(capitalize(err.Error()))
}

func (u *terminalSessionUI) IdentitySet(v int) {
	if u.personality == PersonalityMachine {
		u.write("IDENTITY: %d\n", v)
		return
	}
	u.success(fmt.Sprintf("Identity set to %d.", v))
}

func (u *terminalSessionUI) State(elements []int, identity int, identitySet bool) {
	if u.personality == PersonalityMachine {
		u.write("ELEMENTS: %s\n", group.FormatElements(elements))
		if identitySet {
			u.write("IDENTITY: %d\n", identity)
		} else {
			u.writeln("IDENTITY: not set")
		}
		return
	}

	set := group.FormatElements(elements)
	if u.styled() {
		set = Styles.Highlight.Render(set)
	}
	u.write("Current elements: %s %s\n", set, u.muted(fmt.Sprintf("(%d)", len(elements))))
	if identitySet {
		u.write("Identity element: %d\n", identity)
	} else {
		u.writeln("Identity element not set.")
	}
}

func (u *terminalSessionUI) GroupCreated(g *group.Group) {
	inverses := make([]string, 0, g.Order())
	for _, x := range g.Elements() {
		inv, _ := g.Inverse(x)
		inverses = append(inverses, fmt.Sprintf("%d↔%d", x, inv))
	}

	if u.personality == PersonalityMachine {
		u.write("GROUP_CREATED: %s\n", g)
		u.write("INVERSES: %s\n", strings.Join(inverses, " "))
		return
	}
	u.success("Group created: " + g.String())
	u.writeln(u.muted("  Inverses: " + strings.Join(inverses, ", ")))
}

func (u *terminalSessionUI) ValidationFailed(err error) {
	var verr *group.ValidationError
	if !errors.As(err, &verr) {
		if u.personality == PersonalityMachine {
			u.write("GROUP_ERROR: %v\n", err)
			return
		}
		u.failure(fmt.Sprintf("Error creating group: %v", err))
		return
	}

	if u.personality == PersonalityMachine {
		for _, f := range verr.Failures {
			u.write("AXIOM_FAILED: %s: %s\n", f.Axiom, f.Detail)
		}
		return
	}

	if u.personality != PersonalityFull {
		u.failure("Error creating group:")
		for _, f := range verr.Failures {
			u.write("  %s %s: %s\n", u.icon(IconError), u.errorText(string(f.Axiom)+" unsatisfied"), f.Detail)
		}
		return
	}

	var content strings.Builder
	content.WriteString(Styles.Error.Bold(true).Render("Error creating group"))
	for _, f := range verr.Failures {
		content.WriteString("\n")
		content.WriteString(fmt.Sprintf("%s %s %s", IconError.Render(),
			Styles.Error.Render(string(f.Axiom)+" unsatisfied:"), f.Detail))
	}
	u.writeln(Styles.ErrorBox.Width(72).Render(content.String()))
}

func (u *terminalSessionUI) Table(t group.Table) {
	title := fmt.Sprintf("%s (mod %d) over %s", t.Symbol, t.Modulus, group.FormatElements(t.Elements))

	if u.personality == PersonalityMachine {
		u.write("TABLE: %s\n", title)
		for i, row := range t.Cells {
			u.write("ROW %d: %s\n", t.Elements[i], joinInts(row, " "))
		}
		return
	}

	members := group.NewElementSet(t.Elements...)
	headers := make([]string, 0, len(t.Elements)+1)
	headers = append(headers, t.Symbol)
	for _, e := range t.Elements {
		headers = append(headers, strconv.Itoa(e))
	}
	rows := make([][]string, len(t.Cells))
	for i, cells := range t.Cells {
		row := make([]string, 0, len(cells)+1)
		row = append(row, strconv.Itoa(t.Elements[i]))
		for _, v := range cells {
			row = append(row, strconv.Itoa(v))
		}
		rows[i] = row
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	if u.styled() {
		tbl = tbl.BorderStyle(Styles.TableBorder).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow || col == 0 {
					return Styles.TableHeader
				}
				if !members.Contains(t.Cells[row][col-1]) {
					return Styles.TableAlien
				}
				return Styles.TableCell
			})
	} else {
		tbl = tbl.StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	}

	u.writeln(u.muted("Cayley table: " + title))
	u.writeln(tbl.Render())
}

func (u *terminalSessionUI) Stats(s group.MetricsSummary) {
	failures := make([]string, 0, len(group.Axioms()))
	for _, a := range group.Axioms() {
		sep := " "
		if u.personality == PersonalityMachine {
			sep = "="
		}
		failures = append(failures, fmt.Sprintf("%s%s%d", a, sep, s.AxiomFailures[a]))
	}

	if u.personality == PersonalityMachine {
		u.write("STATS: validations=%d valid=%d invalid=%d degenerate=%d\n",
			s.Total(), s.Valid, s.Invalid, s.Degenerate)
		u.write("AXIOM_FAILURES: %s\n", strings.Join(failures, " "))
		return
	}
	u.write("Validations: %d (%d valid, %d invalid, %d degenerate)\n",
		s.Total(), s.Valid, s.Invalid, s.Degenerate)
	u.write("Axiom failures: %s\n", strings.Join(failures, ", "))
}

func (u *terminalSessionUI) UnknownCommand(command, suggestion string) {
	if u.personality == PersonalityMachine {
		if suggestion != "" {
			u.write("UNKNOWN_COMMAND: %s suggest=%s\n", command, suggestion)
		} else {
			u.write("UNKNOWN_COMMAND: %s\n", command)
		}
		return
	}

	u.writeln("Unknown command. Type 'help' for available commands.")
	if suggestion == "" {
		return
	}
	if u.styled() {
		u.writeln(IconArrow.Render() + " " + Styles.Warning.Render(fmt.Sprintf("Did you mean %q?", suggestion)) +
			Styles.Muted.Render(fmt.Sprintf(" (you typed %q)", command)))
		return
	}
	u.write("Did you mean %q? (you typed %q)\n", suggestion, command)
}

func (u *terminalSessionUI) Error(err error) {
	if u.personality == PersonalityMachine {
		u.write("ERROR: %v\n", err)
		return
	}
	u.failure(fmt.Sprintf("Error: %v", err))
}

func (u *terminalSessionUI) SessionEnd(sessionID string, validations int) {
	if u.personality == PersonalityMachine {
		u.write("SESSION_END: session=%s validations=%d\n", sessionID, validations)
		return
	}
	if u.styled() && sessionID != "" {
		u.writeln(Styles.Muted.Render(fmt.Sprintf("Session %s: %d validation(s)", sessionID, validations)))
	}
	u.writeln("Goodbye!")
}

func (u *terminalSessionUI) Banner(text string) {
	u.writeln(text)
}

func (u *terminalSessionUI) success(text string) {
	if u.styled() {
		u.write("%s %s\n", IconSuccess.Render(), Styles.Success.Render(text))
		return
	}
	u.writeln(text)
}

func (u *terminalSessionUI) warning(text string) {
	if u.styled() {
		u.write("%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
		return
	}
	u.writeln(text)
}

func (u *terminalSessionUI) failure(text string) {
	if u.styled() {
		u.write("%s %s\n", IconError.Render(), Styles.Error.Render(text))
		return
	}
	u.writeln(text)
}

func (u *terminalSessionUI) muted(text string) string {
	if u.styled() {
		return Styles.Muted.Render(text)
	}
	return text
}

func (u *terminalSessionUI) errorText(text string) string {
	if u.styled() {
		return Styles.Error.Render(text)
	}
	return text
}

func (u *terminalSessionUI) icon(i Icon) string {
	if u.styled() {
		return i.Render()
	}
	return "-"
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
