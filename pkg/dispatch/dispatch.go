// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// dispatch.go - Splitting a tokenized line into command identifier and
// arguments.

package dispatch

import (
	"strings"

	"github.com/jeranaias/cmdkit/pkg/cmdline"
)

// Result of dispatching one line. When Cmd is empty and Args is not,
// no registered template matched the input (report a bad command).
// When both are empty the line was blank.
type Result struct {
	// Cmd is the resolved command identifier: the leading tokens,
	// joined with single spaces, that prefix-match at least one
	// registered template.
	Cmd string

	// Args holds the rendered forms of the remaining tokens.
	Args []string
}

// Failed reports whether the line named a command no template matches.
func (r Result) Failed() bool { return r.Cmd == "" && len(r.Args) > 0 }

// Blank reports whether the line carried no content at all.
func (r Result) Blank() bool { return r.Cmd == "" && len(r.Args) == 0 }

// Dispatch greedily consumes leading tokens into the command
// identifier. Empty tokens are dropped. A <placeholder>-shaped token
// stops consumption, as does the first token whose tentative extension
// of the identifier matches no template by literal string prefix. The
// untaken remainder becomes the arguments, in rendered form.
//
// The prefix match is over the template text, not token boundaries, so
// an abbreviation like "r" resolves against "run" even though "r" was
// never registered. Callers that want exact identifiers must match the
// result against their own table.
func Dispatch(tokens []cmdline.Token, templates []string) Result {
	args := make([]string, 0, len(tokens))
	for _, tk := range tokens {
		args = append(args, tk.String())
	}

	cmd := ""
	candidates := templates

	for len(args) > 0 {
		next := args[0]

		// Placeholder-shaped input is literal argument material, never
		// part of the command name.
		if strings.HasPrefix(next, "<") && strings.HasSuffix(next, ">") {
			break
		}

		if next == "" {
			args = args[1:]
			continue
		}

		extended := next
		if cmd != "" {
			extended = cmd + " " + next
		}

		var remaining []string
		for _, tmpl := range candidates {
			if strings.HasPrefix(tmpl, extended) {
				remaining = append(remaining, tmpl)
			}
		}
		if len(remaining) == 0 {
			break
		}

		candidates = remaining
		cmd = extended
		args = args[1:]
	}

	return Result{Cmd: cmd, Args: args}
}
