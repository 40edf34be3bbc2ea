// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// shell.go - The interactive read-eval loop.

package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/cmdkit/pkg/cmdline"
	"github.com/jeranaias/cmdkit/pkg/complete"
	"github.com/jeranaias/cmdkit/pkg/dispatch"
)

// =============================================================================
// APPLICATION CONTRACT
// =============================================================================

// App is the command executor supplied by the embedding application.
type App interface {
	// Templates returns the exhaustive list of command templates. It
	// must agree with the Expander's list when completion is enabled.
	Templates() []string

	// Execute runs one resolved command. cmd is the identifier chosen
	// by dispatch; args are the remaining tokens in rendered form. A
	// returned error is shown to the user and the loop continues.
	Execute(cmd string, args []string) error
}

// Starter is implemented by Apps that want a hook before the first
// prompt.
type Starter interface {
	Startup()
}

// Exiter is implemented by Apps that want a hook when the loop ends,
// whether by end-of-input or a read error.
type Exiter interface {
	Exit()
}

// =============================================================================
// SHELL
// =============================================================================

// DefaultPrompt is used when Shell.Prompt is left empty.
const DefaultPrompt = "> "

// lineEditor is the slice of the liner API the loop drives. Split out
// so the loop can be tested with scripted reads.
type lineEditor interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	SetCtrlCAborts(aborts bool)
	SetTabCompletionStyle(style liner.TabStyle)
	SetWordCompleter(fn liner.WordCompleter)
	Close() error
}

// Shell runs the interactive command loop: read a line, tokenize,
// dispatch against the App's templates, execute. One logical thread of
// control; every blocking call waits on the human operator.
type Shell struct {
	// App executes resolved commands. Required.
	App App

	// Expander enables tab completion when non-nil.
	Expander complete.Expander

	// Prompt is shown before each input line.
	Prompt string

	// newEditor overrides line editor construction. Nil means liner.
	newEditor func() lineEditor
}

// New returns a Shell for app. exp may be nil to disable completion.
func New(app App, exp complete.Expander) *Shell {
	return &Shell{App: app, Expander: exp}
}

// Run blocks reading and executing commands until end-of-input or an
// unrecoverable read error. Ctrl-C aborts the current line only.
// The App's Startup and Exit hooks, when present, run once each.
func (s *Shell) Run() error {
	if st, ok := s.App.(Starter); ok {
		st.Startup()
	}
	defer func() {
		if ex, ok := s.App.(Exiter); ok {
			ex.Exit()
		}
	}()

	applyColorProfile()

	newEditor := s.newEditor
	if newEditor == nil {
		newEditor = func() lineEditor { return liner.NewLiner() }
	}
	line := newEditor()
	defer line.Close()

	line.SetCtrlCAborts(true)
	// Print the candidate list instead of cycling, matching the
	// pager-style listing users expect from readline's list mode.
	line.SetTabCompletionStyle(liner.TabPrints)
	if s.Expander != nil {
		line.SetWordCompleter(s.completeWord)
	}

	prompt := s.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	prompt = colorize(promptStyle, prompt)

	templates := s.App.Templates()

	for {
		input, err := line.Prompt(prompt)
		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			// Ctrl-C: drop the current line, keep the loop alive.
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		default:
			fmt.Fprintf(os.Stderr, "%s %v\n", colorize(errorStyle, "Read error:"), err)
			return err
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		res := dispatch.Dispatch(cmdline.NewLine(input).Tokens(), templates)
		if res.Blank() {
			continue
		}
		if res.Failed() {
			fmt.Println(colorize(errorStyle, "Bad command."))
			continue
		}

		if err := s.App.Execute(res.Cmd, res.Args); err != nil {
			fmt.Println(colorize(errorStyle, err.Error()))
		}
	}
}

// completeWord adapts the completion engine to the line editor: the
// text before the cursor is completed as a whole, so each candidate's
// replacement spans the full head of the line.
func (s *Shell) completeWord(line string, pos int) (head string, completions []string, tail string) {
	for _, cand := range complete.Complete(line[:pos], s.Expander) {
		completions = append(completions, cand.Replacement)
	}
	return "", completions, line[pos:]
}
