// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// complete.go - Template-driven tab completion for command input.

package complete

import (
	"sort"
	"strings"

	"github.com/jeranaias/cmdkit/pkg/cmdline"
)

// =============================================================================
// EXPANSION PROVIDER
// =============================================================================

// Expander supplies the command grammar and, per template part, the
// literal values that are valid at that position. It is implemented by
// the embedding application.
type Expander interface {
	// Templates returns the exhaustive list of command templates. A
	// template is a line of space-separated literal words and
	// <placeholder> parts, e.g. "set attr1 <bool>".
	Templates() []string

	// Expand returns the valid literal values for the given template
	// part. typed holds the rendered forms of the tokens consumed so
	// far, including the one currently being completed; implementations
	// usually look at the last entry. For a literal-word part the
	// conventional result is just that word.
	Expand(part string, typed []string) []string
}

// =============================================================================
// CANDIDATES
// =============================================================================

// Candidate is one completion offered to the line editor. Display is
// what the editor shows (and the dedup key); Replacement is the full
// text that replaces the line up to the cursor.
type Candidate struct {
	Display     string
	Replacement string
}

// IsPlaceholder reports whether a template part is a <placeholder>
// rather than a literal word.
func IsPlaceholder(part string) bool {
	return strings.HasPrefix(part, "<") && strings.HasSuffix(part, ">")
}

// Complete computes the candidates for the last (possibly partial)
// token of line. Returns nil when the line contains malformed quoting.
//
// Each template is walked part by part against the typed tokens. Fully
// typed literal parts must match one of the expanded values exactly;
// fully typed placeholder parts are accepted unconditionally. The part
// aligned with the last typed token contributes one candidate per
// expanded value that starts with the partial text. Candidates are
// deduplicated by display text (first occurrence wins) and sorted
// ascending.
func Complete(line string, exp Expander) []Candidate {
	typed := cmdline.NewLine(line).Tokens()

	// Malformed quoting suppresses completion for the whole line.
	for _, tk := range typed {
		if tk.IsError() {
			return nil
		}
	}

	seen := make(map[string]struct{})
	var out []Candidate

templates:
	for _, tmpl := range exp.Templates() {
		parts := cmdline.NewLine(tmpl).Tokens()

		var prefix strings.Builder
		context := make([]string, 0, len(typed))

		for i, part := range parts {
			// Every typed token is already classified; this template
			// cannot contribute to the token being completed.
			if i == len(typed) {
				continue templates
			}

			tk := typed[i]
			context = append(context, tk.String())
			values := exp.Expand(part.Text(), context)

			if i != len(typed)-1 {
				// Fully typed token: the part must be satisfied before
				// matching continues. Placeholders accept any token.
				if !IsPlaceholder(part.Text()) {
					ok := false
					for _, v := range values {
						if v == tk.Text() {
							ok = true
							break
						}
					}
					if !ok {
						continue templates
					}
				}
				prefix.WriteString(tk.String())
				prefix.WriteByte(' ')
				continue
			}

			// The token being completed: offer every value the partial
			// text is a prefix of.
			matched := false
			for _, v := range values {
				if !strings.HasPrefix(v, tk.Text()) {
					continue
				}

				display := cmdline.Render(v)
				replacement := prefix.String() + display
				if len(parts) > i+1 {
					replacement += " "
				}

				if _, dup := seen[display]; !dup {
					seen[display] = struct{}{}
					out = append(out, Candidate{Display: display, Replacement: replacement})
				}
				matched = true
			}
			if !matched {
				continue templates
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Display < out[j].Display })
	return out
}
