// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package complete

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeExpander serves canned values for placeholder parts and echoes
// literal parts back, which is the conventional behavior.
type fakeExpander struct {
	templates []string
	values    map[string][]string
	contexts  [][]string // records every context Expand was called with
}

func (f *fakeExpander) Templates() []string { return f.templates }

func (f *fakeExpander) Expand(part string, typed []string) []string {
	ctx := make([]string, len(typed))
	copy(ctx, typed)
	f.contexts = append(f.contexts, ctx)

	if IsPlaceholder(part) {
		return f.values[part]
	}
	return []string{part}
}

func displays(cands []Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Display
	}
	return out
}

// =============================================================================
// TEMPLATE WALK
// =============================================================================

func TestComplete_PartialLiteral(t *testing.T) {
	exp := &fakeExpander{
		templates: []string{"set attr1 <bool>", "set attr2 <int>"},
	}

	cands := Complete("set a", exp)

	require.Equal(t, []string{"attr1", "attr2"}, displays(cands))
	require.Equal(t, "set attr1 ", cands[0].Replacement)
	require.Equal(t, "set attr2 ", cands[1].Replacement)
}

func TestComplete_NewTokenAfterSpace(t *testing.T) {
	exp := &fakeExpander{
		templates: []string{"set attr1 <bool>", "set attr2 <int>", "run"},
	}

	cands := Complete("set ", exp)

	require.Equal(t, []string{"attr1", "attr2"}, displays(cands))
}

func TestComplete_FirstToken(t *testing.T) {
	exp := &fakeExpander{
		templates: []string{"set attr1 <bool>", "store <filename>", "run", "help"},
	}

	cands := Complete("s", exp)

	require.Equal(t, []string{"set", "store"}, displays(cands))
	// "run" has no parts after the first, so its sibling candidates
	// would carry no trailing separator; these two do.
	require.Equal(t, "set ", cands[0].Replacement)
	require.Equal(t, "store ", cands[1].Replacement)
}

func TestComplete_LastPartNoTrailingSpace(t *testing.T) {
	exp := &fakeExpander{
		templates: []string{"run", "help"},
	}

	cands := Complete("r", exp)

	require.Len(t, cands, 1)
	require.Equal(t, "run", cands[0].Display)
	require.Equal(t, "run", cands[0].Replacement)
}

func TestComplete_PlaceholderValues(t *testing.T) {
	exp := &fakeExpander{
		templates: []string{"add <key> <word>"},
		values: map[string][]string{
			"<key>":  {"akey", "bkey", "ckey"},
			"<word>": {"apple", "orange", "banana"},
		},
	}

	cands := Complete("add a", exp)
	require.Equal(t, []string{"akey"}, displays(cands))
	require.Equal(t, "add akey ", cands[0].Replacement)

	cands = Complete("add akey ", exp)
	require.Equal(t, []string{"apple", "banana", "orange"}, displays(cands))
	require.Equal(t, "add akey apple", cands[0].Replacement)
}

func TestComplete_NoValueMatchesPartial(t *testing.T) {
	exp := &fakeExpander{
		templates: []string{"add <key> <word>"},
		values: map[string][]string{
			"<key>":  {"akey"},
			"<word>": {"apple", "orange", "banana"},
		},
	}

	cands := Complete("add 'my key' wo", exp)
	require.Empty(t, cands)
}

func TestComplete_AbandonsTemplateOnLiteralMismatch(t *testing.T) {
	exp := &fakeExpander{
		templates: []string{"set attr1 <bool>", "get attr1"},
	}

	cands := Complete("set attr1 ", exp)

	// "get attr1" is abandoned at its first part, and the surviving
	// template has no <bool> values configured.
	require.Empty(t, cands)
}

// Placeholder parts in non-last position accept the typed token even
// when the expander has no values for them.
func TestComplete_PlaceholderAcceptsUnconditionally(t *testing.T) {
	exp := &fakeExpander{
		templates: []string{"add <key> <word>"},
		values: map[string][]string{
			"<word>": {"apple"},
		},
	}

	cands := Complete("add anything ap", exp)
	require.Equal(t, []string{"apple"}, displays(cands))
	require.Equal(t, "add anything apple", cands[0].Replacement)
}

// =============================================================================
// RENDERED FORMS
// =============================================================================

// Tokens and values with embedded spaces travel in rendered (quoted)
// form through prefixes, replacements, and expander context.
func TestComplete_QuotedRendering(t *testing.T) {
	exp := &fakeExpander{
		templates: []string{"add <key> <word>"},
		values: map[string][]string{
			"<key>":  {"my key", "plain"},
			"<word>": {"apple"},
		},
	}

	cands := Complete("add my", exp)
	require.Equal(t, []string{"'my key'"}, displays(cands))
	require.Equal(t, "add 'my key' ", cands[0].Replacement)

	cands = Complete("add 'my key' a", exp)
	require.Equal(t, []string{"apple"}, displays(cands))
	require.Equal(t, "add 'my key' apple", cands[0].Replacement)

	// The expander saw the rendered token in its context.
	last := exp.contexts[len(exp.contexts)-1]
	require.Equal(t, []string{"add", "'my key'", "a"}, last)
}

// =============================================================================
// ERROR SUPPRESSION, DEDUP, ORDERING
// =============================================================================

func TestComplete_ErrorTokenSuppressesCompletion(t *testing.T) {
	exp := &fakeExpander{
		templates: []string{"set attr1 <bool>"},
	}

	require.Nil(t, Complete("se't attr", exp))
	require.Nil(t, Complete("'bad'x attr", exp))
}

func TestComplete_DedupFirstWins(t *testing.T) {
	exp := &fakeExpander{
		templates: []string{"set attr1", "set attr1 <bool>"},
	}

	cands := Complete("set a", exp)

	require.Len(t, cands, 1)
	require.Equal(t, "attr1", cands[0].Display)
	// The first template has no further parts, so the surviving
	// replacement carries no trailing separator.
	require.Equal(t, "set attr1", cands[0].Replacement)
}

func TestComplete_SortedAscending(t *testing.T) {
	exp := &fakeExpander{
		templates: []string{"zz", "aa", "mm"},
	}

	cands := Complete("", exp)
	require.Equal(t, []string{"aa", "mm", "zz"}, displays(cands))
}

func TestIsPlaceholder(t *testing.T) {
	if !IsPlaceholder("<bool>") {
		t.Error("IsPlaceholder(<bool>) = false")
	}
	if IsPlaceholder("attr1") {
		t.Error("IsPlaceholder(attr1) = true")
	}
	if IsPlaceholder("<open") {
		t.Error("IsPlaceholder(<open) = true")
	}
}
