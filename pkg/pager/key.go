// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// key.go - Key identities delivered by a Terminal.

package pager

// KeyType identifies a navigation key read from the terminal.
type KeyType int

const (
	// KeyRune is a printable character; the rune is in Key.Rune.
	KeyRune KeyType = iota
	KeyEnter
	KeyEscape
	KeyCtrlC
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUnknown
)

// Key is one decoded keypress.
type Key struct {
	Type KeyType
	Rune rune // set when Type == KeyRune
}

// Char builds a printable-character key.
func Char(r rune) Key { return Key{Type: KeyRune, Rune: r} }

// Is reports whether the key is the given printable character.
func (k Key) Is(r rune) bool { return k.Type == KeyRune && k.Rune == r }
