// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal capability behind the pager: raw single-key
// reads and dimension queries, with documented fallbacks.

package pager

import (
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// =============================================================================
// TERMINAL CAPABILITY
// =============================================================================

const (
	// DefaultWidth is the assumed terminal width when detection fails.
	DefaultWidth = 80

	// DefaultHeight is the assumed terminal height when detection fails.
	DefaultHeight = 25
)

// Terminal is the platform capability the pager depends on: one raw
// keypress at a time plus the current dimensions in character cells.
// Implementations fall back to DefaultWidth x DefaultHeight when the
// size cannot be determined.
type Terminal interface {
	ReadKey() (Key, error)
	Size() (width, height int)
}

// =============================================================================
// CONSOLE
// =============================================================================

// Console is the default Terminal, reading keys from stdin in raw mode
// and sizing against stdout.
type Console struct {
	in  *os.File
	out *os.File
}

// NewConsole returns a Terminal over the process stdin/stdout.
func NewConsole() *Console {
	return &Console{in: os.Stdin, out: os.Stdout}
}

// Size returns the terminal dimensions, or the 80x25 default when they
// cannot be determined.
func (c *Console) Size() (int, int) {
	w, h, err := term.GetSize(int(c.out.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// ReadKey blocks for one keypress. The terminal is switched to raw mode
// for the duration of the read and always restored.
func (c *Console) ReadKey() (Key, error) {
	fd := int(c.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return Key{Type: KeyUnknown}, err
	}
	defer term.Restore(fd, state)

	// Large enough for any single VT escape sequence.
	buf := make([]byte, 8)
	n, err := c.in.Read(buf)
	if err != nil {
		return Key{Type: KeyUnknown}, err
	}
	return decodeKey(buf[:n]), nil
}

// =============================================================================
// KEY DECODING
// =============================================================================

// decodeKey maps one raw input chunk to a key identity. Both CSI
// (ESC [) and SS3 (ESC O) sequences are understood, along with the
// vt220-style "ESC [ n ~" forms for Home/End/PageUp/PageDown.
func decodeKey(b []byte) Key {
	if len(b) == 0 {
		return Key{Type: KeyUnknown}
	}

	switch b[0] {
	case 0x03:
		return Key{Type: KeyCtrlC}
	case '\r', '\n':
		return Key{Type: KeyEnter}
	case 0x1b:
		if len(b) == 1 {
			return Key{Type: KeyEscape}
		}
		return decodeEscape(b)
	}

	r, _ := utf8.DecodeRune(b)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Char(r)
}

func decodeEscape(b []byte) Key {
	if len(b) < 3 || (b[1] != '[' && b[1] != 'O') {
		return Key{Type: KeyEscape}
	}

	switch b[2] {
	case 'A':
		return Key{Type: KeyArrowUp}
	case 'B':
		return Key{Type: KeyArrowDown}
	case 'C':
		return Key{Type: KeyArrowRight}
	case 'D':
		return Key{Type: KeyArrowLeft}
	case 'H':
		return Key{Type: KeyHome}
	case 'F':
		return Key{Type: KeyEnd}
	case '1', '7':
		if len(b) >= 4 && b[3] == '~' {
			return Key{Type: KeyHome}
		}
	case '4', '8':
		if len(b) >= 4 && b[3] == '~' {
			return Key{Type: KeyEnd}
		}
	case '5':
		if len(b) >= 4 && b[3] == '~' {
			return Key{Type: KeyPageUp}
		}
	case '6':
		if len(b) >= 4 && b[3] == '~' {
			return Key{Type: KeyPageDown}
		}
	}
	return Key{Type: KeyUnknown}
}
