// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// pager.go - Columnar, keyboard-navigable pagination of string lists.

package pager

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
)

// minPadding is the gap reserved between columns when computing how
// many fit on one terminal row.
const minPadding = 2

const morePrompt = "--More--"

// =============================================================================
// PAGER
// =============================================================================

// Pager lays a list of strings out in columns sized to the terminal
// and pages through them one screen at a time. The zero value writes to
// stdout and reads keys from the process terminal.
type Pager struct {
	// Term supplies keypresses and dimensions. Nil means the default
	// console terminal.
	Term Terminal

	// Out receives the rendered output. Nil means stdout.
	Out io.Writer
}

// PrintColumns paginates items on the default console pager.
func PrintColumns(items []string, maxWidth int) {
	(&Pager{}).PrintColumns(items, maxWidth)
}

// MaxWidth returns the widest display width in items, for use as the
// maxWidth argument of PrintColumns.
func MaxWidth(items []string) int {
	max := 0
	for _, item := range items {
		if w := runewidth.StringWidth(item); w > max {
			max = w
		}
	}
	return max
}

func (p *Pager) terminal() Terminal {
	if p.Term != nil {
		return p.Term
	}
	return NewConsole()
}

func (p *Pager) writer() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stdout
}

// PrintColumns prints items row-major in columns wide enough for
// maxWidth-cell entries. When everything fits on one screen it is
// printed in a single pass. Otherwise one screenful is shown at a time
// behind a --More-- prompt; Space/PageDown page forward, b/PageUp page
// back, Enter/ArrowDown and ArrowUp move one row, Home/End jump, and
// q, Ctrl-C or Escape abort. Keys that would not move the view are
// ignored. Blocks until the listing completes or is aborted.
func (p *Pager) PrintColumns(items []string, maxWidth int) {
	if len(items) == 0 {
		return
	}

	out := p.writer()
	term := p.terminal()

	termW, termH := term.Size()
	cols := termW / (maxWidth + minPadding)
	if cols < 1 {
		cols = 1
	}
	cellW := termW / cols
	endRow := (len(items) + cols - 1) / cols
	pageSize := termH - 1
	if pageSize < 1 {
		pageSize = 1
	}
	paged := endRow > pageSize
	position := 0

outer:
	for {
		start := position * cols
		end := (position + pageSize) * cols
		if end > len(items) {
			end = len(items)
		}

		if paged {
			fmt.Fprint(out, "\r")
		}

		// Row-major: pad every cell except the last of each row, which
		// is printed bare and ends the row.
		i := 0
		for _, item := range items[start:end] {
			i = (i + 1) % cols
			if i == 0 {
				fmt.Fprintln(out, item)
			} else {
				fmt.Fprint(out, runewidth.FillRight(item, cellW))
			}
		}
		if i != 0 {
			fmt.Fprintln(out)
		}

		if !paged {
			break
		}

		fmt.Fprint(out, morePrompt)

		for {
			key, err := term.ReadKey()
			if err != nil {
				break outer
			}

			switch {
			case key.Type == KeyHome:
				if position > 0 {
					position = 0
					continue outer
				}

			case key.Type == KeyEnd:
				if position+pageSize < endRow {
					position = endRow - pageSize
					continue outer
				}

			case key.Type == KeyPageUp || key.Is('b'):
				if position > pageSize {
					position -= pageSize
					continue outer
				} else if position > 0 {
					position = 0
					continue outer
				}

			case key.Type == KeyPageDown || key.Is(' '):
				if position+pageSize*2 < endRow {
					position += pageSize
					continue outer
				} else if position+pageSize < endRow {
					position = endRow - pageSize
					continue outer
				}

			case key.Type == KeyArrowUp:
				if position > 0 {
					position--
					continue outer
				}

			case key.Type == KeyEnter || key.Type == KeyArrowDown:
				if position+pageSize < endRow {
					position++
					continue outer
				}

			case key.Type == KeyCtrlC || key.Type == KeyEscape || key.Is('q'):
				break outer
			}
			// Anything else, or a key that cannot move the view: keep
			// waiting on the prompt.
		}
	}

	if paged {
		// Erase the --More-- prompt.
		fmt.Fprint(out, "\r", "        ", "\r")
	}
}
