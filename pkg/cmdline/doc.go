// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cmdline tokenizes one line of interactive command input.
//
// A Line produces Tokens through a restartable iterator. Tokens handle
// single-quoting ('two words' is one token) and recover from malformed
// quoting by emitting error tokens instead of aborting the scan.
//
// # Usage
//
//	tokens := cmdline.NewLine("add 'my key' apple").Tokens()
//	// -> "add", "my key", "apple"
//
// A line that ends in a space (or is empty) yields one trailing empty
// token, which completion uses to know a new token is being started.
package cmdline
