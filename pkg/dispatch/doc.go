// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dispatch resolves a tokenized input line into a command
// identifier and its arguments, by greedy prefix matching against the
// registered command templates.
package dispatch
