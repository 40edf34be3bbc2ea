// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pager prints string lists in terminal-width columns, paging
// with --More-- style keyboard navigation when the content does not fit
// on one screen. The terminal is abstracted behind a small capability
// interface with an 80x25 fallback, so the pager itself has no
// platform dependencies.
package pager
