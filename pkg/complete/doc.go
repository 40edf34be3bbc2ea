// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package complete implements template-driven tab completion.
//
// The embedding application supplies an Expander: the exhaustive list
// of command templates plus, for each template part, the literal values
// valid at that position. Complete walks every template against the
// typed tokens and offers candidates for the token under the cursor.
//
// ExpandFilename is a ready-made expansion for path placeholders.
package complete
