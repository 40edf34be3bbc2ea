// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell runs the interactive command loop for an embedding
// application.
//
// The application supplies an App (the command executor behind a
// declarative template list) and, optionally, a complete.Expander for
// tab completion. The shell reads lines with readline-style editing
// and in-memory history, tokenizes and dispatches them, and reports
// errors without ever leaving the loop; only end-of-input or a broken
// line source ends a session.
//
//	app := newMyApp()
//	if err := shell.New(app, app).Run(); err != nil {
//		...
//	}
//
// The package also exports the argument validation helpers command
// executors conventionally use (ExpectArgs, ParseBool, ParseInt,
// OptArg) and a ConfirmYesNo prompt.
package shell
