// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Argument validation helpers for command executors.

package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// =============================================================================
// ARGUMENT HELPERS
// =============================================================================

// ExpectArgs returns a descriptive error when fewer than n arguments
// are present.
func ExpectArgs(args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("Expected %d arguments", n)
	}
	return nil
}

// ParseBool parses the conventional boolean argument spellings:
// on/true/1 and off/false/0. Anything else is an error naming the
// received value.
func ParseBool(s string) (bool, error) {
	switch s {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("Expected boolean, got '%s'", s)
	}
}

// ParseInt parses an integer argument, with an error naming the
// received value on failure.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("Expected integer, got '%s'", s)
	}
	return n, nil
}

// OptArg returns the argument at pos and true, or "" and false when
// not enough arguments were given.
func OptArg(args []string, pos int) (string, bool) {
	if pos < len(args) {
		return args[pos], true
	}
	return "", false
}

// =============================================================================
// PROMPTS
// =============================================================================

// ConfirmYesNo reads one line from stdin and returns true for "y" (any
// case) or an empty answer.
func ConfirmYesNo() bool {
	return confirmYesNo(os.Stdin)
}

func confirmYesNo(r io.Reader) bool {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == ""
}
