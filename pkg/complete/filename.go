// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// filename.go - Built-in filesystem path expansion for <filename>-style
// placeholders.

package complete

import (
	"os"
	"strings"
)

// ExpandFilename expands a partially typed filesystem path into the
// matching directory entries. The text after the last '/' is the
// filename fragment; everything before it (kept verbatim in the
// results) is the directory to list. "." alone lists the current
// directory. Directory entries get a trailing '/' so completion can
// descend into them. An unreadable directory expands to nothing.
func ExpandFilename(path string) []string {
	var dir, typedDir, fragment string

	switch pos := strings.LastIndexByte(path, '/'); {
	case pos >= 0:
		dir = path[:pos+1]
		typedDir = path[:pos+1]
		fragment = path[pos+1:]
	case path == ".":
		dir = "./"
		typedDir = "."
		fragment = ""
	default:
		dir = "./"
		typedDir = ""
		fragment = path
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var out []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, fragment) {
			continue
		}
		if entry.IsDir() {
			name += "/"
		}
		out = append(out, typedDir+name)
	}
	return out
}
