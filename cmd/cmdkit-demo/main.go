// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cmdkit-demo is a small embedding application for the cmdkit shell
// core: a keyword store with TOML persistence, tab completion over a
// declarative command grammar, and paged listings.
//
// Commands:
//
//	set attr1 <bool>    Toggle the demo boolean attribute
//	set attr2 <int>     Set the demo integer attribute
//	read <filename>     Load the keyword store from a TOML file
//	store <filename>    Save the keyword store to a TOML file
//	add <key> <word>    Add a word under a key
//	words               List every stored word (paged)
//	run                 Pretend to do the real work
//	help                Show the command list
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/cmdkit/pkg/complete"
	"github.com/jeranaias/cmdkit/pkg/pager"
	"github.com/jeranaias/cmdkit/pkg/shell"
)

var commandList = []string{
	"set attr1 <bool>",
	"set attr2 <int>",
	"read <filename>",
	"store <filename>",
	"add <key> <word>",
	"words",
	"run",
	"help",
}

// =============================================================================
// KEYWORD STORE
// =============================================================================

// document is the on-disk shape of the keyword store.
type document struct {
	Attr1Val bool                `toml:"attr1"`
	Attr2Val int                 `toml:"attr2"`
	Keywords map[string][]string `toml:"keywords"`
}

// =============================================================================
// DEMO APP
// =============================================================================

// demoApp implements both the command executor and the expansion
// provider over one shared keyword store.
type demoApp struct {
	doc document
}

func newDemoApp() *demoApp {
	return &demoApp{
		doc: document{
			Keywords: map[string][]string{
				"akey": {"apple"},
				"bkey": {"banana"},
				"ckey": {"cherry"},
			},
		},
	}
}

func (a *demoApp) Templates() []string { return commandList }

func (a *demoApp) Startup() {
	fmt.Println("Starting up...")
}

func (a *demoApp) Exit() {
	fmt.Println("Quitting...")
}

func (a *demoApp) Execute(cmd string, args []string) error {
	switch cmd {
	case "set attr1":
		if err := shell.ExpectArgs(args, 1); err != nil {
			return err
		}
		v, err := shell.ParseBool(args[0])
		if err != nil {
			return err
		}
		a.doc.Attr1Val = v
		fmt.Printf("Setting parameter attr1 to %v\n", v)

	case "set attr2":
		if err := shell.ExpectArgs(args, 1); err != nil {
			return err
		}
		v, err := shell.ParseInt(args[0])
		if err != nil {
			return err
		}
		a.doc.Attr2Val = v
		fmt.Printf("Setting parameter attr2 to %d\n", v)

	case "read":
		path, ok := shell.OptArg(args, 0)
		if !ok {
			path = "demo.toml"
		}
		return a.read(path)

	case "store":
		path, ok := shell.OptArg(args, 0)
		if !ok {
			path = "demo.toml"
		}
		return a.store(path)

	case "add":
		if err := shell.ExpectArgs(args, 2); err != nil {
			return err
		}
		key, word := args[0], args[1]
		a.doc.Keywords[key] = append(a.doc.Keywords[key], word)
		fmt.Printf("Adding %s under %s\n", word, key)

	case "words":
		a.listWords()

	case "run":
		fmt.Println("Running something")

	case "help":
		a.help()

	default:
		return fmt.Errorf("Bad command")
	}

	return nil
}

func (a *demoApp) read(path string) error {
	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return fmt.Errorf("Cannot read %s: %v", path, err)
	}
	if doc.Keywords == nil {
		doc.Keywords = make(map[string][]string)
	}
	a.doc = doc
	fmt.Printf("Read %s\n", path)
	return nil
}

func (a *demoApp) store(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Cannot store %s: %v", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(a.doc); err != nil {
		return fmt.Errorf("Cannot store %s: %v", path, err)
	}
	fmt.Printf("Stored %s\n", path)
	return nil
}

func (a *demoApp) listWords() {
	var items []string
	for key, words := range a.doc.Keywords {
		for _, w := range words {
			items = append(items, key+"/"+w)
		}
	}
	sort.Strings(items)
	pager.PrintColumns(items, pager.MaxWidth(items))
}

func (a *demoApp) help() {
	for _, cmd := range commandList {
		fmt.Println(strings.ReplaceAll(cmd, "<bool>", "on/off"))
	}
}

// =============================================================================
// EXPANSION PROVIDER
// =============================================================================

// Expand serves the placeholder values for completion. The last entry
// of typed is the token being completed.
func (a *demoApp) Expand(part string, typed []string) []string {
	partial := ""
	if len(typed) > 0 {
		partial = typed[len(typed)-1]
	}

	switch part {
	case "<filename>":
		return complete.ExpandFilename(partial)
	case "<key>":
		keys := make([]string, 0, len(a.doc.Keywords))
		for k := range a.doc.Keywords {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys
	case "<word>":
		var words []string
		for _, ws := range a.doc.Keywords {
			words = append(words, ws...)
		}
		sort.Strings(words)
		return words
	case "<bool>":
		return []string{"false", "true"}
	default:
		return []string{part}
	}
}

func main() {
	app := newDemoApp()
	if err := shell.New(app, app).Run(); err != nil {
		os.Exit(1)
	}
}
