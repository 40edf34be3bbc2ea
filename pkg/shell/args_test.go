// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strings"
	"testing"
)

func TestExpectArgs(t *testing.T) {
	if err := ExpectArgs([]string{"a", "b"}, 2); err != nil {
		t.Errorf("ExpectArgs with enough args: %v", err)
	}
	if err := ExpectArgs([]string{"a", "b", "c"}, 2); err != nil {
		t.Errorf("ExpectArgs with extra args: %v", err)
	}

	err := ExpectArgs([]string{"a"}, 2)
	if err == nil {
		t.Fatal("ExpectArgs with too few args: no error")
	}
	if err.Error() != "Expected 2 arguments" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestParseBool(t *testing.T) {
	truthy := []string{"on", "true", "1"}
	falsy := []string{"off", "false", "0"}

	for _, s := range truthy {
		v, err := ParseBool(s)
		if err != nil || !v {
			t.Errorf("ParseBool(%q) = %v, %v; want true", s, v, err)
		}
	}
	for _, s := range falsy {
		v, err := ParseBool(s)
		if err != nil || v {
			t.Errorf("ParseBool(%q) = %v, %v; want false", s, v, err)
		}
	}

	for _, s := range []string{"", "yes", "ON", "2"} {
		_, err := ParseBool(s)
		if err == nil {
			t.Errorf("ParseBool(%q): no error", s)
			continue
		}
		if !strings.Contains(err.Error(), "'"+s+"'") {
			t.Errorf("ParseBool(%q) error %q does not name the value", s, err)
		}
	}
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt("42")
	if err != nil || n != 42 {
		t.Errorf("ParseInt(42) = %d, %v", n, err)
	}
	if _, err := ParseInt("-7"); err != nil {
		t.Errorf("ParseInt(-7): %v", err)
	}

	_, err = ParseInt("seven")
	if err == nil {
		t.Fatal("ParseInt(seven): no error")
	}
	if err.Error() != "Expected integer, got 'seven'" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestOptArg(t *testing.T) {
	args := []string{"first", "second"}

	if v, ok := OptArg(args, 0); !ok || v != "first" {
		t.Errorf("OptArg(0) = %q, %v", v, ok)
	}
	if v, ok := OptArg(args, 1); !ok || v != "second" {
		t.Errorf("OptArg(1) = %q, %v", v, ok)
	}
	if v, ok := OptArg(args, 2); ok || v != "" {
		t.Errorf("OptArg(2) = %q, %v; want absent", v, ok)
	}
	if _, ok := OptArg(nil, 0); ok {
		t.Error("OptArg on nil args reported present")
	}
}

func TestConfirmYesNo(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"\n", true},
		{"  \n", true},
		{"n\n", false},
		{"no\n", false},
		{"yes\n", false}, // only a bare y confirms
		{"", false},
	}

	for _, tt := range tests {
		if got := confirmYesNo(strings.NewReader(tt.in)); got != tt.want {
			t.Errorf("confirmYesNo(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
