// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"
)

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name      string
		catName   string
		wantError bool
	}{
		{"valid", "AI Tools", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"too long", strings.Repeat("a", 101), true},
		{"max length", strings.Repeat("a", 100), false},
		{"multibyte counted as runes", strings.Repeat("é", 100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateCategory(tt.catName)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateTool(t *testing.T) {
	tests := []struct {
		name      string
		toolName  string
		url       string
		desc      string
		tags      []string
		wantError bool
	}{
		{"valid", "ChatGPT", "https://chat.openai.com", "chat", []string{"AI"}, false},
		{"plain http", "Local", "http://localhost:3000/app", "", nil, false},
		{"empty name", "", "https://x.io", "", nil, true},
		{"name too long", strings.Repeat("a", 101), "https://x.io", "", nil, true},
		{"empty url", "X", "", "", nil, true},
		{"relative url", "X", "/tools/x", "", nil, true},
		{"no scheme", "X", "example.com", "", nil, true},
		{"ftp scheme", "X", "ftp://example.com", "", nil, true},
		{"javascript scheme", "X", "javascript:alert(1)", "", nil, true},
		{"description too long", "X", "https://x.io", strings.Repeat("a", 1001), nil, true},
		{"too many tags", "X", "https://x.io", "", make([]string, 51), true},
		{"tag too long", "X", "https://x.io", "", []string{strings.Repeat("a", 51)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateTool(tt.toolName, tt.url, tt.desc, "", tt.tags)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}
