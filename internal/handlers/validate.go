// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Validation limits for catalog fields.
const (
	maxNameLen        = 100
	maxURLLen         = 2_000
	maxDescriptionLen = 1_000
	maxIconLen        = 2_000
	maxTagCount       = 50
	maxTagLen         = 50
)

// validateCategory checks category inputs and returns the first error found.
func validateCategory(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Category name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Category name is too long (max 100 characters)."
	}
	return ""
}

// validateTool checks tool inputs and returns the first error found.
func validateTool(name, rawURL, description, icon string, tags []string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Tool name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Tool name is too long (max 100 characters)."
	}
	if msg := validateURL(rawURL); msg != "" {
		return msg
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "Description is too long (max 1,000 characters)."
	}
	if len(icon) > maxIconLen {
		return "Icon is too long (max 2,000 characters)."
	}
	if len(tags) > maxTagCount {
		return "Too many tags (max 50)."
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > maxTagLen {
			return "Tag is too long (max 50 characters)."
		}
	}
	return ""
}

// validateURL requires an absolute http or https URL with a host.
func validateURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "URL is required."
	}
	if len(rawURL) > maxURLLen {
		return "URL is too long (max 2,000 characters)."
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "URL must be an absolute http or https address."
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "URL must be an absolute http or https address."
	}
	return ""
}
