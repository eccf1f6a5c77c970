// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package utils

import "strings"

func Ptr[T any](t T) *T {
	return &t
}

func SafeDereference(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func EmptyThenNil(s string) *string {
	if s == "" {
		return nil
	}
	return Ptr(s)
}

func OrDefault[T any](val *T, def T) T {
	if val == nil {
		return def
	}
	return *val
}

// NormalizeName folds a person name for duplicate comparison.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
