// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package utils

import "os"

// Tabler is implemented by every gorm model.
type Tabler interface {
	TableName() string
}

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

func RunsInCI() bool {
	if val, ok := os.LookupEnv("CI"); ok {
		return val == "true"
	}
	return false
}
