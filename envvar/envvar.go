// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package envvar provides functions to read environment variables for
// configuration. Typed values use the same text forms as INI entries.
package envvar

import (
	"fmt"
	"os"

	"github.com/yourbase/nestedini/ini"
)

// Get returns the value of the given environment variable. If it is empty or
// unset, it returns the default value.
func Get(key string, defaultValue string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v
}

// Bool returns the value of a boolean environment variable. If it is unset or
// not one of the strings 1, t, T, TRUE, true, or True, then it returns false.
func Bool(key string) bool {
	b, err := Value(key, false)
	return err == nil && b
}

// Value converts the given environment variable to T with ini.ParseValue.
// If the variable is empty or unset, it returns the default value. A value
// that does not convert is an error.
func Value[T ini.Scalar](key string, defaultValue T) (T, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	x, err := ini.ParseValue[T](v)
	if err != nil {
		return defaultValue, fmt.Errorf("environment variable %s: %w", key, err)
	}
	return x, nil
}
