// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"fmt"
	"strconv"
)

// Scalar is the closed set of types that an entry's text can be converted to
// and from.
type Scalar interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string
}

// A ConversionError is returned when an entry's text is not a valid
// representation of the requested type.
type ConversionError struct {
	Text string // the offending text
	Type string // name of the requested type, like "int16"
	Err  error  // usually a *strconv.NumError
}

func (e *ConversionError) Error() string {
	msg := e.Err.Error()
	var numErr *strconv.NumError
	if errors.As(e.Err, &numErr) {
		msg = numErr.Err.Error()
	}
	return fmt.Sprintf("convert %q to %s: %s", e.Text, e.Type, msg)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ParseValue converts text to a value of type T. Numbers are parsed in base 10
// independent of locale and must fit in T. Booleans accept the forms
// understood by strconv.ParseBool ("1", "t", "true", "0", "f", "false", ...).
// Strings are returned unchanged.
func ParseValue[T Scalar](text string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = text
	case *bool:
		*p, err = strconv.ParseBool(text)
	case *int:
		err = parseInt(p, text, strconv.IntSize)
	case *int8:
		err = parseInt(p, text, 8)
	case *int16:
		err = parseInt(p, text, 16)
	case *int32:
		err = parseInt(p, text, 32)
	case *int64:
		err = parseInt(p, text, 64)
	case *uint:
		err = parseUint(p, text, strconv.IntSize)
	case *uint8:
		err = parseUint(p, text, 8)
	case *uint16:
		err = parseUint(p, text, 16)
	case *uint32:
		err = parseUint(p, text, 32)
	case *uint64:
		err = parseUint(p, text, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(text, 64)
	}
	if err != nil {
		var zero T
		return zero, &ConversionError{Text: text, Type: fmt.Sprintf("%T", zero), Err: err}
	}
	return v, nil
}

func parseInt[N int | int8 | int16 | int32 | int64](p *N, text string, bitSize int) error {
	n, err := strconv.ParseInt(text, 10, bitSize)
	if err != nil {
		return err
	}
	*p = N(n)
	return nil
}

func parseUint[N uint | uint8 | uint16 | uint32 | uint64](p *N, text string, bitSize int) error {
	n, err := strconv.ParseUint(text, 10, bitSize)
	if err != nil {
		return err
	}
	*p = N(n)
	return nil
}

// FormatValue returns the canonical text form of v: base-10 digits for
// integers, the shortest text that parses back to the same value for floats,
// "true" or "false" for booleans, and strings verbatim.
func FormatValue[T Scalar](v T) string {
	switch v := any(v).(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		panic("unreachable")
	}
}
