// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"String", FormatValue("Value1"), "Value1"},
		{"StringWithSpaces", FormatValue("  a = b  "), "  a = b  "},
		{"True", FormatValue(true), "true"},
		{"False", FormatValue(false), "false"},
		{"Int", FormatValue(42), "42"},
		{"NegativeInt8", FormatValue(int8(-128)), "-128"},
		{"Uint64Max", FormatValue(uint64(math.MaxUint64)), "18446744073709551615"},
		{"Float64", FormatValue(3.1415), "3.1415"},
		{"Float64Whole", FormatValue(1337.0), "1337"},
		{"Float32", FormatValue(float32(0.1)), "0.1"},
		{"Float64Exponent", FormatValue(1e21), "1e+21"},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: FormatValue(...) = %q; want %q", test.name, test.got, test.want)
		}
	}
}

func TestValueRoundTrip(t *testing.T) {
	t.Run("Bool", func(t *testing.T) { roundTrip(t, true, false) })
	t.Run("Int", func(t *testing.T) { roundTrip(t, 0, 42, -42, math.MaxInt, math.MinInt) })
	t.Run("Int8", func(t *testing.T) { roundTrip[int8](t, math.MinInt8, -1, 0, math.MaxInt8) })
	t.Run("Int16", func(t *testing.T) { roundTrip[int16](t, math.MinInt16, 1337, math.MaxInt16) })
	t.Run("Int32", func(t *testing.T) { roundTrip[int32](t, math.MinInt32, 4211, math.MaxInt32) })
	t.Run("Int64", func(t *testing.T) { roundTrip[int64](t, math.MinInt64, 0, math.MaxInt64) })
	t.Run("Uint", func(t *testing.T) { roundTrip[uint](t, 0, 42, math.MaxUint) })
	t.Run("Uint8", func(t *testing.T) { roundTrip[uint8](t, 0, 'a', math.MaxUint8) })
	t.Run("Uint16", func(t *testing.T) { roundTrip[uint16](t, 0, math.MaxUint16) })
	t.Run("Uint32", func(t *testing.T) { roundTrip[uint32](t, 0, math.MaxUint32) })
	t.Run("Uint64", func(t *testing.T) { roundTrip[uint64](t, 0, math.MaxUint64) })
	t.Run("Float32", func(t *testing.T) {
		roundTrip[float32](t, 0, 69, 3.1415, -0.1, math.MaxFloat32, math.SmallestNonzeroFloat32)
	})
	t.Run("Float64", func(t *testing.T) {
		roundTrip(t, 0, 1337, 3.1415, 1.0/3, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(-1))
	})
	t.Run("String", func(t *testing.T) { roundTrip(t, "", "Value1", " spaced = out ", "a.b.c") })
}

func roundTrip[T Scalar](t *testing.T, values ...T) {
	t.Helper()
	for _, want := range values {
		text := FormatValue(want)
		got, err := ParseValue[T](text)
		if err != nil {
			t.Errorf("ParseValue[%T](%q): %v", want, text, err)
			continue
		}
		if got != want {
			t.Errorf("ParseValue[%T](FormatValue(%v)) = %v; want %v", want, want, got, want)
		}
	}
}

func TestParseValueAccepts(t *testing.T) {
	if got, err := ParseValue[bool]("1"); err != nil || !got {
		t.Errorf("ParseValue[bool](\"1\") = %t, %v; want true, <nil>", got, err)
	}
	if got, err := ParseValue[bool]("0"); err != nil || got {
		t.Errorf("ParseValue[bool](\"0\") = %t, %v; want false, <nil>", got, err)
	}
	if got, err := ParseValue[int]("+7"); err != nil || got != 7 {
		t.Errorf("ParseValue[int](\"+7\") = %d, %v; want 7, <nil>", got, err)
	}
	if got, err := ParseValue[float64]("42"); err != nil || got != 42 {
		t.Errorf("ParseValue[float64](\"42\") = %g, %v; want 42, <nil>", got, err)
	}
	if got, err := ParseValue[string]("\t raw \t"); err != nil || got != "\t raw \t" {
		t.Errorf("ParseValue[string](...) = %q, %v; want unchanged", got, err)
	}
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		name     string
		parse    func() error
		wantType string
		wantErr  error
	}{
		{
			name:     "IntSyntax",
			parse:    func() error { _, err := ParseValue[int]("Value1"); return err },
			wantType: "int",
			wantErr:  strconv.ErrSyntax,
		},
		{
			name:     "IntLeadingSpace",
			parse:    func() error { _, err := ParseValue[int](" 42"); return err },
			wantType: "int",
			wantErr:  strconv.ErrSyntax,
		},
		{
			name:     "IntFromFloat",
			parse:    func() error { _, err := ParseValue[int]("3.1415"); return err },
			wantType: "int",
			wantErr:  strconv.ErrSyntax,
		},
		{
			name:     "Int8Range",
			parse:    func() error { _, err := ParseValue[int8]("128"); return err },
			wantType: "int8",
			wantErr:  strconv.ErrRange,
		},
		{
			name:     "UintNegative",
			parse:    func() error { _, err := ParseValue[uint]("-1"); return err },
			wantType: "uint",
			wantErr:  strconv.ErrSyntax,
		},
		{
			name:     "Uint16Range",
			parse:    func() error { _, err := ParseValue[uint16]("65536"); return err },
			wantType: "uint16",
			wantErr:  strconv.ErrRange,
		},
		{
			name:     "FloatComma",
			parse:    func() error { _, err := ParseValue[float64]("3,1415"); return err },
			wantType: "float64",
			wantErr:  strconv.ErrSyntax,
		},
		{
			name:     "Float32Range",
			parse:    func() error { _, err := ParseValue[float32]("1e39"); return err },
			wantType: "float32",
			wantErr:  strconv.ErrRange,
		},
		{
			name:     "BoolWord",
			parse:    func() error { _, err := ParseValue[bool]("yes"); return err },
			wantType: "bool",
			wantErr:  strconv.ErrSyntax,
		},
		{
			name:     "Empty",
			parse:    func() error { _, err := ParseValue[int64](""); return err },
			wantType: "int64",
			wantErr:  strconv.ErrSyntax,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.parse()
			if err == nil {
				t.Fatal("ParseValue did not return an error")
			}
			var convErr *ConversionError
			if !errors.As(err, &convErr) {
				t.Fatalf("ParseValue error = %v (%T); want *ConversionError", err, err)
			}
			if convErr.Type != test.wantType {
				t.Errorf("ConversionError.Type = %q; want %q", convErr.Type, test.wantType)
			}
			if !errors.Is(err, test.wantErr) {
				t.Errorf("ParseValue error = %v; want to wrap %v", err, test.wantErr)
			}
		})
	}
}

func TestConversionErrorMessage(t *testing.T) {
	_, err := ParseValue[int]("abc")
	const want = `convert "abc" to int: invalid syntax`
	if err == nil || err.Error() != want {
		t.Errorf("ParseValue[int](\"abc\") error = %v; want %q", err, want)
	}
}
