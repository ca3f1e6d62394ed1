// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"strconv"
	"testing"
)

func TestNewEntry(t *testing.T) {
	e := NewEntry("Blubb", 42)
	if got := e.Key(); got != "Blubb" {
		t.Errorf("Key() = %q; want %q", got, "Blubb")
	}
	if got := e.Data(); got != "42" {
		t.Errorf("Data() = %q; want %q", got, "42")
	}
	if got, err := Value[int](e); err != nil || got != 42 {
		t.Errorf("Value[int]() = %d, %v; want 42, <nil>", got, err)
	}
	if e.Parent() != nil {
		t.Errorf("Parent() = %p; want nil", e.Parent())
	}
	if got := e.FQKey(); got != "Blubb" {
		t.Errorf("FQKey() = %q; want %q", got, "Blubb")
	}
}

func TestEntryValueAsString(t *testing.T) {
	e := NewEntry("key", "  no = escaping \\n ")
	got, err := Value[string](e)
	if err != nil {
		t.Fatal(err)
	}
	if got != e.Data() {
		t.Errorf("Value[string]() = %q; want %q", got, e.Data())
	}
}

func TestEntryValueError(t *testing.T) {
	e := NewEntry("key", "Value1")
	_, err := Value[float64](e)
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("Value[float64]() error = %v; want %v", err, strconv.ErrSyntax)
	}
}

func TestSetValue(t *testing.T) {
	e := NewEntry("Test", 4211)
	SetValue(e, 1337)
	if got, err := Value[int](e); err != nil || got != 1337 {
		t.Errorf("after SetValue(1337), Value[int]() = %d, %v; want 1337, <nil>", got, err)
	}
	SetValue(e, 2.5)
	if got := e.Data(); got != "2.5" {
		t.Errorf("after SetValue(2.5), Data() = %q; want %q", got, "2.5")
	}
	e.SetData("verbatim text")
	if got := e.Data(); got != "verbatim text" {
		t.Errorf("after SetData, Data() = %q; want %q", got, "verbatim text")
	}
}

func TestEntrySetKey(t *testing.T) {
	e := NewEntry("Test", 4211)
	e.SetKey("Test2")
	if got := e.Key(); got != "Test2" {
		t.Errorf("Key() = %q; want %q", got, "Test2")
	}
}

func TestEntryEqual(t *testing.T) {
	e1 := NewEntry("Test", 4211)
	e2 := NewEntry("Test", 4211)
	e3 := NewEntry("Test", 1337)
	e4 := NewEntry("Bla", 4211)
	tests := []struct {
		name string
		a, b *Entry
		want bool
	}{
		{"Self", e1, e1, true},
		{"SameContent", e1, e2, true},
		{"DifferentData", e1, e3, false},
		{"DifferentKey", e1, e4, false},
		{"Nil", e1, nil, false},
		{"BothNil", nil, nil, true},
	}
	for _, test := range tests {
		if got := test.a.Equal(test.b); got != test.want {
			t.Errorf("%s: a.Equal(b) = %t; want %t", test.name, got, test.want)
		}
		if got := test.b.Equal(test.a); got != test.want {
			t.Errorf("%s: b.Equal(a) = %t; want %t", test.name, got, test.want)
		}
	}

	t.Run("DifferentParent", func(t *testing.T) {
		a := CreateEntry(NewSection("A", nil), "key", "value")
		b := CreateEntry(NewSection("A", nil), "key", "value")
		if a.Equal(b) {
			t.Error("entries in different sections are equal")
		}
	})
}

func TestFQKey(t *testing.T) {
	a := NewSection("A", nil)
	b := NewSection("B", a)
	c := NewSection("C", b)
	e := CreateEntry(c, "key", true)
	if got, want := e.FQKey(), "A.B.C.key"; got != want {
		t.Errorf("FQKey() = %q; want %q", got, want)
	}
	if e.Parent() != c {
		t.Error("Parent() is not the creating section")
	}
}
