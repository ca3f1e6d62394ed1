// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

// A Section is a titled group of entries, optionally nested under a parent
// section. Entries are keyed by their local key and remember the order in
// which they were first added.
type Section struct {
	title   string
	parent  *Section
	entries map[string]*Entry
	order   []string
}

// NewSection returns an empty section. parent may be nil for a top-level
// section.
func NewSection(title string, parent *Section) *Section {
	return &Section{
		title:   title,
		parent:  parent,
		entries: make(map[string]*Entry),
	}
}

// Title returns the section's local name.
func (s *Section) Title() string {
	return s.title
}

// FQTitle returns the dotted path from the top-level section down to s,
// like "Section1.Subsection1".
func (s *Section) FQTitle() string {
	if s.parent == nil {
		return s.title
	}
	return s.parent.FQTitle() + "." + s.title
}

// Parent returns the enclosing section or nil.
func (s *Section) Parent() *Section {
	return s.parent
}

// IsSubsection reports whether s is nested under another section.
func (s *Section) IsSubsection() bool {
	return s.parent != nil
}

// Len returns the number of entries in s.
func (s *Section) Len() int {
	return len(s.order)
}

// AddEntry stores e under e.Key(), replacing any entry with the same key.
// A replaced key keeps its position. s becomes the entry's parent.
func (s *Section) AddEntry(e *Entry) {
	if s.entries == nil {
		s.entries = make(map[string]*Entry)
	}
	if _, exists := s.entries[e.key]; !exists {
		s.order = append(s.order, e.key)
	}
	e.parent = s
	s.entries[e.key] = e
}

// CreateEntry creates an entry owned by s from key and value and adds it,
// replacing any entry with the same key.
func CreateEntry[T Scalar](s *Section, key string, value T) *Entry {
	e := &Entry{key: key, data: FormatValue(value), parent: s}
	s.AddEntry(e)
	return e
}

// FindEntry returns the entry with the given local key or nil.
func (s *Section) FindEntry(key string) *Entry {
	return s.entries[key]
}

// DeleteEntry removes the entry with the given local key. It reports whether
// an entry was removed.
func (s *Section) DeleteEntry(key string) bool {
	e := s.entries[key]
	if e == nil {
		return false
	}
	delete(s.entries, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	e.parent = nil
	return true
}

// Entries returns the section's entries in insertion order.
func (s *Section) Entries() []*Entry {
	list := make([]*Entry, 0, len(s.order))
	for _, k := range s.order {
		list = append(list, s.entries[k])
	}
	return list
}

// Equal reports whether s and other have the same title and the same set of
// key/value pairs. Parents are not compared.
func (s *Section) Equal(other *Section) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.title != other.title || len(s.entries) != len(other.entries) {
		return false
	}
	for k, e := range s.entries {
		oe := other.entries[k]
		if oe == nil || oe.data != e.data {
			return false
		}
	}
	return true
}
