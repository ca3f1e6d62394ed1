// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

// An Entry is a key/value pair. The value is always stored as text; typed
// access goes through Value and SetValue.
type Entry struct {
	key    string
	data   string
	parent *Section
}

// NewEntry returns an entry with the given key and the text form of value.
// The entry has no parent until it is added to a Section.
func NewEntry[T Scalar](key string, value T) *Entry {
	return &Entry{key: key, data: FormatValue(value)}
}

// Key returns the entry's local key.
func (e *Entry) Key() string {
	return e.key
}

// SetKey changes the entry's key. It does not re-index the entry inside a
// Section it has already been added to.
func (e *Entry) SetKey(key string) {
	e.key = key
}

// Data returns the entry's raw text.
func (e *Entry) Data() string {
	return e.data
}

// SetData replaces the entry's raw text verbatim.
func (e *Entry) SetData(data string) {
	e.data = data
}

// Parent returns the section that owns e or nil.
func (e *Entry) Parent() *Section {
	return e.parent
}

// FQKey returns the entry's key prefixed by its section's fully qualified
// title, like "Section1.Subsection1.Key".
func (e *Entry) FQKey() string {
	if e.parent == nil {
		return e.key
	}
	return e.parent.FQTitle() + "." + e.key
}

// Equal reports whether e and other have the same key, the same parent
// section and the same text.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.key == other.key && e.parent == other.parent && e.data == other.data
}

// Value converts the entry's text to T. See ParseValue for the accepted forms.
func Value[T Scalar](e *Entry) (T, error) {
	return ParseValue[T](e.data)
}

// SetValue stores the text form of v in the entry.
func SetValue[T Scalar](e *Entry, v T) {
	e.data = FormatValue(v)
}
