// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Errors returned by Open, Parse and Flush. They are wrapped; test for them
// with errors.Is.
var (
	ErrEmptyPath  = errors.New("empty file path")
	ErrNoFilename = errors.New("file not backed by a path")
	ErrNoSection  = errors.New("entry outside of any section")
)

// A File is an ordered list of sections backed by a file on disk. A section's
// parent is always an earlier element of the same list. Files must not be
// used by multiple goroutines concurrently.
type File struct {
	filename string
	sections []*Section
}

// Open reads and parses the INI file at path.
func Open(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("open ini file: %w", ErrEmptyPath)
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ini file: %w", err)
	}
	defer fd.Close() // Close errors irrelevant for reads.
	f, err := Parse(fd)
	if err != nil {
		return nil, fmt.Errorf("open ini file %s: %w", path, err)
	}
	f.filename = path
	return f, nil
}

// Create returns an empty file that will be written to path on the next
// Flush or Set. Nothing is read from or written to disk.
func Create(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("create ini file: %w", ErrEmptyPath)
	}
	return &File{filename: path}, nil
}

// Parse parses an INI file that is not backed by a path. Calling Flush or Set
// on the result fails with ErrNoFilename.
//
// See the Syntax section in the package documentation for the format recognized
// by Parse.
func Parse(r io.Reader) (*File, error) {
	s := bufio.NewScanner(r)
	// Set places no limit on value length, so neither does Parse.
	s.Buffer(nil, math.MaxInt)
	f := new(File)
	lineno := 1
	for ; s.Scan(); lineno++ {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == '[' {
			sect, err := f.parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("parse ini file: line %d: %w", lineno, err)
			}
			f.sections = append(f.sections, sect)
			continue
		}
		if len(f.sections) == 0 {
			return nil, fmt.Errorf("parse ini file: line %d: %w", lineno, ErrNoSection)
		}
		i := strings.IndexByte(line, '=')
		if i == -1 {
			return nil, fmt.Errorf("parse ini file: line %d: could not find '='", lineno)
		}
		if i == 0 {
			return nil, fmt.Errorf("parse ini file: line %d: empty key", lineno)
		}
		CreateEntry(f.sections[len(f.sections)-1], line[:i], line[i+1:])
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("parse ini file: line %d: %w", lineno, err)
	}
	return f, nil
}

// parseHeader builds the section declared by a "[...]" line. A dotted name is
// nested under the section named by everything before the last dot, but only
// if that section was already parsed. Otherwise the whole name becomes a flat
// title.
func (f *File) parseHeader(line string) (*Section, error) {
	end := strings.LastIndexByte(line, ']')
	if end == -1 {
		return nil, errors.New("missing section closing bracket")
	}
	name := line[1:end]
	if name == "" {
		return nil, errors.New("section name missing")
	}
	i := strings.LastIndexByte(name, '.')
	if i == -1 {
		return NewSection(name, nil), nil
	}
	parent := f.FindSection(name[:i])
	if parent == nil {
		return NewSection(name, nil), nil
	}
	if i == len(name)-1 {
		return nil, fmt.Errorf("empty subsection name in %q", name)
	}
	return NewSection(name[i+1:], parent), nil
}

// Filename returns the path the file is flushed to. It is empty for files
// returned by Parse.
func (f *File) Filename() string {
	if f == nil {
		return ""
	}
	return f.filename
}

// Sections returns the file's sections in order. The caller must not modify
// the returned slice.
func (f *File) Sections() []*Section {
	if f == nil {
		return nil
	}
	return f.sections
}

// FindSection returns the first section whose fully qualified title is
// fqTitle or nil.
func (f *File) FindSection(fqTitle string) *Section {
	if f == nil {
		return nil
	}
	for _, s := range f.sections {
		if s.FQTitle() == fqTitle {
			return s
		}
	}
	return nil
}

// FindEntry returns the entry named by a fully qualified name like
// "Section1.Subsection1.Key" or nil. A name without a dot never matches.
func (f *File) FindEntry(name string) *Entry {
	i := strings.LastIndexByte(name, '.')
	if i == -1 {
		return nil
	}
	s := f.FindSection(name[:i])
	if s == nil {
		return nil
	}
	return s.FindEntry(name[i+1:])
}

// GetSection returns the section with the given fully qualified title,
// creating it and any missing ancestors at the end of the file. GetSection
// will panic if IsValidSection(fqTitle) reports false.
func (f *File) GetSection(fqTitle string) *Section {
	if !IsValidSection(fqTitle) {
		panic("File.GetSection invalid section: " + fqTitle)
	}
	return f.getSection(fqTitle)
}

func (f *File) getSection(fqTitle string) *Section {
	if s := f.FindSection(fqTitle); s != nil {
		return s
	}
	var s *Section
	if i := strings.LastIndexByte(fqTitle, '.'); i == -1 {
		s = NewSection(fqTitle, nil)
	} else {
		// Parents must precede children.
		parent := f.getSection(fqTitle[:i])
		s = NewSection(fqTitle[i+1:], parent)
	}
	f.sections = append(f.sections, s)
	return s
}

// Get returns the value of the entry name in the given section converted to T.
// If there is no such entry, Get returns the zero value of T and a nil error.
// An entry whose text does not convert to T is an error.
func Get[T Scalar](f *File, section, name string) (T, error) {
	e := f.FindEntry(section + "." + name)
	if e == nil {
		var zero T
		return zero, nil
	}
	v, err := Value[T](e)
	if err != nil {
		return v, fmt.Errorf("get %s.%s: %w", section, name, err)
	}
	return v, nil
}

// Set stores value under key in the given section, creating the section if
// necessary, and then rewrites the file on disk. If writing fails, the
// in-memory file is restored to how it was before the call.
func Set[T Scalar](f *File, section, key string, value T) error {
	data := FormatValue(value)
	switch {
	case !IsValidSection(section):
		return fmt.Errorf("set %s.%s: invalid section name %q", section, key, section)
	case !IsValidKey(key):
		return fmt.Errorf("set %s.%s: invalid key %q", section, key, key)
	case !IsValidValue(data):
		return fmt.Errorf("set %s.%s: value contains a line break", section, key)
	}

	nsections := len(f.sections)
	s := f.getSection(section)
	prev := s.FindEntry(key)
	var prevData string
	if prev != nil {
		prevData = prev.data
		prev.data = data
	} else {
		CreateEntry(s, key, data)
	}
	if err := f.Flush(); err != nil {
		if prev != nil {
			prev.data = prevData
		} else {
			s.DeleteEntry(key)
		}
		for i := nsections; i < len(f.sections); i++ {
			// Zero out truncated element for garbage collection.
			f.sections[i] = nil
		}
		f.sections = f.sections[:nsections]
		return fmt.Errorf("set %s.%s: %w", section, key, err)
	}
	return nil
}

// Flush rewrites the whole file at f.Filename().
func (f *File) Flush() error {
	if f.filename == "" {
		return fmt.Errorf("flush ini file: %w", ErrNoFilename)
	}
	data, err := f.MarshalText()
	if err != nil {
		return fmt.Errorf("flush ini file: %w", err)
	}
	if err := os.WriteFile(f.filename, data, 0o666); err != nil {
		return fmt.Errorf("flush ini file: %w", err)
	}
	return nil
}

// MarshalText serializes the file in INI format. Each section is written as
// its fully qualified title in brackets followed by its entries in insertion
// order and a blank line. Values are written verbatim.
func (f *File) MarshalText() ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	var buf []byte
	for _, s := range f.sections {
		buf = append(buf, '[')
		buf = append(buf, s.FQTitle()...)
		buf = append(buf, "]\n"...)
		for _, e := range s.Entries() {
			buf = append(buf, e.key...)
			buf = append(buf, '=')
			buf = append(buf, e.data...)
			buf = append(buf, '\n')
		}
		buf = append(buf, '\n')
	}
	return buf, nil
}

// WriteTo writes the serialized file to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	data, err := f.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// UnmarshalText parses the INI data, replacing any sections in f. The file's
// path is kept.
func (f *File) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	f.sections = parsed.sections
	return nil
}

// Equal reports whether f and other hold equal sections in the same order.
// Paths are not compared.
func (f *File) Equal(other *File) bool {
	if len(f.Sections()) != len(other.Sections()) {
		return false
	}
	for i, s := range f.Sections() {
		if !s.Equal(other.sections[i]) {
			return false
		}
	}
	return true
}

// IsValidSection reports whether a string can be used as a fully qualified
// section title when writing: it must be non-empty, have no empty dotted
// components and contain no brackets or line breaks.
func IsValidSection(name string) bool {
	if name == "" || strings.ContainsAny(name, "[]\r\n") {
		return false
	}
	for _, part := range strings.Split(name, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// IsValidKey reports whether a string can be used as an entry key when
// writing. Keys may not be empty, start with a square bracket, or contain
// equals signs, dots or line breaks.
func IsValidKey(key string) bool {
	if key == "" || key[0] == '[' {
		return false
	}
	return !strings.ContainsAny(key, "=.\r\n")
}

// IsValidValue reports whether a string can be stored as entry text without
// breaking the line-oriented format.
func IsValidValue(data string) bool {
	return !strings.ContainsAny(data, "\r\n")
}
