// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileSet is a list of files to obtain configuration from in descending order
// of precedence. Elements may be nil.
type FileSet []*File

// OpenFiles opens the files at the given paths and returns a FileSet.
// If the returned error is nil, the returned file set's length will be the same
// as the number of arguments. OpenFiles will stop on the first error, but
// ignores missing file errors, instead filling the corresponding element of the
// set with a nil *File.
func OpenFiles(paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		f, err := Open(p)
		if errors.Is(err, fs.ErrNotExist) {
			fset = append(fset, nil)
			continue
		}
		if err != nil {
			return fset, fmt.Errorf("open ini files: %w", err)
		}
		fset = append(fset, f)
	}
	return fset, nil
}

// FindEntry returns the entry with the given fully qualified name from the
// first file that has one, or nil.
func (fset FileSet) FindEntry(name string) *Entry {
	for _, f := range fset {
		if e := f.FindEntry(name); e != nil {
			return e
		}
	}
	return nil
}

// Sections returns the fully qualified titles of all sections in the set,
// each once, in the order they are first seen from the highest precedence
// file down.
func (fset FileSet) Sections() []string {
	var titles []string
	seen := make(map[string]struct{})
	for _, f := range fset {
		for _, s := range f.Sections() {
			title := s.FQTitle()
			if _, dup := seen[title]; dup {
				continue
			}
			seen[title] = struct{}{}
			titles = append(titles, title)
		}
	}
	return titles
}

// Lookup returns the value of the entry name in the given section from the
// first file that has it. If no file has it, Lookup returns the zero value of
// T and a nil error.
func Lookup[T Scalar](fset FileSet, section, name string) (T, error) {
	e := fset.FindEntry(section + "." + name)
	if e == nil {
		var zero T
		return zero, nil
	}
	v, err := Value[T](e)
	if err != nil {
		return v, fmt.Errorf("lookup %s.%s: %w", section, name, err)
	}
	return v, nil
}

// SetIn sets the entry on the first file in the set, which then takes
// precedence over any other file. SetIn will panic if len(fset) == 0 or
// fset[0] == nil.
func SetIn[T Scalar](fset FileSet, section, key string, value T) error {
	if fset[0] == nil {
		panic("ini.SetIn on nil first file")
	}
	return Set(fset[0], section, key, value)
}
