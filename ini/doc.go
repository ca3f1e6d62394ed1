// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini reads, queries and rewrites INI files whose sections nest through
dotted names. See https://en.wikipedia.org/wiki/INI_file.

A File is an ordered list of Sections. A Section holds Entries and may be the
child of an earlier Section. An Entry is a key and a text value. Values are
always stored as text; Get, Set, Value and SetValue convert to and from the
types in Scalar.

	f, err := ini.Open("settings.ini")
	if err != nil {
		// handle error
	}
	port, err := ini.Get[int](f, "Server.HTTP", "Port")
	if err != nil {
		// Present, but not an int.
	}
	err = ini.Set(f, "Server.HTTP", "Port", port+1) // rewrites settings.ini

Syntax

An INI file is UTF-8 text made of lines of any length. Lines that are empty
or contain only whitespace (including a lone carriage return) are ignored
rather than read as malformed entries.

A line starting with a square bracket ('[') declares a section. The name runs
up to the last closing bracket (']'):

	[Section1]

A dotted name declares a subsection of the section named by everything before
the last dot, provided that section appeared earlier in the file:

	[Section1.Subsection1]

If no such section exists, the whole dotted name is taken as the title of a
top-level section.

Every other line is an entry belonging to the most recently declared section.
The key is everything before the first equals sign ('='), the value is the
rest of the line:

	key=value

No whitespace is trimmed and there are no comments, quoting or escapes. An
entry before the first section is an error.

Fully qualified names

A section's fully qualified title joins the titles of its ancestors and itself
with dots ("Section1.Subsection1"). An entry's fully qualified key appends its
key ("Section1.Subsection1.key"). FindSection and FindEntry take fully
qualified names; FindEntry splits at the last dot.

Writing

Set creates missing sections, along with their ancestors, at the end of the
file and rewrites the entire file immediately. MarshalText writes each section
as its fully qualified title in brackets, then its entries in the order they
were added, then a blank line.
*/
package ini
