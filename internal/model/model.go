// Package model holds the in-memory dataset types shared by the query engine
// and the payload shapes it returns to the CLI and HTTP layers.
package model

import (
	"sort"
	"strings"
	"unicode"
)

// Category is a statistical domain with its own table set.
type Category string

const (
	Batting  Category = "Batting"
	Bowling  Category = "Bowling"
	Fielding Category = "Fielding"
)

// Categories lists every category in the fixed iteration order used by all queries.
var Categories = []Category{Batting, Bowling, Fielding}

// Format is an international match format inferred from a file identifier.
type Format string

const (
	Test Format = "Test"
	ODI  Format = "ODI"
	T20  Format = "T20"
)

// Formats lists the formats in their fixed encounter order.
var Formats = []Format{Test, ODI, T20}

// FormatOf detects the format of a source file by case-insensitive substring
// search, checking "test", then "odi", then "t20".
func FormatOf(file string) (Format, bool) {
	lower := strings.ToLower(file)
	for _, f := range Formats {
		if strings.Contains(lower, strings.ToLower(string(f))) {
			return f, true
		}
	}
	return "", false
}

// ParseFormat resolves a case-insensitive format name ("test", "odi", "t20").
func ParseFormat(s string) (Format, bool) {
	for _, f := range Formats {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, true
		}
	}
	return "", false
}

// ---- Well-known columns ----

const (
	ColPlayer       = "Player"
	ColTeams        = "Teams"
	ColCareerLength = "CareerLength"
	ColSpan         = "Span"
)

// ---- Tables ----

// Row maps a column name to its raw cell text. An empty string is a missing value.
type Row map[string]string

// Get returns the cell for col and whether it holds a value.
func (r Row) Get(col string) (string, bool) {
	v, ok := r[col]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Table is one category/format combination, immutable once loaded.
type Table struct {
	Category Category
	File     string
	Columns  []string
	Rows     []Row
}

// HasColumn reports whether the table carries col.
func (t *Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Dataset maps each category to its tables keyed by file identifier.
type Dataset map[Category]map[string]*Table

// Add registers a table under its category and file.
func (d Dataset) Add(t *Table) {
	if d[t.Category] == nil {
		d[t.Category] = make(map[string]*Table)
	}
	d[t.Category][t.File] = t
}

// Files returns the file identifiers of one category in sorted order.
func (d Dataset) Files(c Category) []string {
	files := make([]string, 0, len(d[c]))
	for f := range d[c] {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Tables returns every table, categories in fixed order and files sorted within each.
func (d Dataset) Tables() []*Table {
	var out []*Table
	for _, c := range Categories {
		for _, f := range d.Files(c) {
			out = append(out, d[c][f])
		}
	}
	return out
}

// TableFor returns the first table of category c whose file identifier
// contains format f (case-insensitive).
func (d Dataset) TableFor(c Category, f Format) *Table {
	for _, file := range d.Files(c) {
		if got, ok := FormatOf(file); ok && got == f {
			return d[c][file]
		}
	}
	return nil
}

// TitleCase upper-cases the first letter of every letter run and lower-cases
// the rest, so "s tendulkar" becomes "S Tendulkar".
func TitleCase(s string) string {
	out := []rune(strings.ToLower(s))
	prevLetter := false
	for i, r := range out {
		isLetter := unicode.IsLetter(r)
		if isLetter && !prevLetter {
			out[i] = unicode.ToUpper(r)
		}
		prevLetter = isLetter
	}
	return string(out)
}
