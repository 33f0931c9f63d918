package identity

import (
	"strings"
	"unicode/utf8"

	"github.com/AduSharma/CrickStatX/internal/model"
)

// Shape is the classification of a query string.
type Shape int

const (
	ShapeEmpty Shape = iota
	ShapeFullOrShort
	ShapeInitial
	ShapeSurname
)

func (s Shape) String() string {
	switch s {
	case ShapeFullOrShort:
		return "full-or-short"
	case ShapeInitial:
		return "initial"
	case ShapeSurname:
		return "surname"
	default:
		return "empty"
	}
}

// Query is a normalized, classified player identifier.
type Query struct {
	Raw   string
	Text  string // trimmed, lowercase
	Shape Shape
}

// ParseQuery trims and lowercases raw, then classifies it. The checks run in
// a fixed order: an internal space wins, then a length of exactly one
// character, then everything else is a surname.
func ParseQuery(raw string) Query {
	text := strings.ToLower(strings.TrimSpace(raw))
	q := Query{Raw: raw, Text: text}
	switch {
	case text == "":
		q.Shape = ShapeEmpty
	case strings.Contains(text, " "):
		q.Shape = ShapeFullOrShort
	case utf8.RuneCountInString(text) == 1:
		q.Shape = ShapeInitial
	default:
		q.Shape = ShapeSurname
	}
	return q
}

func (q Query) matches(k Keys) bool {
	switch q.Shape {
	case ShapeFullOrShort:
		return k.LowerName == q.Text || (k.ShortCode != "" && k.ShortCode == q.Text)
	case ShapeInitial:
		return k.Initial == q.Text
	case ShapeSurname:
		return k.Surname == q.Text
	default:
		return false
	}
}

// Hit is one matched row.
type Hit struct {
	Table *model.Table
	Index int
}

// Row returns the matched row.
func (h Hit) Row() model.Row { return h.Table.Rows[h.Index] }

// Player returns the matched row's Player value.
func (h Hit) Player() string { return h.Table.Rows[h.Index][model.ColPlayer] }

// Group is the hits of one table.
type Group struct {
	Category model.Category
	File     string
	Hits     []Hit
}

// Result is every row matched by one query across the dataset, grouped by
// (category, table) in dataset order.
type Result struct {
	Query  Query
	Groups []Group
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool { return len(r.Groups) == 0 }

// Hits returns every hit in dataset order.
func (r Result) Hits() []Hit {
	var out []Hit
	for _, g := range r.Groups {
		out = append(out, g.Hits...)
	}
	return out
}

// Match runs q against every table of ds that has a Player column.
func Match(ds model.Dataset, raw string) Result {
	q := ParseQuery(raw)
	res := Result{Query: q}
	if q.Shape == ShapeEmpty {
		return res
	}
	for _, t := range ds.Tables() {
		if !t.HasColumn(model.ColPlayer) {
			continue
		}
		rows := NewIndex(t).Lookup(q)
		if len(rows) == 0 {
			continue
		}
		g := Group{Category: t.Category, File: t.File, Hits: make([]Hit, len(rows))}
		for i, r := range rows {
			g.Hits[i] = Hit{Table: t, Index: r}
		}
		res.Groups = append(res.Groups, g)
	}
	return res
}
