// Package identity resolves a user-supplied player identifier to the rows of
// every table that refer to it. Tables share no player ID, so matching works
// on four keys derived from the Player column.
package identity

import (
	"strings"

	"github.com/AduSharma/CrickStatX/internal/model"
)

// Keys are the lookup keys derived from one Player value. None is unique.
type Keys struct {
	LowerName string // full name, lowercase, spacing untouched
	ShortCode string // "<first initial> <surname>"; empty for one-token names
	Surname   string // last whitespace-delimited token
	Initial   string // first character of the trimmed name
}

// KeysOf derives the lookup keys of a player name.
func KeysOf(name string) Keys {
	lower := strings.ToLower(name)
	tokens := strings.Fields(lower)
	k := Keys{LowerName: lower}
	if len(tokens) > 0 {
		k.Surname = tokens[len(tokens)-1]
	}
	if len(tokens) >= 2 {
		k.ShortCode = firstChar(tokens[0]) + " " + k.Surname
	}
	k.Initial = firstChar(strings.TrimSpace(lower))
	return k
}

func firstChar(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// Index holds the keys of every row of one table. It is built per request
// and never written back onto the shared table.
type Index struct {
	table *model.Table
	keys  []Keys
}

// NewIndex derives the keys of every row of t. Rows with an empty Player
// value get zero keys and never match.
func NewIndex(t *model.Table) *Index {
	idx := &Index{table: t, keys: make([]Keys, len(t.Rows))}
	for i, row := range t.Rows {
		if name, ok := row.Get(model.ColPlayer); ok {
			idx.keys[i] = KeysOf(name)
		}
	}
	return idx
}

// Lookup returns the indices of rows matching q, in table order.
func (idx *Index) Lookup(q Query) []int {
	var out []int
	for i, k := range idx.keys {
		if k.LowerName == "" {
			continue
		}
		if q.matches(k) {
			out = append(out, i)
		}
	}
	return out
}
