// Package filter finds players by team affiliation, era and format.
package filter

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AduSharma/CrickStatX/internal/model"
)

// ErrSortBy is returned for an unknown sort dimension.
var ErrSortBy = errors.New("invalid sort_by. Choose from runs, wkts, st")

// Query selects players. Team is required; the rest are optional.
type Query struct {
	Team   string
	Era    string // decade such as "1990s"
	Format string // substring of the file identifier
	SortBy string // "", "runs", "wkts" or "st"
}

// dimension is one sortable stat: where it lives and how it is labelled.
type dimension struct {
	category model.Category
	column   string
	label    string
}

var dimensions = map[string]dimension{
	"runs": {model.Batting, "Runs", "Runs"},
	"wkts": {model.Bowling, "Wkts", "Wickets"},
	"st":   {model.Fielding, "St", "Stumpings"},
}

// Players scans every table for rows of q.Team within q.Era. Without SortBy
// it returns player names alphabetically; with SortBy it returns players
// ranked by the highest value of that stat seen, dropping zeros.
func Players(ds model.Dataset, q Query) (model.PlayerList, error) {
	team := strings.ToLower(strings.TrimSpace(q.Team))
	sortBy := strings.ToLower(strings.TrimSpace(q.SortBy))
	var dim dimension
	if sortBy != "" {
		d, ok := dimensions[sortBy]
		if !ok {
			return model.PlayerList{}, ErrSortBy
		}
		dim = d
	}

	out := model.PlayerList{Team: capitalize(team), Era: q.Era}
	if q.Format != "" {
		out.Format = strings.ToLower(q.Format)
	}

	var order []string
	best := make(map[string]int)
	seen := make(map[string]bool)
	for _, t := range ds.Tables() {
		if !t.HasColumn(model.ColTeams) {
			continue
		}
		if out.Format != "" && !strings.Contains(strings.ToLower(t.File), out.Format) {
			continue
		}
		checkEra := q.Era != "" && t.HasColumn(model.ColSpan)
		for _, row := range t.Rows {
			teams, ok := row.Get(model.ColTeams)
			if !ok || !strings.Contains(strings.ToLower(teams), team) {
				continue
			}
			if checkEra && !InEra(row[model.ColSpan], q.Era) {
				continue
			}
			name := row[model.ColPlayer]
			if !seen[name] {
				seen[name] = true
				order = append(order, name)
			}
			if sortBy != "" && t.Category == dim.category {
				if v := row[dim.column]; model.IsDigits(v) && model.Int(v) > best[name] {
					best[name] = model.Int(v)
				}
			}
		}
	}

	if sortBy == "" {
		sort.Strings(order)
		out.Players = make([]model.Record, 0, len(order))
		for _, name := range order {
			var r model.Record
			r.Set(model.ColPlayer, name)
			out.Players = append(out.Players, r)
		}
		return out, nil
	}

	sort.SliceStable(order, func(i, j int) bool { return best[order[i]] > best[order[j]] })
	out.Players = make([]model.Record, 0, len(order))
	for _, name := range order {
		if best[name] <= 0 {
			continue
		}
		var r model.Record
		r.Set(model.ColPlayer, name)
		r.Set(dim.label, strconv.Itoa(best[name]))
		out.Players = append(out.Players, r)
	}
	return out, nil
}

// InEra reports whether a "YYYY-YYYY" span overlaps the decade named by era
// ("1990s" covers 1990-1999). Unparsable input does not exclude the row.
func InEra(span, era string) bool {
	if era == "" || !strings.Contains(span, "-") {
		return true
	}
	parts := strings.Split(span, "-")
	if len(parts) != 2 || len(era) < 4 {
		return true
	}
	start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	decade, err3 := strconv.Atoi(era[:4])
	if err1 != nil || err2 != nil || err3 != nil {
		return true
	}
	return decade <= end && decade+9 >= start
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}
