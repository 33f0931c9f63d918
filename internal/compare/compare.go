// Package compare sets two player queries side by side per category, format
// and stat, and picks a winner by weighted career score.
package compare

import (
	"errors"
	"fmt"

	"github.com/AduSharma/CrickStatX/internal/aggregator"
	"github.com/AduSharma/CrickStatX/internal/identity"
	"github.com/AduSharma/CrickStatX/internal/model"
)

var (
	// ErrArity is returned when the comparison is not given exactly two queries.
	ErrArity = errors.New("please provide exactly TWO players for comparison")
	// ErrNoMatch is returned when a query matches no row.
	ErrNoMatch = errors.New("no matching players found")
	// ErrSamePlayer is returned when both queries resolve to a single player.
	ErrSamePlayer = errors.New("both names resolve to the same player")
)

// Columns kept per category; anything else is ignored.
var allowed = map[model.Category][]string{
	model.Batting:  {"Mat", "Inns", "Runs", "Ave", "SR", "100", "50", "4s", "6s"},
	model.Bowling:  {"Mat", "Inns", "Wkts", "Econ", "Ave", "SR", "4", "5", "10"},
	model.Fielding: {"Mat", "Inns", "Dis", "Ct", "St"},
}

// statSet is one player's valid values per category and format.
type statSet map[model.Category]map[model.Format]map[string]string

func (s statSet) sum(c model.Category, cols ...string) int {
	total := 0
	for _, stats := range s[c] {
		for _, col := range cols {
			if v, ok := stats[col]; ok {
				total += model.Int(v)
			}
		}
	}
	return total
}

// Compare resolves both queries and builds the comparison. Every canonical
// player a query matches takes part, ordered by query then encounter.
func Compare(ds model.Dataset, queries []string) (model.Comparison, error) {
	var names []string
	for _, q := range queries {
		if identity.ParseQuery(q).Shape != identity.ShapeEmpty {
			names = append(names, q)
		}
	}
	if len(names) != 2 {
		return model.Comparison{}, ErrArity
	}

	var order []string
	sets := make(map[string]statSet)
	for _, q := range names {
		res := identity.Match(ds, q)
		if res.Empty() {
			return model.Comparison{}, fmt.Errorf("%w for %q", ErrNoMatch, res.Query.Text)
		}
		for _, h := range res.Hits() {
			f, ok := model.FormatOf(h.Table.File)
			if !ok {
				continue
			}
			name := h.Player()
			set, seen := sets[name]
			if !seen {
				set = statSet{}
				for _, c := range model.Categories {
					set[c] = make(map[model.Format]map[string]string)
				}
				sets[name] = set
				order = append(order, name)
			}
			cat := h.Table.Category
			if set[cat][f] == nil {
				set[cat][f] = make(map[string]string)
			}
			row := h.Row()
			for _, col := range allowed[cat] {
				if v := row[col]; model.ValidDecimal(v) {
					set[cat][f][col] = v
				}
			}
		}
	}
	if len(order) == 0 {
		return model.Comparison{}, ErrNoMatch
	}
	if len(order) < 2 {
		return model.Comparison{}, ErrSamePlayer
	}

	out := model.Comparison{
		Players:    order,
		Comparison: make(map[model.Category]map[model.Format]map[string]model.StatCell, len(model.Categories)),
	}
	for _, c := range model.Categories {
		out.Comparison[c] = make(map[model.Format]map[string]model.StatCell)
	}

	m := newMask(order, sets)
	for _, c := range model.Categories {
		for _, f := range model.Formats {
			for _, stat := range allowed[c] {
				if !m.visible(stat) {
					continue
				}
				cell, ok := presentForAll(order, sets, c, f, stat)
				if !ok {
					continue
				}
				if out.Comparison[c][f] == nil {
					out.Comparison[c][f] = make(map[string]model.StatCell)
				}
				out.Comparison[c][f][stat] = cell
			}
		}
	}

	out.WinnerSummary = winner(order, sets)
	return out, nil
}

// presentForAll returns the cell only when every player has a valid value
// for the (category, format, stat) triple.
func presentForAll(order []string, sets map[string]statSet, c model.Category, f model.Format, stat string) (model.StatCell, bool) {
	cell := make(model.StatCell, len(order))
	for _, p := range order {
		v, ok := sets[p][c][f][stat]
		if !ok {
			return nil, false
		}
		cell[p] = v
	}
	return cell, true
}

// mask decides which fielding columns are shown at all.
type mask struct {
	showSt, showCt bool
}

// newMask shows St only when every player has stumpings. Otherwise, when
// the first two players' catches equal their dismissals, Ct is redundant and hidden.
func newMask(order []string, sets map[string]statSet) mask {
	m := mask{showSt: true, showCt: true}
	for _, p := range order {
		if sets[p].sum(model.Fielding, "St") == 0 {
			m.showSt = false
			break
		}
	}
	if m.showSt {
		return m
	}
	redundant := true
	for _, p := range order[:2] {
		if sets[p].sum(model.Fielding, "Ct") != sets[p].sum(model.Fielding, "Dis") {
			redundant = false
			break
		}
	}
	m.showCt = !redundant
	return m
}

func (m mask) visible(stat string) bool {
	switch stat {
	case "St":
		return m.showSt
	case "Ct":
		return m.showCt
	default:
		return true
	}
}

type role int

const (
	roleBatsman role = iota
	roleKeeper
	roleAllRounder
	roleBowler
)

type career struct {
	name                                   string
	runs, wickets, catches, stumpings, dis int
}

func (c career) score() int {
	return c.runs + c.wickets*aggregator.WicketWeight + (c.dis+c.catches+c.stumpings)*aggregator.DismissalWeight
}

func (c career) role() role {
	switch {
	case c.stumpings > 0:
		return roleKeeper
	case c.runs > 1000 && c.wickets >= 50:
		return roleAllRounder
	case c.wickets >= 100:
		return roleBowler
	default:
		return roleBatsman
	}
}

// winner picks the strictly highest score; on a tie the earlier player wins.
// The loser is the first other player.
func winner(order []string, sets map[string]statSet) model.WinnerSummary {
	careers := make([]career, len(order))
	best := 0
	for i, p := range order {
		s := sets[p]
		careers[i] = career{
			name:      p,
			runs:      s.sum(model.Batting, "Runs"),
			wickets:   s.sum(model.Bowling, "Wkts"),
			catches:   s.sum(model.Fielding, "Ct"),
			stumpings: s.sum(model.Fielding, "St"),
			dis:       s.sum(model.Fielding, "Dis"),
		}
		if careers[i].score() > careers[best].score() {
			best = i
		}
	}
	w := careers[best]
	loser := careers[0].name
	if best == 0 {
		loser = careers[1].name
	}
	return model.WinnerSummary{Winner: w.name, Summary: summary(w, loser)}
}

func summary(w career, loser string) string {
	switch w.role() {
	case roleKeeper:
		return fmt.Sprintf("🧤 %s emerged as the stronger player in this comparison, excelling as a wicketkeeper-batter. "+
			"Across all formats, he recorded %d runs and %d total dismissals, including %d stumpings and %d catches. "+
			"His performance behind the stumps was equally matched by consistent contributions with the bat, making him invaluable in multiple match situations. "+
			"In comparison, %s is a talented player but could not match his balanced excellence. "+
			"The combination of batting stability and sharp wicketkeeping gives %s a decisive edge across formats, proving his adaptability and dominance.",
			w.name, w.runs, w.catches+w.stumpings, w.stumpings, w.catches, loser, w.name)
	case roleAllRounder:
		return fmt.Sprintf("⚔️ %s proved to be the superior all-rounder in this matchup. "+
			"He scored %d runs and claimed %d wickets across formats, showing dominance with both bat and ball. "+
			"His ability to shift momentum in matches with either bat or ball made a huge difference. "+
			"%s, while talented, could not match the same all-round impact. "+
			"%s's dual skills set him apart, delivering consistent match-winning performances in a variety of conditions.",
			w.name, w.runs, w.wickets, loser, w.name)
	case roleBowler:
		return fmt.Sprintf("🎯 %s stood out as the more effective bowler, claiming %d wickets across formats. "+
			"His ability to break partnerships and maintain control over run flow tilted the balance in his favor. "+
			"While %s had his moments, %s's dominance with the ball ensured he had the upper hand throughout this comparison, proving his value as a strike bowler.",
			w.name, w.wickets, loser, w.name)
	default:
		return fmt.Sprintf("🏏 %s outshined %s in batting performance, amassing %d runs across all formats. "+
			"His ability to consistently score and anchor innings proved decisive. "+
			"%s fell short in maintaining the same level of batting impact, making %s the more reliable and productive batter overall.",
			w.name, loser, w.runs, loser, w.name)
	}
}
