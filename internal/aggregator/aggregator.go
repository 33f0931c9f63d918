// Package aggregator folds the rows matched for a query into per-player
// summaries: career totals, a role classification, a narrative, tags and the
// raw profile view.
package aggregator

import (
	"github.com/AduSharma/CrickStatX/internal/identity"
	"github.com/AduSharma/CrickStatX/internal/model"
)

// Player is one canonical player: every matched row whose Player value is
// exactly Name, bucketed by category. It lives for one request.
type Player struct {
	Name         string
	Teams        string // from the first matched row
	CareerLength string // from the first matched row; empty when unknown
	Rows         map[model.Category][]model.Row
	Hits         []identity.Hit
}

// Group folds hits into canonical players keyed by the exact Player string,
// returned in first-encounter order.
func Group(res identity.Result) []*Player {
	var order []*Player
	byName := make(map[string]*Player)
	for _, g := range res.Groups {
		for _, h := range g.Hits {
			name := h.Player()
			p, ok := byName[name]
			if !ok {
				row := h.Row()
				p = &Player{
					Name:         name,
					Teams:        row[model.ColTeams],
					CareerLength: row[model.ColCareerLength],
					Rows:         make(map[model.Category][]model.Row),
				}
				byName[name] = p
				order = append(order, p)
			}
			p.Rows[g.Category] = append(p.Rows[g.Category], h.Row())
			p.Hits = append(p.Hits, h)
		}
	}
	return order
}

// Totals are career sums across every matched row of a player.
type Totals struct {
	Runs, Fours, Sixes, Innings             int
	Wickets, FourHauls, FiveHauls, TenHauls int
	Dismissals, Catches, Stumpings          int
}

// Sum totals a player's rows with the integer-only predicate: zero, negative
// and non-digit cells are all skipped.
func Sum(p *Player) Totals {
	bat := p.Rows[model.Batting]
	bowl := p.Rows[model.Bowling]
	field := p.Rows[model.Fielding]
	return Totals{
		Runs:       model.SumCount(bat, "Runs"),
		Fours:      model.SumCount(bat, "4s"),
		Sixes:      model.SumCount(bat, "6s"),
		Innings:    model.SumCount(bat, "Inns"),
		Wickets:    model.SumCount(bowl, "Wkts"),
		FourHauls:  model.SumCount(bowl, "4"),
		FiveHauls:  model.SumCount(bowl, "5"),
		TenHauls:   model.SumCount(bowl, "10"),
		Dismissals: model.SumCount(field, "Dis"),
		Catches:    model.SumCount(field, "Ct"),
		Stumpings:  model.SumCount(field, "St"),
	}
}

// Role is the career classification of a player.
type Role int

const (
	RoleUtility Role = iota
	RoleBatsman
	RoleBowler
	RoleAllRounder
)

func (r Role) String() string {
	switch r {
	case RoleBatsman:
		return "batsman"
	case RoleBowler:
		return "bowler"
	case RoleAllRounder:
		return "all-rounder"
	default:
		return "utility"
	}
}

// Classify applies the role thresholds in priority order. All comparisons
// are strict, so 1000 runs exactly is never a batsman or all-rounder.
func Classify(t Totals) Role {
	switch {
	case t.Runs > 1000 && t.Wickets < 50:
		return RoleBatsman
	case t.Wickets > 100 && t.Runs < 1000:
		return RoleBowler
	case t.Runs > 1000 && t.Wickets > 50:
		return RoleAllRounder
	default:
		return RoleUtility
	}
}
