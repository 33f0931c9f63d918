package aggregator

import (
	"github.com/AduSharma/CrickStatX/internal/identity"
	"github.com/AduSharma/CrickStatX/internal/model"
)

// Score weights shared by the tag format score and the comparison winner.
const (
	WicketWeight    = 20
	DismissalWeight = 10
)

// FormatScores accumulates a weighted contribution per format.
type FormatScores map[model.Format]int

// Best returns the format with the strictly highest score. Ties keep the
// earliest of Test, ODI, T20.
func (s FormatScores) Best() model.Format {
	best := model.Formats[0]
	for _, f := range model.Formats[1:] {
		if s[f] > s[best] {
			best = f
		}
	}
	return best
}

// TagTotals are the decimal-tolerant totals the tag rules read.
type TagTotals struct {
	Runs, Wickets, Stumpings int
}

// ScoreFormats weighs every hit of p into the format its file belongs to:
// runs, wickets x20 and dismissals x10. Hits from files with no detectable
// format add nothing.
func ScoreFormats(p *Player) FormatScores {
	scores := FormatScores{model.Test: 0, model.ODI: 0, model.T20: 0}
	for _, h := range p.Hits {
		f, ok := model.FormatOf(h.Table.File)
		if !ok {
			continue
		}
		row := h.Row()
		switch h.Table.Category {
		case model.Batting:
			if v := row["Runs"]; model.ValidDecimal(v) {
				scores[f] += model.Int(v)
			}
		case model.Bowling:
			if v := row["Wkts"]; model.ValidDecimal(v) {
				scores[f] += model.Int(v) * WicketWeight
			}
		case model.Fielding:
			if v := row["Dis"]; model.ValidDecimal(v) {
				scores[f] += model.Int(v) * DismissalWeight
			}
		}
	}
	return scores
}

// SumTags totals runs, wickets and stumpings with the decimal-tolerant predicate.
func SumTags(p *Player) TagTotals {
	return TagTotals{
		Runs:      model.SumDecimal(p.Rows[model.Batting], "Runs"),
		Wickets:   model.SumDecimal(p.Rows[model.Bowling], "Wkts"),
		Stumpings: model.SumDecimal(p.Rows[model.Fielding], "St"),
	}
}

// RoleTag picks the role label. Thresholds differ from Classify on purpose.
func RoleTag(t TagTotals) string {
	switch {
	case t.Stumpings > 1:
		return "Wicketkeeper Batter 🧤"
	case t.Runs > 1000 && t.Wickets >= 50:
		return "Spirited All-Rounder ⚔️"
	case t.Runs > 1000:
		return "Dependable Batsman 🏏"
	case t.Wickets >= 100:
		return "Ferocious Bowler 🎯"
	default:
		return "Versatile Team Player 🔁"
	}
}

// FormatTag labels a player's best format.
func FormatTag(f model.Format) string {
	switch f {
	case model.Test:
		return "Test Veteran 🛡️"
	case model.ODI:
		return "ODI Performer 🔥"
	default:
		return "T20 Specialist 💪"
	}
}

// Tags produces a role tag and a format tag for every canonical player.
func Tags(res identity.Result) []model.PlayerTags {
	players := Group(res)
	out := make([]model.PlayerTags, 0, len(players))
	for _, p := range players {
		out = append(out, model.PlayerTags{
			Player: p.Name,
			Tags:   []string{RoleTag(SumTags(p)), FormatTag(ScoreFormats(p).Best())},
		})
	}
	return out
}
