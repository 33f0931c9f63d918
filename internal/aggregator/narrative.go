package aggregator

import (
	"fmt"
	"strings"

	"github.com/AduSharma/CrickStatX/internal/identity"
	"github.com/AduSharma/CrickStatX/internal/model"
)

// Analyze builds one narrative per canonical player matched by res.
func Analyze(res identity.Result) []model.PlayerSummary {
	players := Group(res)
	out := make([]model.PlayerSummary, 0, len(players))
	for _, p := range players {
		out = append(out, model.PlayerSummary{
			Player:  p.Name,
			Summary: Narrative(p, Sum(p)),
		})
	}
	return out
}

// Narrative fills the role template with the player's totals. A zero total
// drops its clause instead of printing "0".
func Narrative(p *Player, t Totals) string {
	teams := orNA(p.Teams)
	career := orNA(p.CareerLength)
	lines := []string{fmt.Sprintf("%s represented %s for %s years in international cricket across various formats.", p.Name, teams, career)}

	switch Classify(t) {
	case RoleBatsman:
		line := "🏏 A remarkable batsman, he"
		if t.Runs > 0 {
			line += fmt.Sprintf(" scored over %d runs", t.Runs)
		}
		if t.Innings > 0 {
			line += fmt.Sprintf(" in %d innings", t.Innings)
		}
		line += "."
		var hits []string
		if t.Fours > 0 {
			hits = append(hits, fmt.Sprintf("%d boundaries", t.Fours))
		}
		if t.Sixes > 0 {
			hits = append(hits, fmt.Sprintf("%d sixes", t.Sixes))
		}
		if len(hits) > 0 {
			line += " He struck " + strings.Join(hits, " and ") + "."
		}
		line += " His consistency made him a pillar in his batting lineup."
		lines = append(lines, line)

	case RoleBowler:
		line := "🔥 A lethal bowler, he"
		if t.Wickets > 0 {
			line += fmt.Sprintf(" claimed over %d wickets", t.Wickets)
		}
		line += bowlerHauls(t)
		line += ". His economy and average made him a threat for batters."
		lines = append(lines, line)

	case RoleAllRounder:
		line := "⭐ An excellent all-rounder, he"
		if t.Runs > 0 {
			line += fmt.Sprintf(" accumulated %d runs", t.Runs)
		}
		if t.Wickets > 0 {
			line += fmt.Sprintf(" and took %d wickets", t.Wickets)
		}
		line += "."
		if hauls := haulParts(t); len(hauls) > 0 {
			line += " His bowling included " + strings.Join(hauls, ", ") + "."
		}
		line += " His performance in both departments contributed equally to his team's success."
		lines = append(lines, line)

	default:
		lines = append(lines, "While his numbers aren't exceptional in batting or bowling alone, his utility as a team player was valuable.")
	}

	if line := fieldingLine(t); line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, " ")
}

// bowlerHauls renders " with X four-wicket hauls, Y five-wicket hauls, and
// Z ten-wicket hauls", leaving out zero counts.
func bowlerHauls(t Totals) string {
	var out string
	sep := func(lead string) string {
		if out == "" {
			return " with "
		}
		return lead
	}
	if t.FourHauls > 0 {
		out += sep(", ") + fmt.Sprintf("%d four-wicket hauls", t.FourHauls)
	}
	if t.FiveHauls > 0 {
		out += sep(", ") + fmt.Sprintf("%d five-wicket hauls", t.FiveHauls)
	}
	if t.TenHauls > 0 {
		out += sep(", and ") + fmt.Sprintf("%d ten-wicket hauls", t.TenHauls)
	}
	return out
}

func haulParts(t Totals) []string {
	var parts []string
	if t.FourHauls > 0 {
		parts = append(parts, fmt.Sprintf("%d four-wicket hauls", t.FourHauls))
	}
	if t.FiveHauls > 0 {
		parts = append(parts, fmt.Sprintf("%d five-wicket hauls", t.FiveHauls))
	}
	if t.TenHauls > 0 {
		parts = append(parts, fmt.Sprintf("%d ten-wicket match hauls", t.TenHauls))
	}
	return parts
}

// fieldingLine frames the player as a wicketkeeper when there are stumpings,
// else as a fielder when there are catches.
func fieldingLine(t Totals) string {
	switch {
	case t.Stumpings > 0:
		var parts []string
		if t.Dismissals > 0 {
			parts = append(parts, fmt.Sprintf("%d dismissals", t.Dismissals))
		}
		if t.Catches > 0 {
			parts = append(parts, fmt.Sprintf("%d catches", t.Catches))
		}
		parts = append(parts, fmt.Sprintf("%d stumpings", t.Stumpings))
		return "🧤 His fielding record includes " + joinList(parts) + "."
	case t.Catches > 0:
		return fmt.Sprintf("⚡ In the field, he contributed %d catches, showcasing his alertness.", t.Catches)
	default:
		return ""
	}
}

// joinList joins "a", "a and b", "a, b and c".
func joinList(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
