// Package report renders query payloads as terminal tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/AduSharma/CrickStatX/internal/model"
	"github.com/AduSharma/CrickStatX/internal/storage"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// PrintMessage prints a NotFound or InvalidInput payload.
func PrintMessage(w io.Writer, payload any) {
	switch p := payload.(type) {
	case model.Message:
		fmt.Fprintln(w, p.Message)
	case model.ErrorPayload:
		fmt.Fprintf(w, "error: %s\n", p.Error)
	default:
		fmt.Fprintln(w, p)
	}
}

// PrintRecords prints records as one table whose columns are the union of
// their keys in first-seen order. Missing cells print as "—".
func PrintRecords(w io.Writer, records []model.Record) {
	var cols []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, k := range r.Keys() {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	if len(cols) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}
	table := newTable(w)
	header := append([]string{"#"}, cols...)
	table.Header(toAny(header)...)
	for i, r := range records {
		row := []string{fmt.Sprintf("%d", i+1)}
		for _, c := range cols {
			v, ok := r.Get(c)
			if !ok {
				v = "—"
			}
			row = append(row, v)
		}
		table.Append(toAny(row)...)
	}
	table.Render()
}

// PrintProfile prints one table per matched file.
func PrintProfile(w io.Writer, p model.ProfilePayload) {
	fmt.Fprintf(w, "\nPlayer: %s\n", p.Player)
	for _, c := range model.Categories {
		files := make([]string, 0, len(p.Profile[c]))
		for f := range p.Profile[c] {
			files = append(files, f)
		}
		sort.Strings(files)
		for _, f := range files {
			fmt.Fprintf(w, "\n--- %s / %s ---\n\n", c, f)
			PrintRecords(w, p.Profile[c][f])
		}
	}
}

// PrintSummaries prints each player's narrative as a paragraph.
func PrintSummaries(w io.Writer, summaries []model.PlayerSummary) {
	for _, s := range summaries {
		fmt.Fprintf(w, "\n=== %s ===\n\n%s\n", s.Player, s.Summary)
	}
	fmt.Fprintln(w)
}

// PrintTags prints the role and format tag of each player.
func PrintTags(w io.Writer, tags []model.PlayerTags) {
	table := newTable(w)
	table.Header("PLAYER", "TAGS")
	for _, t := range tags {
		table.Append(t.Player, strings.Join(t.Tags, " | "))
	}
	table.Render()
}

// PrintComparison prints one table per (category, format) with a column per
// player, followed by the winner summary.
func PrintComparison(w io.Writer, c model.Comparison) {
	for _, cat := range model.Categories {
		for _, f := range model.Formats {
			cells := c.Comparison[cat][f]
			if len(cells) == 0 {
				continue
			}
			fmt.Fprintf(w, "\n--- %s / %s ---\n\n", cat, f)
			table := newTable(w)
			table.Header(toAny(append([]string{"STAT"}, c.Players...))...)
			for _, stat := range sortedStats(cells) {
				row := []string{stat}
				for _, p := range c.Players {
					row = append(row, cells[stat][p])
				}
				table.Append(toAny(row)...)
			}
			table.Render()
		}
	}
	fmt.Fprintf(w, "\nWinner: %s\n\n%s\n\n", c.WinnerSummary.Winner, c.WinnerSummary.Summary)
}

// statOrder is the display order of comparison stats.
var statOrder = []string{"Mat", "Inns", "Runs", "Wkts", "Ave", "SR", "Econ", "100", "50", "4s", "6s", "4", "5", "10", "Dis", "Ct", "St"}

func sortedStats(cells map[string]model.StatCell) []string {
	rank := make(map[string]int, len(statOrder))
	for i, s := range statOrder {
		rank[s] = i
	}
	out := make([]string, 0, len(cells))
	for s := range cells {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return rank[out[i]] < rank[out[j]] })
	return out
}

// PrintLeaderboard prints a top-performers table.
func PrintLeaderboard(w io.Writer, l model.Leaderboard) {
	fmt.Fprintf(w, "\nTop %s (%s)\n\n", l.Role, strings.ToUpper(l.Format))
	PrintRecords(w, l.TopPerformers)
}

// PrintPlayerList prints a team/era filter result.
func PrintPlayerList(w io.Writer, l model.PlayerList) {
	header := "Team: " + l.Team
	if l.Era != "" {
		header += "  |  Era: " + l.Era
	}
	if l.Format != "" {
		header += "  |  Format: " + l.Format
	}
	fmt.Fprintf(w, "\n%s  |  Players: %d\n\n", header, len(l.Players))
	PrintRecords(w, l.Players)
}

// PrintList prints a plain list of names, one per line.
func PrintList(w io.Writer, items []string) {
	for _, s := range items {
		fmt.Fprintln(w, s)
	}
}

// PrintRows prints the result of a raw SQL query.
func PrintRows(w io.Writer, cols []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}
	table := newTable(w)
	table.Header(toAny(cols)...)
	for _, row := range rows {
		table.Append(toAny(row)...)
	}
	table.Render()
	fmt.Fprintf(w, "\n(%d rows)\n", len(rows))
}

// PrintTables lists the SQL tables mirroring the dataset.
func PrintTables(w io.Writer, tables []storage.TableInfo) {
	if len(tables) == 0 {
		fmt.Fprintln(w, "No tables loaded.")
		return
	}
	table := newTable(w)
	table.Header("TABLE", "CATEGORY", "FILE", "FORMAT", "ROWS")
	for _, t := range tables {
		format := t.Format
		if format == "" {
			format = "—"
		}
		table.Append(t.Name, t.Category, t.File, format, fmt.Sprintf("%d", t.Rows))
	}
	table.Render()
}
