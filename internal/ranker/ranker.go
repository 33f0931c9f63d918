// Package ranker builds per-format Top-N leaderboards straight from the
// tables, without name matching.
package ranker

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AduSharma/CrickStatX/internal/model"
)

// Role is a leaderboard pipeline.
type Role string

const (
	Batsman    Role = "batsman"
	Bowler     Role = "bowler"
	Keeper     Role = "wk"
	AllRounder Role = "allrounder"
)

// DefaultLimit is the leaderboard size when none is given.
const DefaultLimit = 10

var (
	// ErrRole is returned for an unknown role.
	ErrRole = errors.New("invalid role. Choose from batsman, bowler, allrounder, wk")
	// ErrFormat is returned for an unknown format.
	ErrFormat = errors.New("invalid format. Choose from test, odi, t20")
	// ErrMissingTable is returned when the dataset lacks a table the pipeline needs.
	ErrMissingTable = errors.New("no table for format")
)

// Output columns per pipeline, before the Country rewrite.
var (
	batsmanCols    = []string{"Player", "Teams", "Mat", "Inns", "Runs", "Ave", "SR", "50", "100", "HS"}
	bowlerCols     = []string{"Player", "Teams", "Mat", "Inns", "Wkts", "Econ", "Ave", "SR", "5", "10", "BBI"}
	keeperCols     = []string{"Player", "Teams", "Mat", "Runs", "St", "Ct", "D/I", "Ave", "SR", "50", "100", "HS"}
	keeperBatCols  = []string{"Runs", "SR", "100", "50", "Ave", "HS", "D/I"}
	allRounderCols = []string{"Player", "Teams", "Runs", "Ave", "SR", "50", "100", "Wkts", "Econ", "5", "10", "HS"}
	allRounderBat  = []string{"Teams", "Player", "Runs", "Ave", "50", "100", "HS", "SR"}
	allRounderBowl = []string{"Player", "Wkts", "Econ", "5", "10"}
)

// ParseRole resolves a case-insensitive role name.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case Batsman, Bowler, Keeper, AllRounder:
		return r, nil
	default:
		return "", ErrRole
	}
}

// Top returns the leaderboard for role and format.
func Top(ds model.Dataset, role Role, format model.Format, limit int) ([]model.Record, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var rows []model.Record
	var err error
	switch role {
	case Batsman:
		rows, err = topBy(ds, model.Batting, format, "Runs", batsmanCols, limit)
	case Bowler:
		rows, err = topBy(ds, model.Bowling, format, "Wkts", bowlerCols, limit)
	case Keeper:
		rows, err = topKeepers(ds, format, limit)
	case AllRounder:
		rows, err = topAllRounders(ds, format, limit)
	default:
		return nil, ErrRole
	}
	if err != nil {
		return nil, err
	}
	return finish(rows), nil
}

func table(ds model.Dataset, c model.Category, f model.Format) (*model.Table, error) {
	t := ds.TableFor(c, f)
	if t == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrMissingTable, c, f)
	}
	return t, nil
}

// numericRows keeps rows whose col is purely digits, in table order.
func numericRows(t *model.Table, col string) []model.Row {
	var out []model.Row
	for _, r := range t.Rows {
		if model.IsDigits(r[col]) {
			out = append(out, r)
		}
	}
	return out
}

func topBy(ds model.Dataset, c model.Category, f model.Format, key string, cols []string, limit int) ([]model.Record, error) {
	t, err := table(ds, c, f)
	if err != nil {
		return nil, err
	}
	rows := numericRows(t, key)
	sort.SliceStable(rows, func(i, j int) bool {
		return model.Int(rows[i][key]) > model.Int(rows[j][key])
	})
	rows = head(rows, limit)
	out := make([]model.Record, len(rows))
	for i, r := range rows {
		out[i] = model.RecordFromRow(r, cols)
		setInt(&out[i], r, key)
	}
	return out, nil
}

// topKeepers ranks by stumpings then dismissals and enriches each keeper with
// the matching batting row when one exists.
func topKeepers(ds model.Dataset, f model.Format, limit int) ([]model.Record, error) {
	fld, err := table(ds, model.Fielding, f)
	if err != nil {
		return nil, err
	}
	bat, err := table(ds, model.Batting, f)
	if err != nil {
		return nil, err
	}
	rows := numericRows(fld, "St")
	sort.SliceStable(rows, func(i, j int) bool {
		si, sj := model.Int(rows[i]["St"]), model.Int(rows[j]["St"])
		if si != sj {
			return si > sj
		}
		return model.Int(rows[i]["Dis"]) > model.Int(rows[j]["Dis"])
	})
	rows = head(rows, limit)

	batting := make(map[string][]model.Row)
	for _, r := range numericRows(bat, "Runs") {
		batting[r[model.ColPlayer]] = append(batting[r[model.ColPlayer]], r)
	}

	var out []model.Record
	for _, r := range rows {
		joined := []model.Row{nil}
		if m := batting[r[model.ColPlayer]]; len(m) > 0 {
			joined = m
		}
		for _, b := range joined {
			merged := make(model.Row, len(r)+len(keeperBatCols))
			for k, v := range r {
				merged[k] = v
			}
			if b != nil {
				for _, c := range keeperBatCols {
					if v, ok := b.Get(c); ok {
						merged[c] = v
					}
				}
				if merged[model.ColTeams] == "" {
					merged[model.ColTeams] = b[model.ColTeams]
				}
			}
			out = append(out, model.RecordFromRow(merged, keeperCols))
		}
	}
	return out, nil
}

// topAllRounders inner-joins batting and bowling on player name, keeps
// careers with 1000+ runs and 50+ wickets and ranks by runs plus wickets.
func topAllRounders(ds model.Dataset, f model.Format, limit int) ([]model.Record, error) {
	bat, err := table(ds, model.Batting, f)
	if err != nil {
		return nil, err
	}
	bowl, err := table(ds, model.Bowling, f)
	if err != nil {
		return nil, err
	}
	bowling := make(map[string][]model.Row)
	for _, r := range numericRows(bowl, "Wkts") {
		bowling[r[model.ColPlayer]] = append(bowling[r[model.ColPlayer]], r)
	}

	type pair struct {
		row    model.Row
		impact int
	}
	var pairs []pair
	for _, b := range numericRows(bat, "Runs") {
		for _, w := range bowling[b[model.ColPlayer]] {
			runs, wkts := model.Int(b["Runs"]), model.Int(w["Wkts"])
			if runs < 1000 || wkts < 50 {
				continue
			}
			merged := make(model.Row)
			for _, c := range allRounderBat {
				merged[c] = fillZero(b, c, bat)
			}
			for _, c := range allRounderBowl {
				merged[c] = fillZero(w, c, bowl)
			}
			merged["Runs"] = strconv.Itoa(runs)
			merged["Wkts"] = strconv.Itoa(wkts)
			pairs = append(pairs, pair{row: merged, impact: runs + wkts})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].impact > pairs[j].impact })
	if len(pairs) > limit {
		pairs = pairs[:limit]
	}
	out := make([]model.Record, len(pairs))
	for i, p := range pairs {
		out[i] = model.RecordFromRow(p.row, allRounderCols)
	}
	return out, nil
}

// fillZero reads col from r, substituting "0" for a missing value when the
// table carries the column.
func fillZero(r model.Row, col string, t *model.Table) string {
	if v, ok := r.Get(col); ok {
		return v
	}
	if t.HasColumn(col) {
		return "0"
	}
	return ""
}

func head(rows []model.Row, n int) []model.Row {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}

// setInt stores the key column in canonical integer form ("007" -> "7").
func setInt(rec *model.Record, r model.Row, key string) {
	if _, ok := rec.Get(key); ok {
		rec.Set(key, strconv.Itoa(model.Int(r[key])))
	}
}

// finish puts Player first and the derived Country second, drops Teams,
// strips numeric zero values and drops rows with fewer than two fields left.
func finish(rows []model.Record) []model.Record {
	out := make([]model.Record, 0, len(rows))
	for _, r := range rows {
		var rec model.Record
		if p, ok := r.Get(model.ColPlayer); ok {
			rec.Set(model.ColPlayer, p)
		}
		if teams, ok := r.Get(model.ColTeams); ok {
			if c := Country(teams); c != "" {
				rec.Set("Country", c)
			}
		}
		for _, f := range r.Fields {
			if f.Key == model.ColPlayer || f.Key == model.ColTeams {
				continue
			}
			rec.Set(f.Key, f.Value)
		}
		var kept model.Record
		for _, f := range rec.Fields {
			if model.IsZero(f.Value) {
				continue
			}
			kept.Set(f.Key, f.Value)
		}
		if kept.Len() > 1 {
			out = append(out, kept)
		}
	}
	return out
}

// Country returns the first team that is not an XI composite side, else the
// first team, else "".
func Country(teams string) string {
	if teams == "" {
		return ""
	}
	list := strings.Split(teams, ",")
	for i := range list {
		list[i] = strings.TrimSpace(list[i])
	}
	for _, t := range list {
		if !strings.Contains(strings.ToUpper(t), "XI") {
			return t
		}
	}
	return list[0]
}
