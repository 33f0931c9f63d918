// Package ingest loads the per-category CSV statistics files into an
// immutable model.Dataset.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/AduSharma/CrickStatX/internal/model"
)

// ErrNoCategory is returned when the data root contains none of the
// Batting, Bowling or Fielding directories.
var ErrNoCategory = errors.New("no category directories found")

// teamNames maps the team codes used in player annotations to country names.
var teamNames = map[string]string{
	"INDIA": "India", "AUS": "Australia", "PAK": "Pakistan", "ENG": "England",
	"RSA": "South Africa", "SA": "South Africa", "NZ": "New Zealand",
	"SL": "Sri Lanka", "BDESH": "Bangladesh", "WI": "West Indies", "WIND": "West Indies",
	"AFG": "Afghanistan", "IRE": "Ireland", "NL": "Netherlands", "SCOT": "Scotland", "KENYA": "Kenya",
	"CAN": "Canada", "NAM": "Namibia", "UAE": "United Arab Emirates",
	"HKG": "Hong Kong", "NEPAL": "Nepal",
	"ASIA": "Asia XI", "AFR": "Africa XI", "ICC": "ICC World XI", "EAF": "East Africa XI",
	"WORLD": "World XI", "AMERICAS": "Americas XI",
}

var (
	annotationRe = regexp.MustCompile(`\((.*?)\)`)
	cleanRe      = regexp.MustCompile(`\s*\(.*?\)`)
)

// LoadDir reads every .csv file under root/<Category>/. Unreadable files are
// reported to warn and skipped.
func LoadDir(root string, warn io.Writer) (model.Dataset, error) {
	if warn == nil {
		warn = io.Discard
	}
	ds := make(model.Dataset)
	found := 0
	for _, cat := range model.Categories {
		dir := filepath.Join(root, string(cat))
		entries, err := os.ReadDir(dir)
		if err != nil {
			fmt.Fprintf(warn, "  [skip] %s: %v\n", dir, err)
			continue
		}
		found++
		ds[cat] = make(map[string]*model.Table)
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
				continue
			}
			t, err := LoadFile(filepath.Join(dir, e.Name()), cat)
			if err != nil {
				fmt.Fprintf(warn, "  [skip] %s: %v\n", e.Name(), err)
				continue
			}
			ds.Add(t)
		}
	}
	if found == 0 {
		return nil, fmt.Errorf("%s: %w", root, ErrNoCategory)
	}
	return ds, nil
}

// LoadFile reads one CSV file into a cleaned table.
func LoadFile(path string, cat model.Category) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, filepath.Base(path), cat)
}

// Parse reads CSV data from r and applies the load-time transforms: drop
// placeholder columns, drop exact duplicate rows, derive CareerLength from
// Span, derive Teams from the player annotation and clean the player name.
func Parse(r io.Reader, file string, cat model.Category) (*model.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	header := records[0]
	var keep []int
	var cols []string
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" || strings.HasPrefix(h, "Unnamed") {
			continue
		}
		keep = append(keep, i)
		cols = append(cols, h)
	}

	t := &model.Table{Category: cat, File: file, Columns: cols}
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records[1:] {
		row := make(model.Row, len(cols)+2)
		var key strings.Builder
		for j, i := range keep {
			v := ""
			if i < len(rec) {
				v = strings.TrimSpace(rec[i])
			}
			row[cols[j]] = v
			key.WriteString(v)
			key.WriteByte(0)
		}
		if _, dup := seen[key.String()]; dup {
			continue
		}
		seen[key.String()] = struct{}{}
		t.Rows = append(t.Rows, row)
	}

	if t.HasColumn(model.ColSpan) {
		t.Columns = append(t.Columns, model.ColCareerLength)
		for _, row := range t.Rows {
			if n, ok := CareerLength(row[model.ColSpan]); ok {
				row[model.ColCareerLength] = strconv.Itoa(n)
			}
		}
	}
	if t.HasColumn(model.ColPlayer) {
		t.Columns = append(t.Columns, model.ColTeams)
		for _, row := range t.Rows {
			raw := row[model.ColPlayer]
			row[model.ColTeams] = Teams(raw)
			row[model.ColPlayer] = CleanName(raw)
		}
	}
	return t, nil
}

// CareerLength returns end-start for a "YYYY-YYYY" span.
func CareerLength(span string) (int, bool) {
	parts := strings.Split(span, "-")
	if len(parts) != 2 {
		return 0, false
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return end - start, true
}

// Teams turns the parenthetical annotation of a raw player name into a
// comma-joined list of country names. National sides come first (the last
// listed code first), then unmapped codes title-cased as-is, then XI
// composite sides.
func Teams(raw string) string {
	m := annotationRe.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	var national, composite, other []string
	for _, code := range strings.Split(m[1], "/") {
		code = strings.TrimSpace(code)
		name, ok := teamNames[strings.ToUpper(code)]
		switch {
		case !ok:
			other = append(other, model.TitleCase(code))
		case strings.HasSuffix(name, " XI"):
			composite = append([]string{name}, composite...)
		default:
			national = append([]string{name}, national...)
		}
	}
	teams := append(append(national, other...), composite...)
	return strings.Join(teams, ", ")
}

// CleanName strips the parenthetical team annotation from a raw player name.
func CleanName(raw string) string {
	return strings.TrimSpace(cleanRe.ReplaceAllString(raw, ""))
}
