package filter

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/AduSharma/CrickStatX/internal/model"
)

func fixture() model.Dataset {
	ds := model.Dataset{}
	ds.Add(&model.Table{
		Category: model.Batting,
		File:     "ODI data.csv",
		Columns:  []string{"Player", "Span", "Runs", "Teams"},
		Rows: []model.Row{
			{"Player": "SR Tendulkar", "Span": "1989-2012", "Runs": "18426", "Teams": "India"},
			{"Player": "R Dravid", "Span": "1996-2011", "Runs": "10889", "Teams": "India, Asia XI, ICC World XI"},
			{"Player": "V Kohli", "Span": "2008-2023", "Runs": "13906", "Teams": "India"},
			{"Player": "RT Ponting", "Span": "1995-2012", "Runs": "13704", "Teams": "Australia, ICC World XI"},
			{"Player": "Old Timer", "Span": "1970-1985", "Runs": "500", "Teams": "India"},
			{"Player": "Odd Span", "Span": "unknown", "Runs": "-", "Teams": "India"},
		},
	})
	ds.Add(&model.Table{
		Category: model.Bowling,
		File:     "Test data.csv",
		Columns:  []string{"Player", "Span", "Wkts", "Teams"},
		Rows: []model.Row{
			{"Player": "A Kumble", "Span": "1990-2008", "Wkts": "619", "Teams": "India"},
			{"Player": "SR Tendulkar", "Span": "1989-2013", "Wkts": "46", "Teams": "India"},
		},
	})
	return ds
}

func names(l model.PlayerList) string {
	var out []string
	for _, r := range l.Players {
		p, _ := r.Get(model.ColPlayer)
		out = append(out, p)
	}
	return strings.Join(out, ",")
}

func TestPlayersByTeamAndEra(t *testing.T) {
	out, err := Players(fixture(), Query{Team: "INDIA", Era: "1990s"})
	if err != nil {
		t.Fatalf("Players: %v", err)
	}
	if out.Team != "India" || out.Era != "1990s" {
		t.Errorf("unexpected header: %+v", out)
	}
	if got := names(out); got != "A Kumble,Odd Span,R Dravid,SR Tendulkar" {
		t.Errorf("unexpected players: %s", got)
	}
}

func TestPlayersSortByRuns(t *testing.T) {
	out, err := Players(fixture(), Query{Team: "india", Era: "1990s", SortBy: "runs"})
	if err != nil {
		t.Fatalf("Players: %v", err)
	}
	if got := names(out); got != "SR Tendulkar,R Dravid" {
		t.Errorf("want players without runs dropped, got %s", got)
	}
	if v, _ := out.Players[0].Get("Runs"); v != "18426" {
		t.Errorf("want Runs 18426, got %q", v)
	}
}

func TestPlayersSortByWickets(t *testing.T) {
	out, err := Players(fixture(), Query{Team: "india", SortBy: "WKTS"})
	if err != nil {
		t.Fatalf("Players: %v", err)
	}
	if got := names(out); got != "A Kumble,SR Tendulkar" {
		t.Errorf("unexpected order: %s", got)
	}
	if v, _ := out.Players[0].Get("Wickets"); v != "619" {
		t.Errorf("want Wickets 619, got %q", v)
	}
}

func TestPlayersFormatFilter(t *testing.T) {
	out, err := Players(fixture(), Query{Team: "india", Format: "ODI"})
	if err != nil {
		t.Fatalf("Players: %v", err)
	}
	if out.Format != "odi" {
		t.Errorf("want format odi, got %q", out.Format)
	}
	if strings.Contains(names(out), "A Kumble") {
		t.Error("want Test-only player excluded by format")
	}
}

func TestPlayersInvalidSort(t *testing.T) {
	if _, err := Players(fixture(), Query{Team: "india", SortBy: "sixes"}); !errors.Is(err, ErrSortBy) {
		t.Errorf("want ErrSortBy, got %v", err)
	}
}

func TestInEra(t *testing.T) {
	cases := []struct {
		span, era string
		want      bool
	}{
		{"1989-2012", "1990s", true},
		{"1980-1990", "1990s", true},
		{"2000-2005", "1990s", false},
		{"1970-1989", "1990s", false},
		{"unknown", "1990s", true},
		{"1990-1999", "", true},
		{"19x0-2000", "1990s", true},
	}
	for _, c := range cases {
		if got := InEra(c.span, c.era); got != c.want {
			t.Errorf("InEra(%q, %q): want %v, got %v", c.span, c.era, c.want, got)
		}
	}
}

func TestCapitalizeMultiByteTeam(t *testing.T) {
	cases := map[string]string{"india": "India", "éire": "Éire", "": ""}
	for in, want := range cases {
		got := capitalize(in)
		if got != want {
			t.Errorf("capitalize(%q): want %q, got %q", in, want, got)
		}
		if !utf8.ValidString(got) {
			t.Errorf("capitalize(%q): invalid UTF-8 %q", in, got)
		}
	}
}
