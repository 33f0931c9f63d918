package ranker

import (
	"errors"
	"strings"
	"testing"

	"github.com/AduSharma/CrickStatX/internal/model"
)

func fixture() model.Dataset {
	ds := model.Dataset{}
	ds.Add(&model.Table{
		Category: model.Batting,
		File:     "ODI data.csv",
		Columns:  []string{"Player", "Mat", "Inns", "Runs", "HS", "Ave", "SR", "100", "50", "Teams"},
		Rows: []model.Row{
			{"Player": "SR Tendulkar", "Mat": "463", "Inns": "452", "Runs": "18426", "HS": "200*", "Ave": "44.83", "SR": "86.23", "100": "49", "50": "96", "Teams": "India"},
			{"Player": "Rookie", "Mat": "1", "Inns": "1", "Runs": "0", "HS": "0", "Ave": "0.0", "SR": "0.0", "100": "0", "50": "0", "Teams": "India"},
			{"Player": "Bad Row", "Mat": "3", "Runs": "-", "Teams": "India"},
			{"Player": "KC Sangakkara", "Mat": "404", "Inns": "380", "Runs": "14234", "HS": "169", "Ave": "41.98", "SR": "78.86", "100": "25", "50": "93", "Teams": "Sri Lanka, Asia XI, ICC World XI"},
			{"Player": "JH Kallis", "Mat": "328", "Inns": "314", "Runs": "11579", "HS": "139", "Ave": "44.36", "SR": "72.89", "100": "17", "50": "86", "Teams": "South Africa, ICC World XI"},
		},
	})
	ds.Add(&model.Table{
		Category: model.Bowling,
		File:     "ODI data.csv",
		Columns:  []string{"Player", "Mat", "Inns", "Wkts", "BBI", "Ave", "Econ", "SR", "4", "5", "10", "Teams"},
		Rows: []model.Row{
			{"Player": "JH Kallis", "Mat": "328", "Inns": "283", "Wkts": "273", "BBI": "5/30", "Ave": "31.79", "Econ": "4.84", "SR": "39.3", "5": "2", "10": "", "Teams": "South Africa, ICC World XI"},
			{"Player": "Part Timer", "Mat": "10", "Inns": "5", "Wkts": "4", "Econ": "0.0", "Teams": "India"},
			{"Player": "M Muralitharan", "Mat": "350", "Inns": "341", "Wkts": "534", "BBI": "7/30", "Ave": "23.08", "Econ": "3.93", "SR": "35.2", "5": "10", "Teams": "Sri Lanka, Asia XI, ICC World XI"},
		},
	})
	ds.Add(&model.Table{
		Category: model.Fielding,
		File:     "ODI data.csv",
		Columns:  []string{"Player", "Mat", "Inns", "Dis", "Ct", "St", "D/I", "Teams"},
		Rows: []model.Row{
			{"Player": "A Fielder", "Mat": "", "Dis": "50", "Ct": "50", "St": "0", "Teams": ""},
			{"Player": "KC Sangakkara", "Mat": "404", "Dis": "501", "Ct": "402", "St": "99", "D/I": "1.32", "Teams": ""},
			{"Player": "MS Dhoni", "Mat": "350", "Dis": "444", "Ct": "321", "St": "123", "D/I": "1.43", "Teams": "India, Asia XI"},
		},
	})
	return ds
}

func names(rows []model.Record) string {
	var out []string
	for _, r := range rows {
		p, _ := r.Get(model.ColPlayer)
		out = append(out, p)
	}
	return strings.Join(out, ",")
}

func TestTopBatsmen(t *testing.T) {
	rows, err := Top(fixture(), Batsman, model.ODI, 0)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if got := names(rows); got != "SR Tendulkar,KC Sangakkara,JH Kallis,Rookie" {
		t.Errorf("unexpected order: %s", got)
	}
	want := "Player,Country,Mat,Inns,Runs,Ave,SR,50,100,HS"
	if got := strings.Join(rows[0].Keys(), ","); got != want {
		t.Errorf("want keys %s, got %s", want, got)
	}
	if c, _ := rows[1].Get("Country"); c != "Sri Lanka" {
		t.Errorf("want Country Sri Lanka, got %q", c)
	}
	if got := strings.Join(rows[3].Keys(), ","); got != "Player,Country,Mat,Inns" {
		t.Errorf("want zero fields stripped for Rookie, got %s", got)
	}
}

func TestTopLimit(t *testing.T) {
	rows, err := Top(fixture(), Batsman, model.ODI, 2)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("want 2 rows, got %d", len(rows))
	}
}

func TestTopBowlersStripZeroEconomy(t *testing.T) {
	rows, err := Top(fixture(), Bowler, model.ODI, 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if got := names(rows); got != "M Muralitharan,JH Kallis,Part Timer" {
		t.Errorf("unexpected order: %s", got)
	}
	if _, ok := rows[2].Get("Econ"); ok {
		t.Error("want Econ 0.0 stripped")
	}
	if v, _ := rows[0].Get("BBI"); v != "7/30" {
		t.Errorf("want BBI 7/30, got %q", v)
	}
}

func TestTopStripsPaddedZeroes(t *testing.T) {
	ds := model.Dataset{}
	ds.Add(&model.Table{
		Category: model.Bowling,
		File:     "T20 data.csv",
		Columns:  []string{"Player", "Mat", "Wkts", "Ave", "Econ", "SR", "Teams"},
		Rows: []model.Row{
			{"Player": "Part Timer", "Mat": "3", "Wkts": "2", "Ave": "00", "Econ": "0.00", "SR": "18.0", "Teams": "India"},
		},
	})
	rows, err := Top(ds, Bowler, model.T20, 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(rows))
	}
	for _, k := range []string{"Ave", "Econ"} {
		if v, ok := rows[0].Get(k); ok {
			t.Errorf("want %s stripped, got %q", k, v)
		}
	}
	if v, _ := rows[0].Get("SR"); v != "18.0" {
		t.Errorf("want non-zero SR kept, got %q", v)
	}
}

func TestTopKeepers(t *testing.T) {
	rows, err := Top(fixture(), Keeper, model.ODI, 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if got := names(rows); got != "MS Dhoni,KC Sangakkara,A Fielder" {
		t.Fatalf("unexpected order: %s", got)
	}
	if _, ok := rows[0].Get("Runs"); ok {
		t.Error("want no batting figures for a keeper without a batting row")
	}
	sanga := rows[1]
	if v, _ := sanga.Get("Runs"); v != "14234" {
		t.Errorf("want joined Runs 14234, got %q", v)
	}
	if v, _ := sanga.Get("D/I"); v != "1.32" {
		t.Errorf("want fielding D/I 1.32, got %q", v)
	}
	if v, _ := sanga.Get("Country"); v != "Sri Lanka" {
		t.Errorf("want Country from the batting row, got %q", v)
	}
	if got := strings.Join(rows[2].Keys(), ","); got != "Player,Ct" {
		t.Errorf("want Player,Ct for A Fielder, got %s", got)
	}
}

func TestTopAllRounders(t *testing.T) {
	rows, err := Top(fixture(), AllRounder, model.ODI, 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if got := names(rows); got != "JH Kallis" {
		t.Fatalf("want only JH Kallis, got %s", got)
	}
	want := "Player,Country,Runs,Ave,SR,50,100,Wkts,Econ,5,HS"
	if got := strings.Join(rows[0].Keys(), ","); got != want {
		t.Errorf("want keys %s, got %s", want, got)
	}
}

func TestTopMissingTable(t *testing.T) {
	if _, err := Top(fixture(), Batsman, model.T20, 10); !errors.Is(err, ErrMissingTable) {
		t.Errorf("want ErrMissingTable, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole(" WK "); err != nil || r != Keeper {
		t.Errorf("want wk, got %q (%v)", r, err)
	}
	if _, err := ParseRole("spinner"); !errors.Is(err, ErrRole) {
		t.Errorf("want ErrRole, got %v", err)
	}
}

func TestCountry(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"India":             "India",
		"Asia XI, India":    "India",
		"ICC World XI":      "ICC World XI",
		"Pakistan, Asia XI": "Pakistan",
	}
	for in, want := range cases {
		if got := Country(in); got != want {
			t.Errorf("Country(%q): want %q, got %q", in, want, got)
		}
	}
}
