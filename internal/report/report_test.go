package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AduSharma/CrickStatX/internal/model"
)

func TestPrintRecordsUnionsColumns(t *testing.T) {
	var a, b model.Record
	a.Set("Player", "SR Tendulkar")
	a.Set("Runs", "18426")
	b.Set("Player", "MS Dhoni")
	b.Set("St", "123")

	var buf bytes.Buffer
	PrintRecords(&buf, []model.Record{a, b})
	out := buf.String()
	upper := strings.ToUpper(out)
	for _, want := range []string{"PLAYER", "RUNS", "SR TENDULKAR", "123", "—"} {
		if !strings.Contains(upper, want) {
			t.Errorf("want %q in output:\n%s", want, out)
		}
	}
}

func TestPrintRecordsEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintRecords(&buf, nil)
	if !strings.Contains(buf.String(), "(no rows)") {
		t.Errorf("want (no rows), got %q", buf.String())
	}
}

func TestSortedStats(t *testing.T) {
	cells := map[string]model.StatCell{"Ave": nil, "Mat": nil, "Runs": nil, "6s": nil}
	if got := strings.Join(sortedStats(cells), ","); got != "Mat,Runs,Ave,6s" {
		t.Errorf("want Mat,Runs,Ave,6s, got %s", got)
	}
}

func TestPrintComparisonSkipsEmptyFormats(t *testing.T) {
	c := model.Comparison{
		Players: []string{"A", "B"},
		Comparison: map[model.Category]map[model.Format]map[string]model.StatCell{
			model.Batting: {model.ODI: {"Runs": {"A": "10", "B": "20"}}},
		},
		WinnerSummary: model.WinnerSummary{Winner: "B", Summary: "B wins."},
	}
	var buf bytes.Buffer
	PrintComparison(&buf, c)
	out := buf.String()
	if !strings.Contains(out, "Batting / ODI") || strings.Contains(out, "Test") {
		t.Errorf("unexpected sections:\n%s", out)
	}
	if !strings.Contains(out, "Winner: B") {
		t.Errorf("want winner line:\n%s", out)
	}
}

func TestPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	PrintMessage(&buf, model.ErrorPayload{Error: "bad"})
	if buf.String() != "error: bad\n" {
		t.Errorf("want %q, got %q", "error: bad\n", buf.String())
	}
}
