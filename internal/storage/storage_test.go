package storage

import (
	"testing"

	"github.com/AduSharma/CrickStatX/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleDataset() model.Dataset {
	ds := model.Dataset{}
	ds.Add(&model.Table{
		Category: model.Batting,
		File:     "ODI data.csv",
		Columns:  []string{"Player", "Runs", "Ave", "Teams"},
		Rows: []model.Row{
			{"Player": "SR Tendulkar", "Runs": "18426", "Ave": "44.83", "Teams": "India"},
			{"Player": "RT Ponting", "Runs": "13704", "Ave": "42.03", "Teams": "Australia, ICC World XI"},
			{"Player": "Unknown", "Runs": "-", "Teams": ""},
		},
	})
	ds.Add(&model.Table{
		Category: model.Bowling,
		File:     "t20.csv",
		Columns:  []string{"Player", "Wkts"},
		Rows:     []model.Row{{"Player": "Rashid Khan", "Wkts": "130"}},
	})
	ds.Add(&model.Table{Category: model.Fielding, File: "empty.csv"})
	return ds
}

func TestTableName(t *testing.T) {
	cases := []struct {
		cat  model.Category
		file string
		want string
	}{
		{model.Batting, "ODI data.csv", "batting_odi_data"},
		{model.Bowling, "t20.csv", "bowling_t20"},
		{model.Fielding, "Test--Fielding (2024).CSV", "fielding_test_fielding_2024"},
	}
	for _, c := range cases {
		if got := TableName(c.cat, c.file); got != c.want {
			t.Errorf("TableName(%s, %q): want %q, got %q", c.cat, c.file, c.want, got)
		}
	}
}

func TestLoadDatasetAndListTables(t *testing.T) {
	db := openMemDB(t)
	if err := db.LoadDataset(sampleDataset()); err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	tables, err := db.ListTables()
	if err != nil {
		t.Fatalf("ListTables: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables (column-less table skipped), got %d", len(tables))
	}
	if tables[0].Name != "batting_odi_data" || tables[0].Rows != 3 || tables[0].Format != "ODI" {
		t.Errorf("unexpected first table: %+v", tables[0])
	}
	if tables[1].Name != "bowling_t20" || tables[1].Format != "T20" {
		t.Errorf("unexpected second table: %+v", tables[1])
	}
}

func TestQueryRawSortsNumerically(t *testing.T) {
	db := openMemDB(t)
	if err := db.LoadDataset(sampleDataset()); err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	cols, rows, err := db.QueryRaw(`SELECT Player, Runs FROM batting_odi_data WHERE typeof(Runs) = 'integer' ORDER BY Runs DESC`)
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if len(cols) != 2 || cols[0] != "Player" || cols[1] != "Runs" {
		t.Errorf("unexpected columns: %v", cols)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 numeric rows, got %d", len(rows))
	}
	if rows[0][0] != "SR Tendulkar" || rows[0][1] != "18426" {
		t.Errorf("want SR Tendulkar 18426 first, got %v", rows[0])
	}
}

func TestQueryRawNullAndText(t *testing.T) {
	db := openMemDB(t)
	if err := db.LoadDataset(sampleDataset()); err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	_, rows, err := db.QueryRaw(`SELECT Runs, Ave, Teams FROM batting_odi_data WHERE Player = 'Unknown'`)
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0][0] != "-" {
		t.Errorf("want text cell \"-\", got %q", rows[0][0])
	}
	if rows[0][1] != "NULL" || rows[0][2] != "NULL" {
		t.Errorf("want NULL for missing cells, got %v", rows[0])
	}
}

func TestQueryRawError(t *testing.T) {
	db := openMemDB(t)
	if _, _, err := db.QueryRaw("SELECT * FROM no_such_table"); err == nil {
		t.Error("expected error for unknown table")
	}
}

func TestLoadDatasetTwiceReplaces(t *testing.T) {
	db := openMemDB(t)
	ds := sampleDataset()
	for i := 0; i < 2; i++ {
		if err := db.LoadDataset(ds); err != nil {
			t.Fatalf("LoadDataset #%d: %v", i+1, err)
		}
	}
	_, rows, err := db.QueryRaw(`SELECT COUNT(*) FROM batting_odi_data`)
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if rows[0][0] != "3" {
		t.Errorf("want 3 rows after reload, got %s", rows[0][0])
	}
}
