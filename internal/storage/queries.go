package storage

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/AduSharma/CrickStatX/internal/model"
)

// TableInfo describes one mirrored table.
type TableInfo struct {
	Name     string
	Category string
	File     string
	Format   string
	Rows     int
}

var nonIdent = regexp.MustCompile(`[^a-z0-9]+`)

// TableName returns the SQL table name for a dataset table,
// e.g. Batting/"ODI data.csv" -> batting_odi_data.
func TableName(c model.Category, file string) string {
	base := strings.TrimSuffix(strings.ToLower(file), ".csv")
	base = strings.Trim(nonIdent.ReplaceAllString(base, "_"), "_")
	return strings.ToLower(string(c)) + "_" + base
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// LoadDataset creates one table per dataset table and copies every row in a
// single transaction. Numeric cells are stored as numbers so SQL can sort them.
func (db *DB) LoadDataset(ds model.Dataset) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, t := range ds.Tables() {
		if len(t.Columns) == 0 {
			continue
		}
		name := TableName(t.Category, t.File)
		if err := loadTable(tx, name, t); err != nil {
			return fmt.Errorf("load %s/%s: %w", t.Category, t.File, err)
		}
		format, _ := model.FormatOf(t.File)
		_, err := tx.Exec(`
			INSERT OR REPLACE INTO stat_tables(name, category, file, format, row_count)
			VALUES (?, ?, ?, ?, ?)`,
			name, string(t.Category), t.File, string(format), len(t.Rows))
		if err != nil {
			return fmt.Errorf("insert stat_tables for %s: %w", name, err)
		}
	}
	return tx.Commit()
}

func loadTable(tx *sql.Tx, name string, t *model.Table) error {
	if _, err := tx.Exec("DROP TABLE IF EXISTS " + quoteIdent(name)); err != nil {
		return err
	}
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quoteIdent(c)
	}
	if _, err := tx.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), strings.Join(cols, ", "))); err != nil {
		return err
	}

	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(name), strings.Join(cols, ", "), placeholders(len(cols))))
	if err != nil {
		return err
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns))
	for _, row := range t.Rows {
		for i, c := range t.Columns {
			args[i] = cellValue(row[c])
		}
		if _, err := stmt.Exec(args...); err != nil {
			return err
		}
	}
	return nil
}

// cellValue converts raw cell text to the value stored in SQLite: NULL for
// missing, integer or real when it parses, text otherwise.
func cellValue(v string) any {
	if v == "" {
		return nil
	}
	if model.IsDigits(v) {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	if model.IsDigits(strings.Replace(v, ".", "", 1)) {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return v
}

// ListTables returns the mirrored tables ordered by category then file.
func (db *DB) ListTables() ([]TableInfo, error) {
	rows, err := db.conn.Query(`
		SELECT name, category, file, format, row_count
		FROM stat_tables ORDER BY category, file`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TableInfo
	for rows.Next() {
		var t TableInfo
		if err := rows.Scan(&t.Name, &t.Category, &t.File, &t.Format, &t.Rows); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// QueryRaw runs an arbitrary query and returns column names and stringified rows.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	var out [][]string
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		rec := make([]string, len(cols))
		for i, v := range vals {
			rec[i] = formatValue(v)
		}
		out = append(out, rec)
	}
	return cols, out, rows.Err()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}
