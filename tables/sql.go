package tables

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"go-ml.dev/pkg/zorros"
)

/*
ReadSQL loads the result of a query on an sqlite database into a table.
Every selected column must scan as float64.
*/
func ReadSQL(dsn, query string) (*Table, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to open database: %v", err)
	}
	defer db.Close()
	rows, err := db.Query(query)
	if err != nil {
		return nil, zorros.Wrapf(err, "query failed: %v", err)
	}
	defer rows.Close()
	names, err := rows.Columns()
	if err != nil {
		return nil, zorros.Trace(err)
	}
	columns := make([]*Column, len(names))
	for j := range columns {
		columns[j] = &Column{}
	}
	vals := make([]float64, len(names))
	ptrs := make([]interface{}, len(names))
	for j := range vals {
		ptrs[j] = &vals[j]
	}
	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return nil, zorros.Wrapf(err, "failed to scan row: %v", err)
		}
		for j := range columns {
			columns[j].data = append(columns[j].data, vals[j])
		}
	}
	if err = rows.Err(); err != nil {
		return nil, zorros.Trace(err)
	}
	t := New(names, columns)
	log.Debug().Str("dsn", dsn).Int("rows", t.Len()).Int("columns", t.Width()).Msg("table loaded from sql")
	return t, nil
}
