package dataset

import (
	"context"
	"database/sql"

	"github.com/YuminosukeSato/id3/pkg/errors"
)

// ReadSQL runs query on db and returns one example per result row. Every
// selected column becomes an attribute named after the column; NULL values
// become the empty string.
func ReadSQL(ctx context.Context, db *sql.DB, query string, args ...interface{}) (Dataset, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying examples")
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "reading result columns")
	}
	values := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	var d Dataset
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrapf(err, "scanning row %d", len(d))
		}
		e := make(Example, len(columns))
		for i, c := range columns {
			e[c] = values[i].String
		}
		d = append(d, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating rows")
	}
	return d, nil
}
