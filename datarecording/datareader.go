package datarecording

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
)

// ErrNoTable is returned when a queried table is not in the database.
var ErrNoTable = errors.New("no such table")

// QueryParams narrows the rows returned by Query.
type QueryParams struct {
	// Where is a condition without the WHERE keyword, with ? placeholders
	// filled from Args.
	Where string
	Args  []any

	// OrderBy is a column list without the ORDER BY keywords.
	OrderBy string

	// Limit of 0 returns every row.
	Limit  int
	Offset int
}

// A Reader reads back the tables written by a DataRecorder.
type Reader struct {
	db *sql.DB
}

// OpenReader opens an existing database read-only.
func OpenReader(path string) (*Reader, error) {
	_, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &Reader{db: db}, nil
}

// NewReaderWithDB creates a Reader over an open database.
func NewReaderWithDB(db *sql.DB) *Reader {
	return &Reader{db: db}
}

// Tables lists the tables of the database in creation order.
func (r *Reader) Tables(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	return names, rows.Err()
}

// HasTable tells if the database holds the table.
func (r *Reader) HasTable(ctx context.Context, table string) (bool, error) {
	var count int

	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		table,
	).Scan(&count)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Close closes the database.
func (r *Reader) Close() error {
	return r.db.Close()
}

// Query returns the rows of a table that match params, together with the
// number of matching rows ignoring Limit and Offset. Columns are matched to
// the fields of T by name. Columns without a field are dropped.
func Query[T any](
	ctx context.Context,
	r *Reader,
	table string,
	params QueryParams,
) ([]T, int, error) {
	structType := reflect.TypeOf((*T)(nil)).Elem()
	if structType.Kind() != reflect.Struct {
		return nil, 0, fmt.Errorf("cannot scan rows into %s", structType)
	}

	found, err := r.HasTable(ctx, table)
	if err != nil {
		return nil, 0, err
	}

	if !found {
		return nil, 0, fmt.Errorf("%w: %s", ErrNoTable, table)
	}

	where := ""
	if params.Where != "" {
		where = " WHERE " + params.Where
	}

	var total int

	err = r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM "+table+where, params.Args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", table, err)
	}

	rows, err := r.db.QueryContext(ctx,
		selectQuery(table, where, params), params.Args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	results, err := scanRows[T](rows, structType)
	if err != nil {
		return nil, 0, fmt.Errorf("query %s: %w", table, err)
	}

	return results, total, nil
}

func selectQuery(table, where string, params QueryParams) string {
	var b strings.Builder

	b.WriteString("SELECT * FROM ")
	b.WriteString(table)
	b.WriteString(where)

	if params.OrderBy != "" {
		b.WriteString(" ORDER BY " + params.OrderBy)
	}

	if params.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d OFFSET %d", params.Limit, params.Offset)
	}

	return b.String()
}

func scanRows[T any](rows *sql.Rows, structType reflect.Type) ([]T, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []T

	for rows.Next() {
		var entry T

		v := reflect.ValueOf(&entry).Elem()
		targets := make([]any, len(columns))

		for i, col := range columns {
			if _, ok := structType.FieldByName(col); ok {
				targets[i] = v.FieldByName(col).Addr().Interface()
				continue
			}

			targets[i] = new(any)
		}

		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}

		results = append(results, entry)
	}

	return results, rows.Err()
}
