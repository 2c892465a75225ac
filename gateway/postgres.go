package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgresClient implements Client against a PostgreSQL database, with
// file uploads delegated to a FileStorage.
type PostgresClient struct {
	db      *sql.DB
	storage FileStorage
}

func NewPostgresClient(db *sql.DB, storage FileStorage) *PostgresClient {
	return &PostgresClient{db: db, storage: storage}
}

func (c *PostgresClient) Query(ctx context.Context, table string, opts QueryOptions) ([]Row, error) {
	schema, ok := Tables[table]
	if !ok {
		return nil, &GatewayError{Op: "query", Table: table, Err: errUnknownTable}
	}

	query, args, err := buildSelect(table, schema, opts)
	if err != nil {
		return nil, &GatewayError{Op: "query", Table: table, Err: err}
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &GatewayError{Op: "query", Table: table, Err: err}
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		targets := scanTargets(schema)
		if err := rows.Scan(targets...); err != nil {
			return nil, &GatewayError{Op: "query", Table: table, Err: err}
		}
		row, err := rowFromTargets(schema, targets)
		if err != nil {
			return nil, &GatewayError{Op: "query", Table: table, Err: err}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &GatewayError{Op: "query", Table: table, Err: err}
	}

	return result, nil
}

func (c *PostgresClient) Insert(ctx context.Context, table string, row Row) (Row, error) {
	schema, ok := Tables[table]
	if !ok {
		return nil, &GatewayError{Op: "insert", Table: table, Err: errUnknownTable}
	}
	if err := checkWritable(schema, row); err != nil {
		return nil, err
	}

	cols := sortedKeys(row)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = bindValue(schema.Columns[col], row[col])
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(schema.ColumnOrder, ", "),
	)

	targets := scanTargets(schema)
	if err := c.db.QueryRowContext(ctx, query, args...).Scan(targets...); err != nil {
		return nil, &GatewayError{Op: "insert", Table: table, Err: err}
	}
	result, err := rowFromTargets(schema, targets)
	if err != nil {
		return nil, &GatewayError{Op: "insert", Table: table, Err: err}
	}
	return result, nil
}

func (c *PostgresClient) Update(ctx context.Context, table string, id uuid.UUID, patch Row) (Row, error) {
	schema, ok := Tables[table]
	if !ok {
		return nil, &GatewayError{Op: "update", Table: table, Err: errUnknownTable}
	}
	if err := checkWritable(schema, patch); err != nil {
		return nil, err
	}

	cols := sortedKeys(patch)
	sets := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, bindValue(schema.Columns[col], patch[col]))
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table,
		strings.Join(sets, ", "),
		len(args),
		strings.Join(schema.ColumnOrder, ", "),
	)

	targets := scanTargets(schema)
	if err := c.db.QueryRowContext(ctx, query, args...).Scan(targets...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &GatewayError{Op: "update", Table: table, Err: &NotFoundError{Table: table, ID: id}}
		}
		return nil, &GatewayError{Op: "update", Table: table, Err: err}
	}
	result, err := rowFromTargets(schema, targets)
	if err != nil {
		return nil, &GatewayError{Op: "update", Table: table, Err: err}
	}
	return result, nil
}

func (c *PostgresClient) Delete(ctx context.Context, table string, id uuid.UUID) error {
	if _, ok := Tables[table]; !ok {
		return &GatewayError{Op: "delete", Table: table, Err: errUnknownTable}
	}

	res, err := c.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return &GatewayError{Op: "delete", Table: table, Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &GatewayError{Op: "delete", Table: table, Err: err}
	}
	if affected == 0 {
		return &GatewayError{Op: "delete", Table: table, Err: &NotFoundError{Table: table, ID: id}}
	}
	return nil
}

func (c *PostgresClient) UploadFile(ctx context.Context, bucket, path string, data []byte) (string, error) {
	url, err := c.storage.Upload(ctx, bucket, path, data)
	if err != nil {
		return "", &GatewayError{Op: "upload", Table: bucket, Err: err}
	}
	return url, nil
}

var errUnknownTable = errors.New("unknown table")

// checkWritable rejects unknown and server-assigned columns before any
// SQL is generated.
func checkWritable(schema TableSchema, row Row) error {
	if len(row) == 0 {
		return &ValidationError{Field: "fields", Message: "no fields to write"}
	}
	for col := range row {
		if serverAssigned[col] {
			return &ValidationError{Field: col, Message: "field is server-assigned"}
		}
		if _, ok := schema.Columns[col]; !ok {
			return &ValidationError{Field: col, Message: "unknown field"}
		}
	}
	return nil
}

func sortedKeys(row Row) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func buildSelect(table string, schema TableSchema, opts QueryOptions) (string, []any, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", strings.Join(schema.ColumnOrder, ", "), table)

	var args []any
	if len(opts.Filter) > 0 {
		conds := make([]string, 0, len(opts.Filter))
		for _, col := range sortedKeys(opts.Filter) {
			if _, ok := schema.Columns[col]; !ok {
				return "", nil, fmt.Errorf("unknown filter column %q", col)
			}
			args = append(args, bindValue(schema.Columns[col], opts.Filter[col]))
			conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
		}
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	if opts.OrderBy != "" {
		if _, ok := schema.Columns[opts.OrderBy]; !ok {
			return "", nil, fmt.Errorf("unknown order column %q", opts.OrderBy)
		}
		sb.WriteString(" ORDER BY " + opts.OrderBy)
		if opts.Descending {
			sb.WriteString(" DESC")
		}
	}

	return sb.String(), args, nil
}

func bindValue(kind ColumnKind, v any) any {
	if v == nil {
		return nil
	}
	if kind == KindTextArray {
		if s, ok := v.([]string); ok {
			return pq.Array(s)
		}
	}
	return v
}

func scanTargets(schema TableSchema) []any {
	targets := make([]any, len(schema.ColumnOrder))
	for i, col := range schema.ColumnOrder {
		switch schema.Columns[col] {
		case KindNumeric:
			targets[i] = new(sql.NullFloat64)
		case KindInt:
			targets[i] = new(sql.NullInt64)
		case KindBool:
			targets[i] = new(sql.NullBool)
		case KindTimestamp:
			targets[i] = new(sql.NullTime)
		case KindTextArray:
			targets[i] = new(pq.StringArray)
		default:
			// text and uuid columns both scan as strings
			targets[i] = new(sql.NullString)
		}
	}
	return targets
}

func rowFromTargets(schema TableSchema, targets []any) (Row, error) {
	row := make(Row, len(schema.ColumnOrder))
	for i, col := range schema.ColumnOrder {
		switch schema.Columns[col] {
		case KindNumeric:
			v := targets[i].(*sql.NullFloat64)
			if v.Valid {
				row[col] = v.Float64
			} else {
				row[col] = nil
			}
		case KindInt:
			v := targets[i].(*sql.NullInt64)
			if v.Valid {
				row[col] = v.Int64
			} else {
				row[col] = nil
			}
		case KindBool:
			v := targets[i].(*sql.NullBool)
			if v.Valid {
				row[col] = v.Bool
			} else {
				row[col] = nil
			}
		case KindTimestamp:
			v := targets[i].(*sql.NullTime)
			if v.Valid {
				row[col] = v.Time
			} else {
				row[col] = nil
			}
		case KindTextArray:
			v := targets[i].(*pq.StringArray)
			row[col] = []string(*v)
		case KindUUID:
			v := targets[i].(*sql.NullString)
			if !v.Valid {
				row[col] = nil
				continue
			}
			id, err := uuid.Parse(v.String)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col, err)
			}
			row[col] = id
		default:
			v := targets[i].(*sql.NullString)
			if v.Valid {
				row[col] = v.String
			} else {
				row[col] = nil
			}
		}
	}
	return row, nil
}
