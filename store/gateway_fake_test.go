package store

import (
	"context"
	"sort"
	"time"

	"mobileshop-server/gateway"

	"github.com/google/uuid"
)

// fakeGateway is an in-memory gateway.Client. Rows live in per-table
// slices so insertion order is stable; created_at is assigned from a
// counter so ordering tests are deterministic.
type fakeGateway struct {
	tables map[string][]gateway.Row
	clock  time.Time

	queryErr  error
	insertErr error
	updateErr error
	deleteErr error

	uploadURL string
	uploadErr error
	uploads   []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		tables: make(map[string][]gateway.Row),
		clock:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeGateway) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func copyRow(r gateway.Row) gateway.Row {
	out := make(gateway.Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func rowMatches(r gateway.Row, filter map[string]any) bool {
	for k, v := range filter {
		if r[k] != v {
			return false
		}
	}
	return true
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case time.Time:
		return av.Before(b.(time.Time))
	case string:
		return av < b.(string)
	case float64:
		return av < b.(float64)
	case int64:
		return av < b.(int64)
	}
	return false
}

func (f *fakeGateway) Query(ctx context.Context, table string, opts gateway.QueryOptions) ([]gateway.Row, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var out []gateway.Row
	for _, r := range f.tables[table] {
		if rowMatches(r, opts.Filter) {
			out = append(out, copyRow(r))
		}
	}
	if opts.OrderBy != "" {
		col := opts.OrderBy
		sort.SliceStable(out, func(i, j int) bool {
			if opts.Descending {
				return lessValue(out[j][col], out[i][col])
			}
			return lessValue(out[i][col], out[j][col])
		})
	}
	return out, nil
}

func (f *fakeGateway) Insert(ctx context.Context, table string, row gateway.Row) (gateway.Row, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	stored := copyRow(row)
	stored["id"] = uuid.New()
	now := f.tick()
	stored["created_at"] = now
	stored["updated_at"] = now
	f.tables[table] = append(f.tables[table], stored)
	return copyRow(stored), nil
}

func (f *fakeGateway) Update(ctx context.Context, table string, id uuid.UUID, patch gateway.Row) (gateway.Row, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for _, r := range f.tables[table] {
		if r["id"] == id {
			for k, v := range patch {
				r[k] = v
			}
			r["updated_at"] = f.tick()
			return copyRow(r), nil
		}
	}
	return nil, &gateway.GatewayError{Op: "update", Table: table, Err: &gateway.NotFoundError{Table: table, ID: id}}
}

func (f *fakeGateway) Delete(ctx context.Context, table string, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	rows := f.tables[table]
	for i, r := range rows {
		if r["id"] == id {
			f.tables[table] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}
	return &gateway.GatewayError{Op: "delete", Table: table, Err: &gateway.NotFoundError{Table: table, ID: id}}
}

func (f *fakeGateway) UploadFile(ctx context.Context, bucket, path string, data []byte) (string, error) {
	if f.uploadErr != nil {
		return "", &gateway.GatewayError{Op: "upload", Table: bucket, Err: f.uploadErr}
	}
	f.uploads = append(f.uploads, bucket+"/"+path)
	return f.uploadURL, nil
}
