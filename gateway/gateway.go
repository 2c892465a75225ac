// Package gateway defines the contract the rest of the application uses to
// reach the remote data store: table-level CRUD plus public file storage.
package gateway

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Row is one table row as the gateway sees it. Values are nil, string,
// float64, int64, bool, uuid.UUID, time.Time or []string depending on the
// column kind declared in the table schema.
type Row map[string]any

// QueryOptions narrows and orders a table query. Filter keys must be
// columns of the queried table.
type QueryOptions struct {
	Filter     map[string]any
	OrderBy    string
	Descending bool
}

// Client is the remote data gateway. Implementations do not retry; a
// failed call surfaces a *GatewayError and nothing else happens.
type Client interface {
	Query(ctx context.Context, table string, opts QueryOptions) ([]Row, error)
	Insert(ctx context.Context, table string, row Row) (Row, error)
	Update(ctx context.Context, table string, id uuid.UUID, patch Row) (Row, error)
	Delete(ctx context.Context, table string, id uuid.UUID) error
	UploadFile(ctx context.Context, bucket, path string, data []byte) (string, error)
}

// FileStorage stores a file under bucket/path and returns its public URL.
type FileStorage interface {
	Upload(ctx context.Context, bucket, path string, data []byte) (string, error)
}

// NoStorage is the FileStorage used when no storage backend is
// configured. Every upload fails.
type NoStorage struct{}

func (NoStorage) Upload(ctx context.Context, bucket, path string, data []byte) (string, error) {
	return "", errors.New("file storage is not configured")
}
