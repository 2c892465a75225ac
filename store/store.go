// Package store holds one typed repository per entity. Each repository
// wraps the gateway with create/read/update/delete operations, validates
// inputs before anything leaves the process, and converts between gateway
// rows, entity structs and the string drafts the edit flow works with.
package store

import (
	"strconv"
	"strings"
	"time"

	"mobileshop-server/gateway"

	"github.com/google/uuid"
)

func rowString(r gateway.Row, col string) string {
	if v, ok := r[col].(string); ok {
		return v
	}
	return ""
}

func rowStringPtr(r gateway.Row, col string) *string {
	if v, ok := r[col].(string); ok {
		return &v
	}
	return nil
}

func rowFloat(r gateway.Row, col string) float64 {
	if v, ok := r[col].(float64); ok {
		return v
	}
	return 0
}

func rowFloatPtr(r gateway.Row, col string) *float64 {
	if v, ok := r[col].(float64); ok {
		return &v
	}
	return nil
}

func rowInt(r gateway.Row, col string) int {
	if v, ok := r[col].(int64); ok {
		return int(v)
	}
	return 0
}

func rowIntPtr(r gateway.Row, col string) *int {
	if v, ok := r[col].(int64); ok {
		i := int(v)
		return &i
	}
	return nil
}

func rowUUID(r gateway.Row, col string) uuid.UUID {
	if v, ok := r[col].(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

func rowUUIDPtr(r gateway.Row, col string) *uuid.UUID {
	if v, ok := r[col].(uuid.UUID); ok {
		return &v
	}
	return nil
}

func rowTime(r gateway.Row, col string) time.Time {
	if v, ok := r[col].(time.Time); ok {
		return v
	}
	return time.Time{}
}

func rowStrings(r gateway.Row, col string) []string {
	if v, ok := r[col].([]string); ok {
		return v
	}
	return nil
}

// optString turns an optional string into a gateway value, so that an
// absent field reaches the server as NULL rather than "".
func optString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func optFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func optInt(p *int) any {
	if p == nil {
		return nil
	}
	return int64(*p)
}

func optUUID(p *uuid.UUID) any {
	if p == nil {
		return nil
	}
	return *p
}

// Draft field conversions. Drafts carry every field in its display form:
// numbers as strings, lists comma-joined, absent values as "".

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFloatPtr(p *float64) string {
	if p == nil {
		return ""
	}
	return formatFloat(*p)
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func draftString(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func draftFloat(field, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, &gateway.ValidationError{Field: field, Message: "must be a number"}
	}
	return f, nil
}

func draftFloatPtr(field, v string) (*float64, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	f, err := draftFloat(field, v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func draftInt(field, v string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, &gateway.ValidationError{Field: field, Message: "must be a whole number"}
	}
	return i, nil
}

func draftIntPtr(field, v string) (*int, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	i, err := draftInt(field, v)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func draftUUID(field, v string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, &gateway.ValidationError{Field: field, Message: "must be a valid id"}
	}
	return id, nil
}

func draftUUIDPtr(field, v string) (*uuid.UUID, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	id, err := draftUUID(field, v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// splitFeatures parses the comma-separated features field the way the
// admin form enters it: trimmed, empties dropped, order kept.
func splitFeatures(v string) []string {
	parts := strings.Split(v, ",")
	features := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			features = append(features, t)
		}
	}
	return features
}

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return &gateway.ValidationError{Field: field, Message: field + " is required"}
	}
	return nil
}

func notFound(op, table string, id uuid.UUID) error {
	return &gateway.GatewayError{Op: op, Table: table, Err: &gateway.NotFoundError{Table: table, ID: id}}
}
