// Package database provides the record-store abstraction for the Varal dos
// Sonhos API.
//
// The Store interface models a remote tabular record store: named collections
// of schemaless records addressed by opaque ids, queried with server-side
// filter expressions. The only implementation is SurrealDB (surrealdb.go), but
// every consumer depends on the interface so services and handlers can be
// tested against an in-memory fake.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: record does not exist
//   - ErrDuplicate: unique constraint violation
//   - ErrConnection: store connection issues
//   - ErrQuery: query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database

import (
	"context"
	"errors"
)

// Standard errors for record-store operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation (e.g., duplicate email).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the store.
	ErrConnection = errors.New("store connection error")

	// ErrQuery indicates a query execution failure (syntax error, invalid reference, etc.).
	ErrQuery = errors.New("query error")
)

// Fields is the schemaless field set of a record.
type Fields map[string]interface{}

// Record is a single row in a collection. ID is the store-assigned opaque id,
// including the collection prefix (e.g. "doacoes:x7k2").
type Record struct {
	ID     string
	Fields Fields
}

// Update addresses one record for a partial-field merge.
type Update struct {
	ID     string
	Fields Fields
}

// Sort orders a selection by a single field.
type Sort struct {
	Field string
	Desc  bool
}

// Filter is a conjunction of field-equality terms, the only filter shape the
// store's formulas are used for. A zero Filter matches everything.
type Filter struct {
	terms []filterTerm
}

type filterTerm struct {
	field string
	value interface{}
}

// Where starts a filter with a single field = value term.
func Where(field string, value interface{}) Filter {
	return Filter{terms: []filterTerm{{field: field, value: value}}}
}

// And appends another field = value term to the conjunction.
func (f Filter) And(field string, value interface{}) Filter {
	f.terms = append(append([]filterTerm(nil), f.terms...), filterTerm{field: field, value: value})
	return f
}

// Empty reports whether the filter has no terms.
func (f Filter) Empty() bool {
	return len(f.terms) == 0
}

// Terms returns the filter's field = value pairs. Store implementations and
// test fakes use it to apply the conjunction.
func (f Filter) Terms() map[string]interface{} {
	out := make(map[string]interface{}, len(f.terms))
	for _, t := range f.terms {
		out[t.field] = t.value
	}
	return out
}

// SelectOptions narrows and orders a Select. All fields are optional.
type SelectOptions struct {
	Filter Filter
	Sort   *Sort
	Limit  int
}

// Store defines the record-store operations the application consumes.
type Store interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Select returns the records of a collection matching opts.
	Select(ctx context.Context, collection string, opts SelectOptions) ([]Record, error)

	// Create inserts one record per field set, in order, and returns the
	// created records with their assigned ids.
	Create(ctx context.Context, collection string, fields []Fields) ([]Record, error)

	// Update merges fields into the addressed records and returns the
	// updated records.
	Update(ctx context.Context, collection string, updates []Update) ([]Record, error)

	// Find returns a single record by id.
	Find(ctx context.Context, collection, id string) (Record, error)
}

// Config holds store connection configuration.
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
