package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// SurrealDB implements the Store interface for SurrealDB.
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealDB creates a new SurrealDB store.
func NewSurrealDB(cfg Config) *SurrealDB {
	return &SurrealDB{
		config: cfg,
	}
}

// Connect establishes a connection to SurrealDB.
func (s *SurrealDB) Connect(ctx context.Context) error {
	endpoint := fmt.Sprintf("ws://%s:%s", s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	// Sign in as root user
	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	// Use namespace and database
	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Close closes the store connection.
func (s *SurrealDB) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping checks the store connection.
func (s *SurrealDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	// Execute a simple query to verify connection
	_, err := s.db.Version(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Select returns the records of a collection matching opts. The filter is
// compiled to a WHERE clause with bound variables; collection and field names
// are internal constants, never request input.
func (s *SurrealDB) Select(ctx context.Context, collection string, opts SelectOptions) ([]Record, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT * FROM %s", collection)

	vars := map[string]interface{}{}
	for i, t := range opts.Filter.terms {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		name := fmt.Sprintf("w%d", i)
		fmt.Fprintf(&b, "%s = $%s", t.field, name)
		vars[name] = t.value
	}
	if opts.Sort != nil {
		dir := "ASC"
		if opts.Sort.Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&b, " ORDER BY %s %s", opts.Sort.Field, dir)
	}
	if opts.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", opts.Limit)
	}

	result, err := s.query(ctx, b.String(), vars)
	if err != nil {
		return nil, err
	}
	return toRecords(result), nil
}

// Create inserts one record per field set, sequentially, and returns the
// created records with their assigned ids.
func (s *SurrealDB) Create(ctx context.Context, collection string, fields []Fields) ([]Record, error) {
	created := make([]Record, 0, len(fields))
	for _, f := range fields {
		query := fmt.Sprintf("CREATE %s CONTENT $fields", collection)
		result, err := s.query(ctx, query, map[string]interface{}{"fields": map[string]interface{}(f)})
		if err != nil {
			if isUniqueConstraintError(err) {
				return created, fmt.Errorf("%w: %v", ErrDuplicate, err)
			}
			return created, err
		}
		recs := toRecords(result)
		if len(recs) == 0 {
			return created, fmt.Errorf("%w: create returned no record", ErrQuery)
		}
		created = append(created, recs[0])
	}
	return created, nil
}

// Update merges fields into the addressed records and returns the updated
// records.
func (s *SurrealDB) Update(ctx context.Context, collection string, updates []Update) ([]Record, error) {
	updated := make([]Record, 0, len(updates))
	for _, u := range updates {
		result, err := s.query(ctx, "UPDATE type::record($id) MERGE $fields", map[string]interface{}{
			"id":     u.ID,
			"fields": map[string]interface{}(u.Fields),
		})
		if err != nil {
			return updated, err
		}
		recs := toRecords(result)
		if len(recs) == 0 {
			return updated, fmt.Errorf("%w: %s", ErrNotFound, u.ID)
		}
		updated = append(updated, recs[0])
	}
	return updated, nil
}

// Find returns a single record by id.
func (s *SurrealDB) Find(ctx context.Context, collection, id string) (Record, error) {
	result, err := s.query(ctx, "SELECT * FROM type::record($id)", map[string]interface{}{"id": id})
	if err != nil {
		return Record{}, err
	}
	recs := toRecords(result)
	if len(recs) == 0 {
		return Record{}, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}
	return recs[0], nil
}

// query executes a statement and returns the flattened result rows.
func (s *SurrealDB) query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil {
		return nil, nil
	}

	rows := make([]interface{}, 0)
	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				return nil, fmt.Errorf("%w: %s", ErrQuery, r.Error.Message)
			}
			return nil, ErrQuery
		}
		switch v := r.Result.(type) {
		case []interface{}:
			rows = append(rows, v...)
		case nil:
			// statement produced nothing
		default:
			rows = append(rows, v)
		}
	}
	return rows, nil
}

// toRecords converts raw result rows into Records, splitting the id field off
// from the remaining fields.
func toRecords(rows []interface{}) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		m, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		rec := Record{Fields: make(Fields, len(m))}
		for k, v := range m {
			if k == "id" {
				rec.ID = recordIDString(v)
				continue
			}
			rec.Fields[k] = v
		}
		records = append(records, rec)
	}
	return records
}

// recordIDString extracts a record id string from SurrealDB's id representations.
func recordIDString(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil {
			return recordID.String()
		}
	}

	return ""
}

// isUniqueConstraintError checks if an error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}
