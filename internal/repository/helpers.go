package repository

import (
	"fmt"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/varaldossonhos/api/internal/database"
)

// storeDate is the date-only layout the legacy base uses for date fields.
const storeDate = "2006-01-02"

// str coerces a store value to a string. Numbers are rendered without an
// exponent so ages and phone numbers survive the trip through the store.
func str(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case int64:
		return fmt.Sprintf("%d", t)
	case uint64:
		return fmt.Sprintf("%d", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	}
	return fmt.Sprintf("%v", v)
}

// firstStr returns the first non-empty string among the named fields, covering
// the legacy base's spelling variants.
func firstStr(f database.Fields, names ...string) string {
	for _, n := range names {
		if s := str(f[n]); s != "" {
			return s
		}
	}
	return ""
}

// boolVal coerces a store value to a bool.
func boolVal(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "TRUE" || t == "1"
	case float64:
		return t != 0
	case int64:
		return t != 0
	}
	return false
}

// floatPtr coerces a store value to an optional float.
func floatPtr(v interface{}) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case int64:
		f := float64(t)
		return &f
	case uint64:
		f := float64(t)
		return &f
	}
	return nil
}

// parseTime parses a store value into a time, accepting the store's date-only
// layout, RFC 3339, and the driver's native datetime type.
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(storeDate, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// attachmentURL extracts the first URL from the legacy base's attachment
// shape: an array of objects each carrying a url field. Plain string values
// are passed through.
func attachmentURL(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []interface{}:
		if len(t) == 0 {
			return ""
		}
		if m, ok := t[0].(map[string]interface{}); ok {
			return str(m["url"])
		}
	}
	return ""
}
