package projections

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Nullable column helpers for building projection values out of model
// fields the mapper leaves in their null wrapper types.

// StringValue returns the value of a nullable string column, or "" when null.
func StringValue(v null.String) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

// StringOrNull wraps a projection string for a nullable column; empty
// strings become null.
func StringOrNull(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

// TimeValue formats a nullable time column with the given layout, or ""
// when null.
func TimeValue(v null.Time, layout string) string {
	if !v.Valid {
		return ""
	}
	return v.Time.Format(layout)
}

// TimeOrNull wraps a projection time for a nullable column; the zero time
// becomes null.
func TimeOrNull(t time.Time) null.Time {
	if t.IsZero() {
		return null.Time{}
	}
	return null.TimeFrom(t)
}
