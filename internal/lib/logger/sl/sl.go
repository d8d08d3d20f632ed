package sl

import (
	"log/slog"
)

// Err creates a slog.Attr with the given error.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Rows creates a slog.Attr with the affected-row count of a statement.
func Rows(count int64) slog.Attr {
	return slog.Attr{
		Key:   "rows_affected",
		Value: slog.Int64Value(count),
	}
}
