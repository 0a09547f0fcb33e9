package repository

import "time"

// parseTime parses an RFC3339 timestamp stored by this package, returning
// the zero time if the stored value is empty or malformed.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nowUTC returns the current UTC time truncated to second precision, which
// is what the RFC3339 storage format round-trips.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
