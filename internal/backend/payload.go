package backend

import "time"

// The backend's payloads drifted between camelCase and snake_case across
// revisions. Each wire DTO in this package accepts both spellings and
// normalizes to the canonical domain schema; the drift never leaks past this
// boundary.

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseTime is tolerant: the dashboard renders a zero time as "unknown"
// rather than failing a whole list over one bad timestamp.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseTimePtr(s string) *time.Time {
	t := parseTime(s)
	if t.IsZero() {
		return nil
	}
	return &t
}
