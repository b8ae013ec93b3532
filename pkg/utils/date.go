package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DateKey formats a date as YYYY-MM-DD, the key used for grouping and for
// insight cache keys.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
