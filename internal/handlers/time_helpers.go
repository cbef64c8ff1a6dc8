package handlers

import "time"

// day strings arrive as "2006-01-02" in the institution timezone
func parseDayIn(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}
