package utils

import (
	"fmt"
	"strings"
	"time"

	"app/models"
)

const dayLayout = "2006-01-02"

// dayBounds returns midnight of dt's day and the last microsecond of it.
func dayBounds(dt time.Time) (time.Time, time.Time) {
	start := time.Date(dt.Year(), dt.Month(), dt.Day(), 0, 0, 0, 0, dt.Location())
	end := start.Add(24*time.Hour - time.Microsecond)
	return start, end
}

// mondayOf returns dt shifted back to Monday of its week, keeping the
// clock time of dt.
func mondayOf(dt time.Time) time.Time {
	offset := (int(dt.Weekday()) + 6) % 7
	return dt.AddDate(0, 0, -offset)
}

// ParseDateRange resolves natural language timeframes like "today",
// "yesterday", "this week" etc. against now. The first matching phrase
// wins; questions with no recognized phrase default to today.
func ParseDateRange(text string, now time.Time) models.DateRange {
	t := strings.ToLower(strings.TrimSpace(text))

	switch {
	case strings.Contains(t, "today"):
		start, end := dayBounds(now)
		return models.DateRange{Start: start, End: end, Label: fmt.Sprintf("Today (%s)", start.Format(dayLayout))}

	case strings.Contains(t, "yesterday"):
		start, end := dayBounds(now.AddDate(0, 0, -1))
		return models.DateRange{Start: start, End: end, Label: fmt.Sprintf("Yesterday (%s)", start.Format(dayLayout))}

	case strings.Contains(t, "last week"):
		lastMonday := mondayOf(now).AddDate(0, 0, -7)
		lastSunday := lastMonday.AddDate(0, 0, 6)
		return models.DateRange{
			Start: lastMonday,
			End:   lastSunday,
			Label: fmt.Sprintf("Last week (%s to %s)", lastMonday.Format(dayLayout), lastSunday.Format(dayLayout)),
		}

	case strings.Contains(t, "this week"):
		thisMonday := mondayOf(now)
		return models.DateRange{
			Start: thisMonday,
			End:   now,
			Label: fmt.Sprintf("This week (%s to %s)", thisMonday.Format(dayLayout), now.Format(dayLayout)),
		}

	case strings.Contains(t, "this month"):
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Microsecond)
		return models.DateRange{
			Start: start,
			End:   end,
			Label: fmt.Sprintf("This month (%s to %s)", start.Format(dayLayout), end.Format(dayLayout)),
		}

	case strings.Contains(t, "last month"):
		thisFirst := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start := thisFirst.AddDate(0, -1, 0)
		end := thisFirst.Add(-time.Microsecond)
		return models.DateRange{
			Start: start,
			End:   end,
			Label: fmt.Sprintf("Last month (%s to %s)", start.Format(dayLayout), end.Format(dayLayout)),
		}
	}

	start, end := dayBounds(now)
	return models.DateRange{Start: start, End: end, Label: fmt.Sprintf("Today (%s)", start.Format(dayLayout))}
}

// createdTimeFormats are the timestamp shapes the orders API has been
// observed to emit.
var createdTimeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseCreatedTime parses an order timestamp, trying each known format.
func ParseCreatedTime(s string) (time.Time, error) {
	var lastErr error
	for _, format := range createdTimeFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// naive strips timezone information, keeping the wall-clock reading.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// FilterOrders keeps locked orders whose createdTime parses and falls
// within the range, bounds inclusive. Comparison is timezone-naive on
// both sides, which assumes order timestamps and server time share a
// zone; if they do not, the window is off by the offset.
// Orders failing any check are dropped silently.
func FilterOrders(orders []models.Order, rng models.DateRange) []models.Order {
	start, end := naive(rng.Start), naive(rng.End)
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.State != models.OrderStateLocked {
			continue
		}
		ct, err := ParseCreatedTime(o.CreatedTime)
		if err != nil {
			continue
		}
		ct = naive(ct)
		if ct.Before(start) || ct.After(end) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}
