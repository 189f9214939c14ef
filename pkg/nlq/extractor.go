package nlq

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical date form used in conditions and narratives.
// It sorts lexically in date order.
const DateLayout = "2006-01-02"

var (
	// "user 42", "user id 42"
	userIDPattern = regexp.MustCompile(`user\s*(?:id\s*)?(\d+)`)
	// "user john", "user name john", `user "john"`
	usernamePattern = regexp.MustCompile(`user\s*(?:name\s*)?"?([a-zA-Z0-9_]+)"?`)
)

// Extract scans the query text for user and date cues and returns the
// structured predicates. The text is lowercased before matching. The id
// pattern is tried before the username pattern and the first match wins.
// A date range is always produced, defaulting to the past seven days.
// Extract is a pure function of the text and the reference time.
func Extract(text string, now time.Time) Predicates {
	lower := strings.ToLower(text)

	p := Predicates{Date: extractDateRange(lower, now)}

	if m := userIDPattern.FindStringSubmatch(lower); m != nil {
		if id, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			p.User = &UserPredicate{Kind: UserMatchID, ID: id}
		}
	} else if m := usernamePattern.FindStringSubmatch(lower); m != nil {
		p.User = &UserPredicate{Kind: UserMatchUsername, Username: m[1]}
	}

	return p
}

// extractDateRange checks the five recognized date phrases in precedence
// order; the first match wins.
func extractDateRange(lower string, now time.Time) DateRange {
	day := startOfDay(now)

	switch {
	case strings.Contains(lower, "today"):
		return DateRange{Op: DateEquals, Date: day}
	case strings.Contains(lower, "yesterday"):
		return DateRange{Op: DateEquals, Date: day.AddDate(0, 0, -1)}
	case strings.Contains(lower, "past 7 days"), strings.Contains(lower, "last week"):
		return DateRange{Op: DateOnOrAfter, Date: day.AddDate(0, 0, -7)}
	case strings.Contains(lower, "this week"):
		return DateRange{Op: DateOnOrAfter, Date: startOfWeek(day)}
	default:
		return DateRange{Op: DateOnOrAfter, Date: day.AddDate(0, 0, -7)}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the most recent Sunday strictly before the given
// day; a Sunday maps to the previous Sunday.
func startOfWeek(day time.Time) time.Time {
	back := int(day.Weekday())
	if back == 0 {
		back = 7
	}
	return day.AddDate(0, 0, -back)
}
