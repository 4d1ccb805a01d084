package ledger

import "time"

// dateLayout formats calendar dates in the host's local calendar.
const dateLayout = "2006-01-02"

func dateString(t time.Time) string {
	return t.Format(dateLayout)
}

func yesterdayString(now time.Time) string {
	return now.AddDate(0, 0, -1).Format(dateLayout)
}
