package utils

import (
	"time"
)

// MsToTime converts a millisecond Unix timestamp (as the instrument
// records it) to a UTC time.Time.
func MsToTime(ms uint64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

// FormatTimestampMs renders an ms-epoch timestamp the way summaries and
// graph titles display it.
func FormatTimestampMs(ms uint64) string {
	return MsToTime(ms).Format("2006-01-02 15:04:05")
}
