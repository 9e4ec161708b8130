package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseTimeFlexible accepts RFC 3339 (with or without fractional seconds),
// epoch seconds, or epoch milliseconds, and returns UTC.
func ParseTimeFlexible(timeStr string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, timeStr); err == nil {
		return t.UTC(), nil
	}
	if n, err := strconv.ParseInt(timeStr, 10, 64); err == nil {
		return epoch(n), nil
	}
	if f, err := strconv.ParseFloat(timeStr, 64); err == nil {
		return epochFloat(f), nil
	}
	return time.Time{}, fmt.Errorf("invalid time format: %s", timeStr)
}

// ParseTimeValue handles a decoded JSON value: a string as above or a number
// of epoch seconds or milliseconds.
func ParseTimeValue(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case string:
		return ParseTimeFlexible(t)
	case float64:
		return epochFloat(t), nil
	default:
		return time.Time{}, fmt.Errorf("invalid time value: %v", v)
	}
}

// Values below 1e11 are read as seconds: that is year 5138 in seconds but
// only 1973 in milliseconds.
func epoch(n int64) time.Time {
	if n < 1e11 && n > -1e11 {
		return time.Unix(n, 0).UTC()
	}
	return time.UnixMilli(n).UTC()
}

func epochFloat(f float64) time.Time {
	if f < 1e11 && f > -1e11 {
		sec := int64(f)
		return time.Unix(sec, int64((f-float64(sec))*1e9)).UTC()
	}
	return time.UnixMilli(int64(f)).UTC()
}
