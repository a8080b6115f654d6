package countdown

import (
	"fmt"
	"time"

	serviceErrors "github.com/rowjay/countdown-token-service/internal/errors"
)

// LocalLayout is the wall-clock format accepted by ParseLocal.
const LocalLayout = "2006-01-02 15:04"

// TimeData is a duration split into whole units. Total is in milliseconds.
type TimeData struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Total   int64 `json:"total"`
}

// MaxUnix is the last supported target, 9999-12-31T23:59:59Z.
const MaxUnix int64 = 253402300799

// State is the countdown as seen at one instant.
type State struct {
	IsExpired  bool
	TimeLeft   TimeData
	TimePassed *TimeData
}

// Compute reports how far now is from target, at millisecond precision. A
// target equal to now counts as expired.
func Compute(target, now time.Time) State {
	diff := target.UnixMilli() - now.UnixMilli()
	if diff <= 0 {
		passed := split(-diff)
		return State{
			IsExpired:  true,
			TimePassed: &passed,
		}
	}
	return State{TimeLeft: split(diff)}
}

// split works on milliseconds rather than time.Duration, which saturates
// around 292 years.
func split(ms int64) TimeData {
	sec := ms / 1000
	return TimeData{
		Days:    sec / 86400,
		Hours:   sec % 86400 / 3600,
		Minutes: sec % 3600 / 60,
		Seconds: sec % 60,
		Total:   ms,
	}
}

// InRange reports whether unix lies in [0, MaxUnix].
func InRange(unix int64) bool {
	return unix >= 0 && unix <= MaxUnix
}

// FixedZone returns a location named after its offset, e.g. UTC+05:30.
func FixedZone(offsetMinutes int) *time.Location {
	return time.FixedZone(OffsetLabel(offsetMinutes), offsetMinutes*60)
}

// TargetTime places a Unix timestamp in the fixed zone of the offset.
func TargetTime(unix int64, offsetMinutes int) time.Time {
	return time.Unix(unix, 0).In(FixedZone(offsetMinutes))
}

// ParseLocal parses a "YYYY-MM-DD HH:mm" wall time at the given offset.
func ParseLocal(value string, offsetMinutes int) (time.Time, error) {
	t, err := time.ParseInLocation(LocalLayout, value, FixedZone(offsetMinutes))
	if err != nil {
		return time.Time{}, serviceErrors.NewValidationError("countdown.ParseLocal",
			fmt.Sprintf("date time must use the %q layout", "YYYY-MM-DD HH:mm"), err)
	}
	return t, nil
}
