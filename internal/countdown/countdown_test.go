package countdown

import (
	"errors"
	"testing"
	"time"

	serviceErrors "github.com/rowjay/countdown-token-service/internal/errors"
)

func TestCompute(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		target     time.Time
		expired    bool
		timeLeft   TimeData
		timePassed *TimeData
	}{
		{
			name:     "future target",
			target:   now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 600*time.Millisecond),
			timeLeft: TimeData{Days: 2, Hours: 3, Minutes: 4, Seconds: 5, Total: 183845600},
		},
		{
			name:       "past target",
			target:     now.Add(-(time.Hour + 30*time.Second)),
			expired:    true,
			timePassed: &TimeData{Hours: 1, Seconds: 30, Total: 3630000},
		},
		{
			name:       "target equal to now is expired",
			target:     now,
			expired:    true,
			timePassed: &TimeData{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.target, now)
			if got.IsExpired != tt.expired {
				t.Errorf("IsExpired = %v, want %v", got.IsExpired, tt.expired)
			}
			if got.TimeLeft != tt.timeLeft {
				t.Errorf("TimeLeft = %+v, want %+v", got.TimeLeft, tt.timeLeft)
			}
			switch {
			case tt.timePassed == nil && got.TimePassed != nil:
				t.Errorf("TimePassed = %+v, want nil", *got.TimePassed)
			case tt.timePassed != nil && (got.TimePassed == nil || *got.TimePassed != *tt.timePassed):
				t.Errorf("TimePassed = %v, want %+v", got.TimePassed, *tt.timePassed)
			}
		})
	}
}

func TestComputeFarFuture(t *testing.T) {
	now := time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC)

	// More than 292 years ahead, past what time.Duration can hold.
	got := Compute(TargetTime(MaxUnix, 0), now)
	if got.IsExpired {
		t.Fatal("far future target reported as expired")
	}
	want := TimeData{Days: 2912808, Hours: 11, Minutes: 59, Seconds: 59, Total: 251666654399000}
	if got.TimeLeft != want {
		t.Errorf("TimeLeft = %+v, want %+v", got.TimeLeft, want)
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		unix int64
		want bool
	}{
		{0, true},
		{1735689600, true},
		{MaxUnix, true},
		{MaxUnix + 1, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := InRange(tt.unix); got != tt.want {
			t.Errorf("InRange(%d) = %v, want %v", tt.unix, got, tt.want)
		}
	}
}

func TestTargetTime(t *testing.T) {
	got := TargetTime(1735689600, 330) // 2025-01-01T00:00:00Z
	if got.Format(time.RFC3339) != "2025-01-01T05:30:00+05:30" {
		t.Errorf("TargetTime = %s", got.Format(time.RFC3339))
	}
	if name, _ := got.Zone(); name != "UTC+05:30" {
		t.Errorf("zone name = %q", name)
	}
}

func TestParseLocal(t *testing.T) {
	got, err := ParseLocal("2025-01-01 05:30", 330)
	if err != nil {
		t.Fatalf("ParseLocal error = %v", err)
	}
	if got.Unix() != 1735689600 {
		t.Errorf("ParseLocal unix = %d, want 1735689600", got.Unix())
	}

	_, err = ParseLocal("01/01/2025 05:30", 0)
	if !errors.Is(err, serviceErrors.ErrValidation) {
		t.Errorf("ParseLocal bad layout error = %v, want validation", err)
	}
}

func TestOffsetLabel(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "UTC+00:00"},
		{330, "UTC+05:30"},
		{-570, "UTC-09:30"},
		{-720, "UTC-12:00"},
		{840, "UTC+14:00"},
	}
	for _, tt := range tests {
		if got := OffsetLabel(tt.minutes); got != tt.want {
			t.Errorf("OffsetLabel(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestZoneForOffset(t *testing.T) {
	winter := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		minutes int
		want    string
	}{
		{0, "Europe/London"},
		{330, "Asia/Kolkata"},
		{345, "Asia/Kathmandu"},
		{540, "Asia/Tokyo"},
		{-150, "UTC"},
	}
	for _, tt := range tests {
		if got := ZoneForOffset(tt.minutes, winter); got != tt.want {
			t.Errorf("ZoneForOffset(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestAbbreviation(t *testing.T) {
	if got := Abbreviation("Asia/Kolkata"); got != "IST" {
		t.Errorf("Abbreviation(Asia/Kolkata) = %q", got)
	}
	if got := Abbreviation("America/Argentina/Buenos_Aires"); got != "America, Argentina, Buenos Aires" {
		t.Errorf("Abbreviation fallback = %q", got)
	}
}
