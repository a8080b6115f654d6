package codec

import (
	"errors"
	"testing"

	serviceErrors "github.com/rowjay/countdown-token-service/internal/errors"
)

func TestEncodeOffset(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{"UTC-12:00 is index 0", -720, "00"},
		{"UTC is index 48", 0, "0m"},
		{"UTC+05:30", 330, "18"},
		{"UTC+05:45", 345, "19"},
		{"UTC+14:00 is index 104", 840, "1g"},
		{"rounds down below half step", 7, "0m"},
		{"rounds up past half step", 8, "0n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeOffset(tt.minutes)
			if err != nil {
				t.Fatalf("EncodeOffset(%d) error = %v", tt.minutes, err)
			}
			if got != tt.want {
				t.Errorf("EncodeOffset(%d) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestEncodeOffsetOutOfRange(t *testing.T) {
	for _, minutes := range []int{-721, 841, -100000, 100000} {
		_, err := EncodeOffset(minutes)
		if !errors.Is(err, serviceErrors.ErrOutOfRange) {
			t.Errorf("EncodeOffset(%d) error = %v, want OutOfRange", minutes, err)
		}
	}
}

func TestDecodeOffset(t *testing.T) {
	tests := []struct {
		field string
		want  int
	}{
		{"00", -720},
		{"0m", 0},
		{"18", 330},
		{"1g", 840},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, err := DecodeOffset(tt.field)
			if err != nil {
				t.Fatalf("DecodeOffset(%q) error = %v", tt.field, err)
			}
			if got != tt.want {
				t.Errorf("DecodeOffset(%q) = %d, want %d", tt.field, got, tt.want)
			}
		})
	}
}

func TestDecodeOffsetInvalid(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  error
	}{
		{"empty", "", serviceErrors.ErrInvalidEncoding},
		{"one char", "m", serviceErrors.ErrInvalidEncoding},
		{"three chars", "00m", serviceErrors.ErrInvalidEncoding},
		{"bad char", "0-", serviceErrors.ErrInvalidEncoding},
		{"index past UTC+14", "1h", serviceErrors.ErrOutOfRange},
		{"max field", "zz", serviceErrors.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeOffset(tt.field)
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeOffset(%q) error = %v, want %v", tt.field, err, tt.want)
			}
		})
	}
}

func TestOffsetRoundTripQuantizes(t *testing.T) {
	for minutes := MinOffsetMinutes; minutes <= MaxOffsetMinutes; minutes++ {
		field, err := EncodeOffset(minutes)
		if err != nil {
			t.Fatalf("EncodeOffset(%d) error = %v", minutes, err)
		}
		if len(field) != OffsetFieldWidth {
			t.Fatalf("EncodeOffset(%d) = %q, want %d characters", minutes, field, OffsetFieldWidth)
		}
		got, err := DecodeOffset(field)
		if err != nil {
			t.Fatalf("DecodeOffset(%q) error = %v", field, err)
		}
		want, err := QuantizeOffset(minutes)
		if err != nil {
			t.Fatalf("QuantizeOffset(%d) error = %v", minutes, err)
		}
		if got != want {
			t.Errorf("offset %d round-tripped to %d, want %d", minutes, got, want)
		}
		if got%OffsetStep != 0 {
			t.Errorf("offset %d round-tripped to %d, not a multiple of %d", minutes, got, OffsetStep)
		}
		if diff := got - minutes; diff > 7 || diff < -7 {
			t.Errorf("offset %d moved by %d minutes", minutes, diff)
		}
	}
}
