package codec

import (
	"fmt"
	"math"

	serviceErrors "github.com/rowjay/countdown-token-service/internal/errors"
)

const (
	MinOffsetMinutes = -720 // UTC-12:00
	MaxOffsetMinutes = 840  // UTC+14:00
	OffsetStep       = 15
	OffsetFieldWidth = 2

	maxOffsetIndex = (MaxOffsetMinutes - MinOffsetMinutes) / OffsetStep
)

// offsetIndex quantizes minutes to the nearest 15 minute step from UTC-12:00.
func offsetIndex(op string, minutes int) (int, error) {
	if minutes < MinOffsetMinutes || minutes > MaxOffsetMinutes {
		return 0, serviceErrors.NewOutOfRangeError(op,
			fmt.Sprintf("timezone offset %d outside [%d, %d] minutes", minutes, MinOffsetMinutes, MaxOffsetMinutes))
	}
	index := int(math.Floor(float64(minutes-MinOffsetMinutes)/OffsetStep + 0.5))
	if index < 0 || index > maxOffsetIndex {
		return 0, serviceErrors.NewOutOfRangeError(op, fmt.Sprintf("offset index %d outside [0, %d]", index, maxOffsetIndex))
	}
	return index, nil
}

// QuantizeOffset returns the offset a token round-trip yields for minutes.
func QuantizeOffset(minutes int) (int, error) {
	index, err := offsetIndex("codec.QuantizeOffset", minutes)
	if err != nil {
		return 0, err
	}
	return index*OffsetStep + MinOffsetMinutes, nil
}

// EncodeOffset encodes a UTC offset in minutes as a two character field.
func EncodeOffset(minutes int) (string, error) {
	index, err := offsetIndex("codec.EncodeOffset", minutes)
	if err != nil {
		return "", err
	}
	return padLeft(EncodeUint64(uint64(index)), OffsetFieldWidth), nil
}

// DecodeOffset is the inverse of EncodeOffset. Indexes past UTC+14:00 are
// rejected so a tampered field cannot produce an impossible offset.
func DecodeOffset(field string) (int, error) {
	const op = "codec.DecodeOffset"
	if len(field) != OffsetFieldWidth {
		return 0, serviceErrors.NewInvalidEncodingError(op,
			fmt.Sprintf("offset field must be %d characters, got %d", OffsetFieldWidth, len(field)), nil)
	}

	n, err := DecodeBase62(field)
	if err != nil {
		return 0, serviceErrors.NewInvalidEncodingError(op, "invalid offset field", err)
	}
	index := int(n.Int64())
	if index > maxOffsetIndex {
		return 0, serviceErrors.NewOutOfRangeError(op, fmt.Sprintf("offset index %d outside [0, %d]", index, maxOffsetIndex))
	}
	return index*OffsetStep + MinOffsetMinutes, nil
}
