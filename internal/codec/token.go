package codec

import (
	"fmt"
	"math"
	"math/big"

	serviceErrors "github.com/rowjay/countdown-token-service/internal/errors"
)

const (
	// MaxTimestampDigits is the longest timestamp field one header digit can describe.
	MaxTimestampDigits = base - 1
	// MinTokenLength is header + one timestamp digit + offset field.
	MinTokenLength = 1 + 1 + OffsetFieldWidth
)

// Payload is the decoded content of a token.
type Payload struct {
	// Timestamp is seconds since the Unix epoch. It is kept at full precision;
	// use UnixSeconds to narrow it.
	Timestamp      *big.Int
	TimezoneOffset int
	Title          string
}

// UnixSeconds returns the timestamp as an int64. ok is false when the value
// does not fit, in which case callers must keep using Timestamp.
func (p *Payload) UnixSeconds() (sec int64, ok bool) {
	if p.Timestamp == nil || !p.Timestamp.IsInt64() {
		return 0, false
	}
	return p.Timestamp.Int64(), true
}

// HasTitle reports whether the token carried a non-empty title.
func (p *Payload) HasTitle() bool {
	return p.Title != ""
}

// EncodeToken builds a token from a non-negative timestamp in seconds, an
// offset in minutes and an optional title.
func EncodeToken(timestamp *big.Int, offsetMinutes int, title string) (string, error) {
	const op = "codec.EncodeToken"
	if timestamp == nil || timestamp.Sign() < 0 {
		return "", serviceErrors.NewInvalidInputError(op, "timestamp must be a non-negative integer")
	}

	timePart, err := EncodeBase62(timestamp)
	if err != nil {
		return "", err
	}
	if len(timePart) > MaxTimestampDigits {
		return "", serviceErrors.NewEncodingTooLongError(op,
			fmt.Sprintf("timestamp encodes to %d characters, limit is %d", len(timePart), MaxTimestampDigits))
	}

	tzPart, err := EncodeOffset(offsetMinutes)
	if err != nil {
		return "", err
	}

	header := Alphabet[len(timePart)]
	titlePart := EncodeTitle(title)

	buf := make([]byte, 0, 1+len(timePart)+len(tzPart)+len(titlePart))
	buf = append(buf, header)
	buf = append(buf, timePart...)
	buf = append(buf, tzPart...)
	buf = append(buf, titlePart...)
	return string(buf), nil
}

// EncodeUnix is EncodeToken for an int64 timestamp.
func EncodeUnix(timestamp int64, offsetMinutes int, title string) (string, error) {
	if timestamp < 0 {
		return "", serviceErrors.NewInvalidInputError("codec.EncodeUnix", "timestamp must be non-negative")
	}
	return EncodeToken(big.NewInt(timestamp), offsetMinutes, title)
}

// EncodeSeconds accepts a fractional timestamp and floors it. NaN, infinities
// and negative values are rejected.
func EncodeSeconds(timestamp float64, offsetMinutes int, title string) (string, error) {
	const op = "codec.EncodeSeconds"
	if math.IsNaN(timestamp) || math.IsInf(timestamp, 0) {
		return "", serviceErrors.NewInvalidInputError(op, "timestamp must be finite")
	}
	if timestamp < 0 {
		return "", serviceErrors.NewInvalidInputError(op, "timestamp must be non-negative")
	}

	ts, _ := new(big.Float).SetFloat64(math.Floor(timestamp)).Int(nil)
	return EncodeToken(ts, offsetMinutes, title)
}

// DecodeToken parses a token. It never returns a partial payload: the first
// failing field aborts the whole decode. A header digit of 0 is reported as
// InvalidToken, not as an InvalidEncoding of the empty timestamp field.
func DecodeToken(token string) (*Payload, error) {
	const op = "codec.DecodeToken"
	if len(token) < MinTokenLength {
		return nil, serviceErrors.NewInvalidTokenError(op,
			fmt.Sprintf("token must be at least %d characters", MinTokenLength), nil)
	}

	timeLen, ok := DigitValue(token[0])
	if !ok {
		return nil, serviceErrors.NewInvalidTokenError(op, fmt.Sprintf("invalid length header %q", token[0]), nil)
	}
	if timeLen == 0 {
		return nil, serviceErrors.NewInvalidTokenError(op, "length header declares an empty timestamp", nil)
	}
	if len(token) < 1+timeLen+OffsetFieldWidth {
		return nil, serviceErrors.NewInvalidTokenError(op,
			fmt.Sprintf("length header declares %d timestamp characters but token is %d long", timeLen, len(token)), nil)
	}

	var (
		timePart  = token[1 : 1+timeLen]
		tzPart    = token[1+timeLen : 1+timeLen+OffsetFieldWidth]
		titlePart = token[1+timeLen+OffsetFieldWidth:]
	)

	ts, err := DecodeBase62(timePart)
	if err != nil {
		return nil, err
	}
	offset, err := DecodeOffset(tzPart)
	if err != nil {
		return nil, err
	}
	title, err := DecodeTitle(titlePart)
	if err != nil {
		return nil, err
	}

	return &Payload{
		Timestamp:      ts,
		TimezoneOffset: offset,
		Title:          title,
	}, nil
}
