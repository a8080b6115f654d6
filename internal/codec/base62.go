package codec

import (
	"fmt"
	"math/big"
	"strings"

	serviceErrors "github.com/rowjay/countdown-token-service/internal/errors"
)

const (
	// Alphabet is the base62 digit set: 0-9, A-Z, a-z.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	base     = len(Alphabet)
)

var (
	bigBase = big.NewInt(int64(base))

	// digitValues maps an ASCII byte to its digit value, -1 when absent.
	digitValues = func() [256]int8 {
		var t [256]int8
		for i := range t {
			t[i] = -1
		}
		for i := 0; i < len(Alphabet); i++ {
			t[Alphabet[i]] = int8(i)
		}
		return t
	}()
)

// DigitValue returns the value of a single base62 character.
func DigitValue(c byte) (int, bool) {
	v := digitValues[c]
	return int(v), v >= 0
}

// IsBase62 reports whether s is non-empty and made only of alphabet characters.
func IsBase62(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if digitValues[s[i]] < 0 {
			return false
		}
	}
	return true
}

// EncodeUint64 encodes n without padding. Zero encodes to "0".
func EncodeUint64(n uint64) string {
	if n == 0 {
		return string(Alphabet[0])
	}

	buf := make([]byte, 0, 11)
	for n > 0 {
		buf = append(buf, Alphabet[n%uint64(base)])
		n /= uint64(base)
	}
	reverse(buf)
	return string(buf)
}

// EncodeBase62 encodes a non-negative integer of any size.
func EncodeBase62(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", serviceErrors.NewInvalidInputError("codec.EncodeBase62", "value must be a non-negative integer")
	}
	if n.IsUint64() {
		return EncodeUint64(n.Uint64()), nil
	}

	var (
		q   = new(big.Int).Set(n)
		r   = new(big.Int)
		buf = make([]byte, 0, n.BitLen()/5+1)
	)
	for q.Sign() > 0 {
		q.QuoRem(q, bigBase, r)
		buf = append(buf, Alphabet[r.Int64()])
	}
	reverse(buf)
	return string(buf), nil
}

// DecodeBase62 decodes s into an arbitrary precision integer.
func DecodeBase62(s string) (*big.Int, error) {
	const op = "codec.DecodeBase62"
	if s == "" {
		return nil, serviceErrors.NewInvalidEncodingError(op, "empty base62 string", nil)
	}

	n := new(big.Int)
	d := new(big.Int)
	for i := 0; i < len(s); i++ {
		v := digitValues[s[i]]
		if v < 0 {
			return nil, serviceErrors.NewInvalidEncodingError(op, "invalid base62 character",
				fmt.Errorf("%q at offset %d", s[i], i))
		}
		n.Mul(n, bigBase)
		n.Add(n, d.SetInt64(int64(v)))
	}
	return n, nil
}

// padLeft left-pads s with the zero digit up to width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(Alphabet[0]), width-len(s)) + s
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
