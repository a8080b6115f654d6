package codec

import (
	"math/big"
	"strings"
	"unicode/utf8"

	serviceErrors "github.com/rowjay/countdown-token-service/internal/errors"
)

// EncodeTitle packs the UTF-8 bytes of title, most significant byte first,
// into one integer and encodes it. The field carries no length: leading zero
// bytes are dropped, so a title made only of NUL bytes encodes to "" exactly
// like an absent title.
func EncodeTitle(title string) string {
	if title == "" {
		return ""
	}

	n := new(big.Int).SetBytes([]byte(title))
	if n.Sign() == 0 {
		return ""
	}

	// n is never negative here.
	s, _ := EncodeBase62(n)
	return s
}

// DecodeTitle unpacks a title field. An empty field means no title.
// Byte sequences that are not valid UTF-8 decode to U+FFFD.
func DecodeTitle(field string) (string, error) {
	if field == "" {
		return "", nil
	}

	n, err := DecodeBase62(field)
	if err != nil {
		return "", serviceErrors.NewInvalidEncodingError("codec.DecodeTitle", "invalid title field", err)
	}

	b := n.Bytes()
	if !utf8.Valid(b) {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError)), nil
	}
	return string(b), nil
}
