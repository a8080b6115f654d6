// Package codec implements the countdown share token.
//
// A token packs a target instant, a timezone offset and an optional title into
// a short alphanumeric string that can be used as a URL path segment:
//
//	+--------+----------------+--------+-----------------+
//	| header | timestamp      | offset | title           |
//	| 1 char | header chars   | 2 char | remaining chars |
//	+--------+----------------+--------+-----------------+
//
//   - header: base62 digit giving the length of the timestamp field (1..61)
//   - timestamp: base62 seconds since the Unix epoch, arbitrary precision
//   - offset: base62 index of the offset in 15 minute steps from UTC-12:00,
//     zero padded to two characters
//   - title: base62 encoding of the title's UTF-8 bytes packed into one integer,
//     empty when there is no title
//
// All functions are pure and safe for concurrent use. The alphabet is part of
// the wire format; reordering it invalidates every issued token.
package codec
