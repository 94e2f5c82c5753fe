package swt

import "encoding/base64"

// wireEncoding is the pinned codec for both token segments: standard
// base64 alphabet, no padding. It is part of the wire contract, not a
// per-call option; changing it invalidates every previously issued
// token. The alphabet never produces '.', which keeps the segment
// delimiter unambiguous.
var wireEncoding = base64.RawStdEncoding

// decodeSegment decodes one wire segment, mapping malformed input to
// a DecodeError.
func decodeSegment(segment string) ([]byte, error) {
	raw, err := wireEncoding.DecodeString(segment)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return raw, nil
}
