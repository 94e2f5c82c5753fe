package swt

import (
	"crypto/hmac"
	"strings"
	"unicode/utf8"
)

// Token pairs a payload with the HMAC-SHA256 signature over its
// canonical text. A Token returned by New carries a signature derived
// from the given secret; a Token returned by Parse carries whatever
// signature the wire text claimed, unverified. Call IsValid before
// trusting a parsed token.
//
// Tokens are immutable after construction and safe for concurrent use.
// No Token retains the secret it was created or validated with.
type Token[T any] struct {
	payload   T
	signature string
}

// New creates a signed token for payload. It fails only if the payload
// cannot be serialized to its canonical textual form.
func New[T any](payload T, secret []byte) (*Token[T], error) {
	signature, err := deriveSignature(payload, secret)
	if err != nil {
		return nil, err
	}
	return &Token[T]{payload: payload, signature: signature}, nil
}

// Payload returns the carried payload value.
func (t *Token[T]) Payload() T { return t.payload }

// Signature returns the signature segment in wire (base64) form.
func (t *Token[T]) Signature() string { return t.signature }

// Encode renders the token as wire text:
//
//	<base64(serialized payload)>.<signature>
//
// The payload is re-serialized on every call rather than memoized, so
// Encode can fail if serialization does.
func (t *Token[T]) Encode() (string, error) {
	text, err := marshalPayload(t.payload)
	if err != nil {
		return "", err
	}
	return wireEncoding.EncodeToString(text) + "." + t.signature, nil
}

// Parse reconstructs a token from wire text without verifying it. The
// payload segment is base64-decoded, checked for UTF-8 validity, and
// parsed into T; the signature segment is kept verbatim. The result is
// untrusted until IsValid reports true.
//
// Splitting on the first '.' is unambiguous because the pinned base64
// alphabet never produces one.
func Parse[T any](wire string) (*Token[T], error) {
	body, signature, found := strings.Cut(wire, ".")
	if !found || signature == "" {
		return nil, &FormatError{Missing: "signature"}
	}
	if body == "" {
		return nil, &FormatError{Missing: "payload"}
	}

	raw, err := decodeSegment(body)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, &EncodingError{}
	}

	var payload T
	if err := unmarshalPayload(raw, &payload); err != nil {
		return nil, err
	}

	return &Token[T]{payload: payload, signature: signature}, nil
}

// IsValid reports whether the token's signature matches a fresh
// derivation under secret. The comparison is constant time over the
// full signature length. Any internal failure during re-derivation
// collapses to false: validation is a yes/no decision, and callers
// cannot distinguish a mismatch from a payload that could not even be
// re-serialized.
func (t *Token[T]) IsValid(secret []byte) bool {
	signature, err := deriveSignature(t.payload, secret)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(t.signature), []byte(signature))
}
