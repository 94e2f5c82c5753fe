package swt

import "fmt"

// DecodeError reports a wire segment that is not valid base64 under
// the pinned alphabet and padding policy.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("swt: error in base64 encoding: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodingError reports a decoded payload segment that is not valid
// UTF-8 text.
type EncodingError struct{}

func (e *EncodingError) Error() string {
	return "swt: error in utf8 encoding: payload segment is not valid UTF-8"
}

// FormatError reports wire text missing the payload or signature
// segment. Missing names the absent part.
type FormatError struct {
	Missing string // "payload" or "signature"
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("swt: error in token format: missing %s segment", e.Missing)
}

// SerializationError reports a payload that could not be converted to
// or from its canonical textual form. Op is "marshal" or "unmarshal".
type SerializationError struct {
	Op  string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("swt: error in payload %s: %v", e.Op, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// PayloadParseError reports a failure inside a payload-supplied
// parser (PayloadUnmarshaler). It is distinct from SerializationError
// so callers can tell a malformed envelope from bad payload contents.
type PayloadParseError struct {
	Err error
}

func (e *PayloadParseError) Error() string {
	return fmt.Sprintf("swt: error in parsing payload: %v", e.Err)
}

func (e *PayloadParseError) Unwrap() error { return e.Err }
