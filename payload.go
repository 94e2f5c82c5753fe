package swt

import "encoding/json"

// PayloadMarshaler is implemented by payload types that control their
// own canonical textual form. The contract is determinism: the same
// value must always produce the same bytes, because the verifier
// re-derives the signature from an independent serialization. Use a
// value receiver so the method is visible on payload values.
type PayloadMarshaler interface {
	MarshalPayload() ([]byte, error)
}

// PayloadUnmarshaler is implemented by payload types that parse their
// own textual form on the intake path. Use a pointer receiver, as
// with json.Unmarshaler.
type PayloadUnmarshaler interface {
	UnmarshalPayload(text []byte) error
}

// marshalPayload produces the canonical text the signature is derived
// from. Payloads without a PayloadMarshaler fall back to encoding/json,
// which is deterministic for a fixed value: struct fields serialize in
// declaration order and map keys are sorted. Any non-determinism here
// silently breaks verification; that hazard is inherent to signing the
// serialized form.
func marshalPayload[T any](payload T) ([]byte, error) {
	if m, ok := any(payload).(PayloadMarshaler); ok {
		text, err := m.MarshalPayload()
		if err != nil {
			return nil, &SerializationError{Op: "marshal", Err: err}
		}
		return text, nil
	}
	text, err := json.Marshal(payload)
	if err != nil {
		return nil, &SerializationError{Op: "marshal", Err: err}
	}
	return text, nil
}

// unmarshalPayload reconstructs a payload from its textual form,
// preferring the payload's own parser over the JSON fallback.
func unmarshalPayload[T any](text []byte, payload *T) error {
	if u, ok := any(payload).(PayloadUnmarshaler); ok {
		if err := u.UnmarshalPayload(text); err != nil {
			return &PayloadParseError{Err: err}
		}
		return nil
	}
	if err := json.Unmarshal(text, payload); err != nil {
		return &SerializationError{Op: "unmarshal", Err: err}
	}
	return nil
}
