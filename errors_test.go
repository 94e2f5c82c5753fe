package swt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorTaxonomy(t *testing.T) {
	t.Run("No Delimiter", func(t *testing.T) {
		_, err := Parse[Claims]("thereisnodothere")
		require.Error(t, err)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "signature", formatErr.Missing)
	})

	t.Run("Empty Wire Text", func(t *testing.T) {
		_, err := Parse[Claims]("")
		require.Error(t, err)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "signature", formatErr.Missing)
	})

	t.Run("Empty Payload Segment", func(t *testing.T) {
		_, err := Parse[Claims]("." + testSignatureSegment)
		require.Error(t, err)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "payload", formatErr.Missing)
	})

	t.Run("Empty Signature Segment", func(t *testing.T) {
		_, err := Parse[Claims](testPayloadSegment + ".")
		require.Error(t, err)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "signature", formatErr.Missing)
	})

	t.Run("Non-Base64 Payload Segment", func(t *testing.T) {
		_, err := Parse[Claims]("$$not base64$$." + testSignatureSegment)
		require.Error(t, err)

		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})

	t.Run("Padded Payload Segment Is Rejected", func(t *testing.T) {
		// The wire contract pins the unpadded policy; '=' is outside
		// the raw alphabet.
		_, err := Parse[map[string]int](wireEncoding.EncodeToString([]byte(`{"a":1}`)) + "==." + testSignatureSegment)
		require.Error(t, err)

		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})

	t.Run("Payload Bytes Not UTF-8", func(t *testing.T) {
		segment := wireEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd})
		_, err := Parse[Claims](segment + "." + testSignatureSegment)
		require.Error(t, err)

		var encodingErr *EncodingError
		assert.ErrorAs(t, err, &encodingErr)
	})

	t.Run("Payload Not Valid JSON", func(t *testing.T) {
		segment := wireEncoding.EncodeToString([]byte(`{"jti":`))
		_, err := Parse[Claims](segment + "." + testSignatureSegment)
		require.Error(t, err)

		var serErr *SerializationError
		require.ErrorAs(t, err, &serErr)
		assert.Equal(t, "unmarshal", serErr.Op)
	})
}

func TestSerializationErrors(t *testing.T) {
	t.Run("New Fails On Unserializable Payload", func(t *testing.T) {
		_, err := New(make(chan int), testSecret)
		require.Error(t, err)

		var serErr *SerializationError
		require.ErrorAs(t, err, &serErr)
		assert.Equal(t, "marshal", serErr.Op)
	})

	t.Run("IsValid Swallows Derivation Failures", func(t *testing.T) {
		// A parsed-then-mutilated token cannot exist, so build the
		// degenerate case directly: a token whose payload can no
		// longer be serialized must simply be invalid.
		token := &Token[chan int]{payload: make(chan int), signature: "whatever"}
		assert.False(t, token.IsValid(testSecret))
	})

	t.Run("Errors Unwrap To Their Cause", func(t *testing.T) {
		_, err := New(make(chan int), testSecret)
		require.Error(t, err)
		assert.Error(t, errors.Unwrap(err))
	})
}
