package swt

import (
	"crypto/hmac"
	"crypto/sha256"
)

// deriveSignature computes HMAC-SHA256 over the payload's canonical
// text keyed by secret and returns the digest in wire (base64) form.
// The MAC itself cannot fail; only serialization can.
func deriveSignature[T any](payload T, secret []byte) (string, error) {
	text, err := marshalPayload(payload)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(text)
	return wireEncoding.EncodeToString(mac.Sum(nil)), nil
}
