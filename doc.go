// Package swt implements a compact HMAC-SHA256 signed bearer token.
//
// A token binds an arbitrary payload to a signature computed over the
// payload's canonical textual form and a shared secret. On the wire a
// token is a single string of two base64 segments joined by a dot:
//
//	<base64(serialized payload)> "." <base64(HMAC-SHA256(secret, serialized payload))>
//
// Both segments use the standard base64 alphabet without padding.
// Unlike JWT there is no header segment and no algorithm negotiation:
// HMAC-SHA256 is the only scheme, so a token cannot be downgraded to
// a weaker one.
//
// Features:
// - Generic Token[T] over any JSON-serializable payload type
// - Pluggable payload text forms via PayloadMarshaler and PayloadUnmarshaler
// - Constant-time signature validation
// - Ready-made Claims payload that also satisfies golang-jwt's jwt.Claims
// - Optional TokenStore collaborators (in-memory, Redis) for issued tokens
//
// The core never interprets payload contents: a Claims expiry is
// advisory and enforcement belongs to the caller.
package swt
