package messaging

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Message headers carried by signed broker messages
const (
	HeaderEventID   = "Market-Event-Id"
	HeaderEventKind = "Market-Event-Kind"
	HeaderTimestamp = "Market-Timestamp"
	HeaderSignature = "Market-Signature"
)

const signaturePrefix = "sha256="

// Sign generates an HMAC-SHA256 signature of a message body
//
// The signed payload is {timestamp}.{id}.{body} so receivers can check
// the timestamp against replays, the id for deduplication and the body integrity.
// The result has the form "sha256=<hex_signature>".
func Sign(secret string, timestamp int64, id string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(signaturePayload(timestamp, id, body))
	return signaturePrefix + hex.EncodeToString(h.Sum(nil))
}

// Verify reports whether signature is the signature of the message body
func Verify(secret string, timestamp int64, id string, body []byte, signature string) bool {
	if !strings.HasPrefix(signature, signaturePrefix) {
		return false
	}

	got, err := hex.DecodeString(strings.TrimPrefix(signature, signaturePrefix))
	if err != nil {
		return false
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(signaturePayload(timestamp, id, body))
	return hmac.Equal(got, h.Sum(nil))
}

func signaturePayload(timestamp int64, id string, body []byte) []byte {
	return append([]byte(fmt.Sprintf("%d.%s.", timestamp, id)), body...)
}
