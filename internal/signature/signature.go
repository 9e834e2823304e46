// Package signature verifies the X-Hub-Signature headers the Messenger
// Platform attaches to webhook deliveries.
package signature

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // the platform signs with HMAC-SHA1
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"hash"
	"strings"
)

const (
	// Header carries the HMAC-SHA1 signature of the raw body.
	Header = "X-Hub-Signature"
	// Header256 carries the HMAC-SHA256 signature of the raw body.
	Header256 = "X-Hub-Signature-256"
)

var (
	ErrMissingSignature   = errors.New("missing signature")
	ErrMalformedSignature = errors.New("malformed signature")
	ErrInvalidSignature   = errors.New("invalid signature")
)

var algorithms = map[string]func() hash.Hash{
	"sha1":   sha1.New,
	"sha256": sha256.New,
}

// Verify checks header, of the form "sha1=<hex>" or "sha256=<hex>", against
// the HMAC of body keyed with secret. body must be the bytes as received.
func Verify(secret string, body []byte, header string) error {
	header = strings.TrimSpace(header)
	if header == "" {
		return ErrMissingSignature
	}
	method, digest, ok := strings.Cut(header, "=")
	if !ok {
		return ErrMalformedSignature
	}
	newHash, ok := algorithms[strings.ToLower(method)]
	if !ok {
		return ErrMalformedSignature
	}
	provided, err := hex.DecodeString(digest)
	if err != nil {
		return ErrMalformedSignature
	}

	if !hmac.Equal(provided, sum(newHash, secret, body)) {
		return ErrInvalidSignature
	}
	return nil
}

// Sign returns the "sha1=<hex>" header value for body.
func Sign(secret string, body []byte) string {
	return "sha1=" + hex.EncodeToString(sum(sha1.New, secret, body))
}

// Sign256 returns the "sha256=<hex>" header value for body.
func Sign256(secret string, body []byte) string {
	return "sha256=" + hex.EncodeToString(sum(sha256.New, secret, body))
}

func sum(newHash func() hash.Hash, secret string, body []byte) []byte {
	mac := hmac.New(newHash, []byte(secret))
	_, _ = mac.Write(body)
	return mac.Sum(nil)
}
