// Package verification authenticates answers to verifiable fields.
// A verified answer carries a signature minted when the submitter
// proved control of the address or number; validation replays the
// check server-side.
package verification

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow bounds how old a signature may be before it no longer
// authenticates.
const DefaultWindow = 4 * time.Hour

const signatureVersion = "v1"

// Verifier checks that a signature binds the given field and answer
// and is recent as of now.
type Verifier interface {
	Verify(signature, fieldID, answer string, now time.Time) bool
}

// HMACVerifier signs and verifies answers with a shared secret. The
// signature is "v1:<unix seconds>:<base64 HMAC-SHA256>", where the MAC
// covers the field identifier, the answer and the mint time.
type HMACVerifier struct {
	secret []byte
	window time.Duration
}

// Option customises an HMACVerifier.
type Option func(*HMACVerifier)

// WithWindow overrides the signature recency window.
func WithWindow(window time.Duration) Option {
	return func(v *HMACVerifier) {
		v.window = window
	}
}

// NewHMAC builds an HMACVerifier over the shared secret.
func NewHMAC(secret []byte, opts ...Option) *HMACVerifier {
	v := &HMACVerifier{secret: secret, window: DefaultWindow}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// Sign mints a signature for the answer as of now.
func (v *HMACVerifier) Sign(fieldID, answer string, now time.Time) string {
	ts := now.Unix()
	return fmt.Sprintf("%s:%d:%s", signatureVersion, ts, v.mac(fieldID, answer, ts))
}

// Verify reports whether signature authenticates the answer for the
// field and was minted within the recency window. Future-dated
// signatures never authenticate.
func (v *HMACVerifier) Verify(signature, fieldID, answer string, now time.Time) bool {
	parts := strings.SplitN(signature, ":", 3)
	if len(parts) != 3 || parts[0] != signatureVersion {
		return false
	}
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return false
	}
	minted := time.Unix(ts, 0)
	if minted.After(now) || now.Sub(minted) > v.window {
		return false
	}
	want := v.mac(fieldID, answer, ts)
	return subtle.ConstantTimeCompare([]byte(parts[2]), []byte(want)) == 1
}

func (v *HMACVerifier) mac(fieldID, answer string, ts int64) string {
	h := hmac.New(sha256.New, v.secret)
	fmt.Fprintf(h, "%s|%s|%d", fieldID, answer, ts)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
