package assemble

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	fingerprintSaltLen    = 32
	fingerprintIterations = 10000
	fingerprintKeyLen     = 64
)

// Fingerprint derives a salted digest over the admin rendition,
// letting a stored submission be matched against a later re-submission
// without retaining the answers themselves. The result embeds the salt
// as "base64(salt):base64(digest)".
func Fingerprint(data SubmissionData) (string, error) {
	salt := make([]byte, fingerprintSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("assemble: generate fingerprint salt: %w", err)
	}
	return encodeFingerprint(salt, digest(data, salt)), nil
}

// MatchesFingerprint reports whether data derives the given
// fingerprint under its embedded salt.
func MatchesFingerprint(data SubmissionData, fingerprint string) bool {
	parts := strings.SplitN(fingerprint, ":", 2)
	if len(parts) != 2 {
		return false
	}
	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	want := encodeFingerprint(salt, digest(data, salt))
	return subtle.ConstantTimeCompare([]byte(want), []byte(fingerprint)) == 1
}

func digest(data SubmissionData, salt []byte) []byte {
	var base strings.Builder
	for _, f := range data.FormData {
		base.WriteString(f.Question)
		base.WriteString(f.Answer)
	}
	return pbkdf2.Key([]byte(base.String()), salt, fingerprintIterations, fingerprintKeyLen, sha512.New)
}

func encodeFingerprint(salt, key []byte) string {
	return base64.StdEncoding.EncodeToString(salt) + ":" + base64.StdEncoding.EncodeToString(key)
}
