package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator computes a content checksum.
type Calculator interface {
	// Calculate returns a hex digest of content as given.
	Calculate(content []byte) string
}

// SHA256 implements Calculator using SHA-256.
// SHA256 is a zero-size type; pass it by value.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// Calculate computes SHA-256 of raw content.
func (c SHA256) Calculate(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
