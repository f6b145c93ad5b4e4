package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns exactly 32 lowercase hex characters (no separators/prefixes).
// Every entity identifier in the system is assigned from here at creation time.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// MaskSSN keeps only the last four digits of a social security number,
// e.g. "123-45-6789" -> "***-**-6789". Stored applicants never carry the
// full number.
func MaskSSN(ssn string) string {
	digits := make([]byte, 0, len(ssn))
	for i := 0; i < len(ssn); i++ {
		if ssn[i] >= '0' && ssn[i] <= '9' {
			digits = append(digits, ssn[i])
		}
	}
	if len(digits) < 4 {
		return "***-**-****"
	}
	return "***-**-" + string(digits[len(digits)-4:])
}
