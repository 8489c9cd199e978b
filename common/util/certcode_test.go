package util

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	singleCodePattern = regexp.MustCompile(`^SINARI-\d{4}-\d+$`)
	batchCodePattern  = regexp.MustCompile(`^SINARI-\d{4}-\d+-[a-z0-9]{6}$`)
)

func TestCertificateCode_Format(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

	code := CertificateCode(now)

	assert.Regexp(t, singleCodePattern, code)
	assert.Contains(t, code, "SINARI-2025-")
}

func TestCertificateCode_Deterministic(t *testing.T) {
	now := time.Now()

	assert.Equal(t, CertificateCode(now), CertificateCode(now),
		"Same issuance instant must produce the same single-issue code")
}

func TestBatchCertificateCode_Format(t *testing.T) {
	code := BatchCertificateCode(time.Now())

	assert.Regexp(t, batchCodePattern, code)
}

// Codes generated for the same millisecond must never collide within a batch.
func TestBatchCertificateCodes_DistinctAtSameInstant(t *testing.T) {
	now := time.Now()

	codes := BatchCertificateCodes(now, 1000)
	require.Len(t, codes, 1000)

	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		assert.Regexp(t, batchCodePattern, code)
		_, dup := seen[code]
		require.False(t, dup, "Duplicate code generated: %s", code)
		seen[code] = struct{}{}
	}
}

func TestCertificateHash_KnownVector(t *testing.T) {
	// sha256("abc")
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		CertificateHash("abc"))
}

func TestCertificateHash_Shape(t *testing.T) {
	hash := CertificateHash(BatchCertificateCode(time.Now()))

	assert.Len(t, hash, 64)
	assert.Regexp(t, `^[0-9a-f]{64}$`, hash)
}

func TestCertificateHash_Deterministic(t *testing.T) {
	code := CertificateCode(time.Now())

	assert.Equal(t, CertificateHash(code), CertificateHash(code))
	assert.NotEqual(t, CertificateHash(code), CertificateHash(code+"x"))
}
