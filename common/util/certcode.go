package util

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// CertificateProgramTag prefixes every certificate code issued by the platform.
const CertificateProgramTag = "SINARI"

const codeSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const codeSuffixLength = 6

// CertificateCode builds a single-issue code: <TAG>-<year>-<unix-millis>.
func CertificateCode(now time.Time) string {
	return fmt.Sprintf("%s-%d-%d", CertificateProgramTag, now.Year(), now.UnixMilli())
}

// BatchCertificateCode appends a random suffix so codes generated within the
// same millisecond stay distinct across a batch.
func BatchCertificateCode(now time.Time) string {
	return CertificateCode(now) + "-" + randomCodeSuffix()
}

// BatchCertificateCodes generates n codes for one issuance instant. The seen
// set makes intra-batch uniqueness a guarantee rather than a probability.
func BatchCertificateCodes(now time.Time, n int) []string {
	codes := make([]string, 0, n)
	seen := make(map[string]struct{}, n)

	for len(codes) < n {
		code := BatchCertificateCode(now)
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	return codes
}

// CertificateHash is the lowercase hex SHA-256 digest of a certificate code.
// The hash is never stored independently of the code it was derived from.
func CertificateHash(code string) string {
	digest := sha256.Sum256([]byte(code))
	return hex.EncodeToString(digest[:])
}

func randomCodeSuffix() string {
	buf := make([]byte, codeSuffixLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}

	for i, b := range buf {
		buf[i] = codeSuffixAlphabet[int(b)%len(codeSuffixAlphabet)]
	}

	return string(buf)
}
