package signer

import (
	"crypto/hmac"
	"crypto/sha256"
)

// deriveSigningKey performs the SigV4 key derivation chain:
//   - kDate = HMAC-SHA256("AWS4" + secret, date)
//   - kRegion = HMAC-SHA256(kDate, region)
//   - kService = HMAC-SHA256(kRegion, service)
//   - kSigning = HMAC-SHA256(kService, "aws4_request")
//
// Every intermediate key is zeroized before the function returns. The
// caller wipes the returned signing key once the signature is produced.
// Reference: AWS SDK v4 signer internal/v4/cache.go deriveKey function
func deriveSigningKey(secret, dateStamp, region, service string) []byte {
	kSecret := []byte("AWS4" + secret)
	defer wipe(kSecret)

	kDate := hmacSHA256(kSecret, []byte(dateStamp))
	defer wipe(kDate)

	kRegion := hmacSHA256(kDate, []byte(region))
	defer wipe(kRegion)

	kService := hmacSHA256(kRegion, []byte(service))
	defer wipe(kService)

	return hmacSHA256(kService, []byte("aws4_request"))
}

// hmacSHA256 computes HMAC-SHA256 of data with the given key.
// Reference: AWS SDK v4 signer internal/v4/hmac.go HMACSHA256
func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

// wipe zeroizes b.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
