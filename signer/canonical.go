package signer

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/ochsenreither/go-sigv4/request"
)

// BuildCredentialScope builds the SigV4 credential scope.
// Format: date/region/service/aws4_request
// Reference: AWS SDK v4 signer internal/v4/scope.go
func BuildCredentialScope(t SigningTime, region, service string) string {
	return strings.Join([]string{
		t.ShortTimeFormat(),
		region,
		service,
		"aws4_request",
	}, "/")
}

// canonicalPath normalizes the path portion of the request target: empty
// and "." segments are dropped, ".." pops the previous segment, and every
// retained segment is percent-encoded from its literal bytes. The result
// always starts with "/".
func canonicalPath(path string) string {
	if path == "" {
		return "/"
	}

	segments := strings.Split(path, "/")
	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "", ".":
		case "..":
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
		default:
			kept = append(kept, seg)
		}
	}

	var buf strings.Builder
	buf.Grow(len(path) + 1)
	for _, seg := range kept {
		buf.WriteByte('/')
		escapeTo(&buf, seg)
	}
	if buf.Len() == 0 {
		return "/"
	}
	return buf.String()
}

// canonicalQuery canonicalizes the raw query string: each key[=value] pair
// is percent-encoded (space becomes %20, never '+'), a missing '=' becomes
// "key=", and pairs are sorted by encoded key with encoded value as the tie
// breaker. An absent query yields the empty string.
func canonicalQuery(query string) string {
	if query == "" {
		return ""
	}

	type pair struct {
		key   string
		value string
	}

	items := strings.Split(query, "&")
	pairs := make([]pair, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		k, v, _ := strings.Cut(item, "=")
		pairs = append(pairs, pair{key: escape(k), value: escape(v)})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].key != pairs[j].key {
			return pairs[i].key < pairs[j].key
		}
		return pairs[i].value < pairs[j].value
	})

	var buf strings.Builder
	buf.Grow(len(query))
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(p.key)
		buf.WriteByte('=')
		buf.WriteString(p.value)
	}
	return buf.String()
}

// canonicalHeader is one (lowercase name, folded value) pair of the signed
// header list.
type canonicalHeader struct {
	name  string
	value string
}

// collectCanonicalHeaders builds the canonical header sequence from the
// request headers plus the pending X-Amz-Date value, sorted stably by
// lowercase name. Same-name headers keep their mutual input order. Header
// values outside the SigV4-valid byte range are rejected.
func collectCanonicalHeaders(req *request.Request, amzDate string, excluded Rule) ([]canonicalHeader, error) {
	headers := req.Headers()
	entries := make([]canonicalHeader, 0, len(headers)+1)
	for _, h := range headers {
		if !validHeaderValue(h.Value) {
			return nil, newError(KindEncoding, "header %s value contains bytes outside the SigV4 character range", h.Name)
		}
		name := strings.ToLower(h.Name)
		if !shouldSignHeader(name, excluded) {
			continue
		}
		entries = append(entries, canonicalHeader{
			name:  name,
			value: foldHeaderValue(h.Value),
		})
	}
	entries = append(entries, canonicalHeader{name: "x-amz-date", value: amzDate})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})

	return entries, nil
}

// buildCanonicalHeaders renders the sorted entries as the canonical headers
// block and the signed headers string. Repeated names are comma-joined into
// a single line unless separate is set, in which case each occurrence is
// emitted as its own line.
// Reference: AWS SDK v4 signer v4.go buildCanonicalHeaders
func buildCanonicalHeaders(entries []canonicalHeader, separate bool) (signedHeaders, canonicalHeadersStr string) {
	var names strings.Builder
	var block strings.Builder

	for i := 0; i < len(entries); i++ {
		first := i == 0 || entries[i].name != entries[i-1].name
		if first {
			if names.Len() > 0 {
				names.WriteByte(';')
			}
			names.WriteString(entries[i].name)
		}

		if separate || first {
			block.WriteString(entries[i].name)
			block.WriteByte(':')
			block.WriteString(entries[i].value)
			if !separate {
				for j := i + 1; j < len(entries) && entries[j].name == entries[i].name; j++ {
					block.WriteByte(',')
					block.WriteString(entries[j].value)
				}
			}
			block.WriteByte('\n')
		}
	}

	return names.String(), block.String()
}

// BuildCanonicalString builds the canonical request string.
// Format: METHOD\nURI\nQUERY\nHEADERS\nSIGNED_HEADERS\nPAYLOAD_HASH
// Reference: AWS SDK v4 signer v4.go buildCanonicalString
func BuildCanonicalString(method, uri, query, canonicalHeaders, signedHeaders, payloadHash string) string {
	return strings.Join([]string{
		method,
		uri,
		query,
		canonicalHeaders,
		signedHeaders,
		payloadHash,
	}, "\n")
}

// BuildStringToSign builds the string to sign.
// Format: ALGORITHM\nTIMESTAMP\nSCOPE\nHASH(CANONICAL_REQUEST)
// Reference: AWS SDK v4 signer v4.go buildStringToSign
func BuildStringToSign(algorithm, timestamp, credentialScope, canonicalRequest string) string {
	hash := sha256.Sum256([]byte(canonicalRequest))
	return strings.Join([]string{
		algorithm,
		timestamp,
		credentialScope,
		hex.EncodeToString(hash[:]),
	}, "\n")
}

// BuildSignature computes the signature over the string to sign.
// Reference: AWS SDK v4 signer v4.go buildSignature
func BuildSignature(key []byte, stringToSign string) string {
	h := hmacSHA256(key, []byte(stringToSign))
	defer wipe(h)
	return hex.EncodeToString(h)
}

// BuildAuthorizationHeader builds the Authorization header value.
// Format: ALGORITHM Credential=..., SignedHeaders=..., Signature=...
// Reference: AWS SDK v4 signer v4.go buildAuthorizationHeader
func BuildAuthorizationHeader(credentialStr, signedHeadersStr, signature string) string {
	const credential = "Credential="
	const signedHeaders = "SignedHeaders="
	const signatureKey = "Signature="
	const commaSpace = ", "

	var parts strings.Builder
	parts.Grow(
		len(SigningAlgorithm) + 1 +
			len(credential) + len(credentialStr) + 2 +
			len(signedHeaders) + len(signedHeadersStr) + 2 +
			len(signatureKey) + len(signature),
	)
	parts.WriteString(SigningAlgorithm)
	parts.WriteRune(' ')
	parts.WriteString(credential)
	parts.WriteString(credentialStr)
	parts.WriteString(commaSpace)
	parts.WriteString(signedHeaders)
	parts.WriteString(signedHeadersStr)
	parts.WriteString(commaSpace)
	parts.WriteString(signatureKey)
	parts.WriteString(signature)
	return parts.String()
}
