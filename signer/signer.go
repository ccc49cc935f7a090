// Package signer implements AWS Signature Version 4 (SigV4) request
// signing: canonicalization, payload hashing, key derivation, and emission
// of the Authorization, X-Amz-Date, and X-Amz-Security-Token headers.
//
// The signer operates on the request façade from the request package and
// never reads the system clock; the caller supplies the signing instant,
// which keeps signing deterministic. Signing a request that carries a
// single-pass body installs a tee stream on the request so the body can
// still be transmitted after hashing.
package signer

import (
	"time"

	"github.com/aws/smithy-go/logging"

	"github.com/ochsenreither/go-sigv4/request"
)

// Options configures a Signer.
type Options struct {
	// Logger receives signing milestone output when LogSigning is set. A
	// nil logger disables logging; signing behavior is identical either
	// way.
	Logger logging.Logger

	// LogSigning enables logging of the canonical request and the string
	// to sign.
	LogSigning bool

	// SeparateHeaderValues emits repeated header names as separate
	// canonical entries in input order rather than the default
	// comma-joined value list.
	SeparateHeaderValues bool

	// ExcludedHeaders removes matching lowercase header names from the
	// signed set. Host and x-amz-* headers are always signed when present,
	// regardless of this rule. A nil rule excludes nothing: the signer
	// signs every header the caller provided.
	ExcludedHeaders Rule
}

// Signer applies AWS Signature Version 4 signing to requests. A Signer has
// no mutable state and may be shared across goroutines signing distinct
// requests.
type Signer struct {
	options Options
}

// NewSigner returns a new SigV4 Signer.
func NewSigner(optFns ...func(*Options)) *Signer {
	options := Options{}
	for _, fn := range optFns {
		fn(&options)
	}
	return &Signer{options: options}
}

// SignRequest signs req with the default signer options.
func SignRequest(req *request.Request, creds Credentials, region, service string, when time.Time) error {
	return NewSigner().SignRequest(req, creds, region, service, when)
}

// SignRequest computes the SigV4 signature of req and appends the
// Authorization, X-Amz-Date, and (when a session token is present)
// X-Amz-Security-Token headers.
//
// The request is mutated in two ways only: the signing headers are appended
// after all headers present at entry, and a body that is not already a tee
// stream is replaced by a tee stream wrapping it, unless the request carries
// an X-Amz-Content-Sha256 header. On error the header set is untouched, though a
// tee installed before the failure remains on the request.
func (s *Signer) SignRequest(req *request.Request, creds Credentials, region, service string, when time.Time) error {
	if req == nil {
		return newError(KindInvalidArgument, "request is required")
	}
	if !creds.HasKeys() {
		return newError(KindInvalidArgument, "credentials are required")
	}
	if region == "" {
		return newError(KindInvalidArgument, "region is required")
	}
	if service == "" {
		return newError(KindInvalidArgument, "service is required")
	}
	if when.IsZero() {
		return newError(KindInvalidArgument, "signing instant is required")
	}
	if req.Method() == "" {
		return newError(KindInvalidArgument, "request method is required")
	}

	st := NewSigningTime(when)
	amzDate := st.TimeFormat()

	payloadHash, err := resolvePayloadHash(req)
	if err != nil {
		return err
	}

	entries, err := collectCanonicalHeaders(req, amzDate, s.options.ExcludedHeaders)
	if err != nil {
		return err
	}
	signedHeadersStr, canonicalHeaderStr := buildCanonicalHeaders(entries, s.options.SeparateHeaderValues)

	canonicalString := BuildCanonicalString(
		req.Method(),
		canonicalPath(req.Path()),
		canonicalQuery(req.Query()),
		canonicalHeaderStr,
		signedHeadersStr,
		payloadHash,
	)
	s.logf("canonical request:\n%s", canonicalString)

	credentialScope := BuildCredentialScope(st, region, service)

	strToSign := BuildStringToSign(
		SigningAlgorithm,
		amzDate,
		credentialScope,
		canonicalString,
	)
	s.logf("string to sign:\n%s", strToSign)

	key := deriveSigningKey(creds.SecretAccessKey, st.ShortTimeFormat(), region, service)
	signature := BuildSignature(key, strToSign)
	wipe(key)

	req.AddHeader(AuthorizationHeader, BuildAuthorizationHeader(
		creds.AccessKeyID+"/"+credentialScope,
		signedHeadersStr,
		signature,
	))
	req.AddHeader(AmzDateKey, amzDate)
	if creds.SessionToken != "" {
		req.AddHeader(AmzSecurityTokenKey, creds.SessionToken)
	}

	return nil
}

// logf emits a signing milestone to the configured logger.
func (s *Signer) logf(format string, args ...interface{}) {
	if !s.options.LogSigning || s.options.Logger == nil {
		return
	}
	s.options.Logger.Logf(logging.Debug, format, args...)
}
