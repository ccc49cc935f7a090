package signer

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/ochsenreither/go-sigv4/request"
	"github.com/ochsenreither/go-sigv4/stream"
)

// resolvePayloadHash returns the hex SHA256 of the request body.
//
// A pre-supplied X-Amz-Content-Sha256 header wins and the body stream is
// never touched. A request with no body hashes to EmptyStringSHA256.
// Otherwise the body is wrapped in a tee stream (unless it already is one),
// the tee replaces the body on the request, and the hash is computed from a
// fresh branch so the body remains readable from offset zero afterwards.
func resolvePayloadHash(req *request.Request) (string, error) {
	if v, ok := req.HeaderValue(ContentSHAKey); ok {
		if !isLowerHex64(v) {
			return "", newError(KindInvalidArgument, "malformed %s header value %q", ContentSHAKey, v)
		}
		return v, nil
	}

	body := req.Body()
	if body == nil {
		return EmptyStringSHA256, nil
	}

	tee, ok := body.(*stream.Tee)
	if !ok {
		tee = stream.NewTee(body)
		req.SetBody(tee)
	}

	branch := tee.NewBranch()
	h := sha256.New()
	buf := make([]byte, 8192)
	for {
		n, err := branch.Read(buf)
		if n > 0 {
			if _, werr := h.Write(buf[:n]); werr != nil {
				return "", wrapError(KindInternalHash, werr, "hashing request body")
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", wrapStreamError(err, "reading request body")
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
