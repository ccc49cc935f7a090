package signer

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochsenreither/go-sigv4/request"
	"github.com/ochsenreither/go-sigv4/stream"
)

// brokenStream fails every operation, to prove the signer leaves the body
// untouched when a payload hash is pre-supplied.
type brokenStream struct {
	err error
}

func (b *brokenStream) Read(p []byte) (int, error)         { return 0, b.err }
func (b *brokenStream) Seek(o int64, w int) (int64, error) { return 0, b.err }
func (b *brokenStream) Status() stream.Status              { return stream.Status{} }
func (b *brokenStream) Len() (int64, bool)                 { return 0, false }

func TestResolvePayloadHashNoBody(t *testing.T) {
	req := request.New("GET", "/")

	hash, err := resolvePayloadHash(req)
	require.NoError(t, err)
	assert.Equal(t, EmptyStringSHA256, hash)
	assert.Nil(t, req.Body())
}

func TestResolvePayloadHashHeaderWins(t *testing.T) {
	supplied := "9b7a28bdd098b4b42887609d12a9a0a776a8f73839c40c5c9f5a202e3f5dc03a"

	req := request.New("PUT", "/key")
	req.AddHeader("x-amz-content-sha256", supplied)
	body := &brokenStream{err: errors.New("must not be read")}
	req.SetBody(body)

	hash, err := resolvePayloadHash(req)
	require.NoError(t, err)
	assert.Equal(t, supplied, hash)
	assert.Same(t, stream.Stream(body), req.Body(), "body must not be replaced")
}

func TestResolvePayloadHashMalformedHeader(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "too short", value: "abc123"},
		{name: "uppercase hex", value: "9B7A28BDD098B4B42887609D12A9A0A776A8F73839C40C5C9F5A202E3F5DC03A"},
		{name: "non-hex characters", value: "zz7a28bdd098b4b42887609d12a9a0a776a8f73839c40c5c9f5a202e3f5dc03a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request.New("PUT", "/key")
			req.AddHeader("X-Amz-Content-Sha256", tt.value)

			_, err := resolvePayloadHash(req)
			require.Error(t, err)
			kind, ok := KindOf(err)
			assert.True(t, ok)
			assert.Equal(t, KindInvalidArgument, kind)
		})
	}
}

func TestResolvePayloadHashComputesAndPreservesBody(t *testing.T) {
	payload := []byte("Test request body")
	req := request.New("PUT", "/key")
	req.SetBody(stream.NewCursor(payload))

	hash, err := resolvePayloadHash(req)
	require.NoError(t, err)

	sum := sha256.Sum256(payload)
	assert.Equal(t, hex.EncodeToString(sum[:]), hash)

	// The body was replaced by a tee and reads from offset zero.
	assert.True(t, stream.IsTee(req.Body()))
	got, err := io.ReadAll(req.Body())
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestResolvePayloadHashReusesExistingTee(t *testing.T) {
	tee := stream.NewTee(stream.NewCursor([]byte("abc")))
	req := request.New("PUT", "/key")
	req.SetBody(tee)

	_, err := resolvePayloadHash(req)
	require.NoError(t, err)
	assert.Same(t, stream.Stream(tee), req.Body(), "existing tee must not be rewrapped")
}

func TestResolvePayloadHashBodyReadError(t *testing.T) {
	readErr := errors.New("read failed")
	req := request.New("PUT", "/key")
	req.SetBody(stream.NewTee(&brokenStream{err: readErr}))

	_, err := resolvePayloadHash(req)
	require.Error(t, err)
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindBodyRead, kind)
	assert.True(t, errors.Is(err, readErr))
}
