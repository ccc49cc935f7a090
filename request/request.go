// Package request provides the mutable HTTP request façade the signer
// operates on: a method token, a path and query, an ordered header list that
// allows repeated names, and an optional body stream.
package request

import (
	"strings"

	"github.com/ochsenreither/go-sigv4/stream"
)

// Header is a single name/value pair. Names are kept exactly as supplied;
// matching is case-insensitive.
type Header struct {
	Name  string
	Value string
}

// Request is a mutable HTTP request. Headers preserve insertion order and
// repeated names. Request is not safe for concurrent use.
type Request struct {
	method  string
	path    string
	query   string
	headers []Header
	body    stream.Stream
}

// New creates a request from a method token and a request target. Everything
// after the first '?' in target is kept as the raw query string.
func New(method, target string) *Request {
	path, query := target, ""
	if i := strings.IndexByte(target, '?'); i >= 0 {
		path, query = target[:i], target[i+1:]
	}
	return &Request{
		method: method,
		path:   path,
		query:  query,
	}
}

// NewWithQuery creates a request from a method token and pre-split path and
// query. The query must not include the leading '?'.
func NewWithQuery(method, path, query string) *Request {
	return &Request{
		method: method,
		path:   path,
		query:  query,
	}
}

// Method returns the method token.
func (r *Request) Method() string {
	return r.method
}

// Path returns the path portion of the request target.
func (r *Request) Path() string {
	return r.path
}

// Query returns the raw query string, without the leading '?'. Empty when
// the target carried no query.
func (r *Request) Query() string {
	return r.query
}

// AddHeader appends a header. Existing headers are never reordered or
// rewritten; repeated names are allowed.
func (r *Request) AddHeader(name, value string) {
	r.headers = append(r.headers, Header{Name: name, Value: value})
}

// Headers returns the headers in insertion order. The returned slice is
// shared with the request; callers must not mutate it.
func (r *Request) Headers() []Header {
	return r.headers
}

// HeaderValue returns the value of the first header matching name
// case-insensitively, and whether such a header exists.
func (r *Request) HeaderValue(name string) (string, bool) {
	for _, h := range r.headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// Body returns the request body stream, or nil when the request has none.
func (r *Request) Body() stream.Stream {
	return r.body
}

// SetBody replaces the request body stream. The request owns the stream from
// then on.
func (r *Request) SetBody(s stream.Stream) {
	r.body = s
}
