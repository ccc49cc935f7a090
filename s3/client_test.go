package s3

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochsenreither/go-sigv4/signer"
)

var testCreds = signer.Credentials{
	AccessKeyID:     "AKIDEXAMPLE",
	SecretAccessKey: "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY",
}

const listBucketsBody = `<?xml version="1.0" encoding="UTF-8"?>
<ListAllMyBucketsResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Owner>
    <ID>bcaf1ffd86f461ca5fb16fd081034f</ID>
    <DisplayName>webfile</DisplayName>
  </Owner>
  <Buckets>
    <Bucket>
      <Name>quotes</Name>
      <CreationDate>2006-02-03T16:45:09.000Z</CreationDate>
    </Bucket>
    <Bucket>
      <Name>samples</Name>
      <CreationDate>2006-02-03T16:41:58.000Z</CreationDate>
    </Bucket>
  </Buckets>
</ListAllMyBucketsResult>`

func TestNewValidation(t *testing.T) {
	_, err := New(Config{Credentials: testCreds})
	assert.Error(t, err)

	_, err = New(Config{Region: "us-east-1"})
	assert.Error(t, err)

	_, err = New(Config{Region: "us-east-1", Credentials: testCreds, Endpoint: "not a url"})
	assert.Error(t, err)

	client, err := New(Config{Region: "us-east-1", Credentials: testCreds})
	require.NoError(t, err)
	assert.Equal(t, "s3.us-east-1.amazonaws.com", client.endpoint.Host)
}

func TestListBuckets(t *testing.T) {
	var gotAuth, gotDate, gotHost string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotDate = r.Header.Get("X-Amz-Date")
		gotHost = r.Host
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(listBucketsBody))
	}))
	defer server.Close()

	client, err := New(Config{
		Region:      "us-east-1",
		Credentials: testCreds,
		Endpoint:    server.URL,
	})
	require.NoError(t, err)
	client.now = func() time.Time {
		return time.Date(2015, 8, 30, 12, 36, 0, 0, time.UTC)
	}

	result, err := client.ListBuckets(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotAuth, "AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/20150830/us-east-1/s3/aws4_request"))
	assert.Contains(t, gotAuth, "SignedHeaders=host;x-amz-date")
	assert.Equal(t, "20150830T123600Z", gotDate)
	assert.Equal(t, strings.TrimPrefix(server.URL, "http://"), gotHost)

	assert.Equal(t, "webfile", result.Owner.DisplayName)
	assert.Equal(t, "bcaf1ffd86f461ca5fb16fd081034f", result.Owner.ID)
	require.Len(t, result.Buckets, 2)
	assert.Equal(t, "quotes", result.Buckets[0].Name)
	assert.Equal(t, 2006, result.Buckets[0].CreationDate.Year())
	assert.Equal(t, "samples", result.Buckets[1].Name)
}

func TestListBucketsSessionToken(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Amz-Security-Token")
		w.Write([]byte(listBucketsBody))
	}))
	defer server.Close()

	creds := testCreds
	creds.SessionToken = "FQoDYXEXAMPLETOKEN=="

	client, err := New(Config{
		Region:      "us-east-1",
		Credentials: creds,
		Endpoint:    server.URL,
	})
	require.NoError(t, err)

	_, err = client.ListBuckets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FQoDYXEXAMPLETOKEN==", gotToken)
}

func TestListBucketsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "access denied", http.StatusForbidden)
	}))
	defer server.Close()

	client, err := New(Config{
		Region:      "us-east-1",
		Credentials: testCreds,
		Endpoint:    server.URL,
	})
	require.NoError(t, err)

	_, err = client.ListBuckets(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
