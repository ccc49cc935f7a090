package s3

import (
	"encoding/xml"
	"time"
)

// Owner identifies the account owning the listed buckets.
type Owner struct {
	ID          string
	DisplayName string
}

// Bucket is a single entry of a ListBuckets result.
type Bucket struct {
	Name         string
	CreationDate time.Time
}

// ListBucketsResult is the decoded result of a ListBuckets call.
type ListBucketsResult struct {
	Owner   Owner
	Buckets []Bucket
}

// listAllMyBucketsResult mirrors the ListAllMyBucketsResult XML document
// returned by the ListBuckets operation.
type listAllMyBucketsResult struct {
	XMLName xml.Name `xml:"ListAllMyBucketsResult"`
	Owner   struct {
		ID          string `xml:"ID"`
		DisplayName string `xml:"DisplayName"`
	} `xml:"Owner"`
	Buckets struct {
		Bucket []struct {
			Name         string    `xml:"Name"`
			CreationDate time.Time `xml:"CreationDate"`
		} `xml:"Bucket"`
	} `xml:"Buckets"`
}

// result converts the decoded XML document into the public result shape.
func (r *listAllMyBucketsResult) result() *ListBucketsResult {
	out := &ListBucketsResult{
		Owner: Owner{
			ID:          r.Owner.ID,
			DisplayName: r.Owner.DisplayName,
		},
		Buckets: make([]Bucket, 0, len(r.Buckets.Bucket)),
	}
	for _, b := range r.Buckets.Bucket {
		out.Buckets = append(out.Buckets, Bucket{
			Name:         b.Name,
			CreationDate: b.CreationDate,
		})
	}
	return out
}
