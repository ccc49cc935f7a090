package signer

// Credentials holds the AWS credentials used for signing. The secret access
// key never appears in any signer output; the access key ID and session
// token are copied into the emitted headers.
type Credentials struct {
	// AccessKeyID is the AWS access key ID.
	AccessKeyID string

	// SecretAccessKey is the AWS secret access key.
	SecretAccessKey string

	// SessionToken is the session token for temporary credentials. May be
	// empty.
	SessionToken string
}

// HasKeys returns whether both the access key ID and secret access key are
// set.
func (c Credentials) HasKeys() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}
