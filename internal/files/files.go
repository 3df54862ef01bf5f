package files

import (
	"fmt"
	"net/url"
	"strings"
)

// S3Object represents an S3 object
type S3Object struct {
	Bucket string
	Key    string
}

// NewS3Object creates a new S3Object
func NewS3Object(bucket, key string) S3Object {
	return S3Object{Bucket: bucket, Key: key}
}

// NewS3ObjectFromEncodedKey creates an S3Object from a key as it appears in
// S3 event notifications, where spaces arrive as '+' and other characters
// are percent-encoded.
func NewS3ObjectFromEncodedKey(bucket, encodedKey string) (S3Object, error) {
	key, err := DecodeKey(encodedKey)
	if err != nil {
		return S3Object{}, err
	}
	return S3Object{Bucket: bucket, Key: key}, nil
}

// DecodeKey plus-decodes an S3 event object key.
func DecodeKey(encodedKey string) (string, error) {
	key, err := url.QueryUnescape(encodedKey)
	if err != nil {
		return "", ErrorDecodingKey(encodedKey, err)
	}
	return key, nil
}

// FileName returns the part of the key after its last '/'.
func (obj S3Object) FileName() string {
	return obj.Key[strings.LastIndex(obj.Key, "/")+1:]
}

// URI returns a human-readable URI for the S3 object
func (obj S3Object) URI() string {
	return fmt.Sprintf("s3://%s/%s", obj.Bucket, obj.Key)
}
