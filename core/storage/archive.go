package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// Archiver writes immutable copies of uploads and rendered reports to a bucket.
// A nil *Archiver is valid and archives nothing.
type Archiver struct {
	client Client
	bucket string
}

// NewArchiver creates an archiver for the given bucket.
func NewArchiver(client Client, bucket string) *Archiver {
	return &Archiver{client: client, bucket: bucket}
}

// Bucket returns the target bucket name.
func (a *Archiver) Bucket() string {
	if a == nil {
		return ""
	}
	return a.bucket
}

// EnsureBucket creates the bucket when it does not exist yet.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	if a == nil {
		return nil
	}
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}

// CheckBucket reports whether the bucket is reachable and present.
func (a *Archiver) CheckBucket(ctx context.Context) (bool, error) {
	if a == nil {
		return false, fmt.Errorf("object storage is disabled")
	}
	return a.client.BucketExists(ctx, a.bucket)
}

// Put stores data under objectName.
func (a *Archiver) Put(ctx context.Context, objectName string, data []byte, contentType string) error {
	if a == nil {
		return nil
	}
	_, err := a.client.PutObject(
		ctx,
		a.bucket,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", objectName, err)
	}
	return nil
}
