// Package storage uploads application attachments to Google Cloud Storage
// and derives their object keys and public URLs.
package storage

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// Client wraps one bucket of a cloud storage project.
type Client struct {
	BucketName string
	Client     *storage.Client
}

// New creates a storage client for the given bucket using ambient
// application-default credentials.
func New(ctx context.Context, bucketName string) (*Client, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud storage client: %w", err)
	}
	return &Client{
		BucketName: bucketName,
		Client:     client,
	}, nil
}

// Upload writes one object into the bucket.
func (c *Client) Upload(ctx context.Context, objectName string, data io.Reader) error {
	obj := c.Client.Bucket(c.BucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	if _, err := io.Copy(wc, data); err != nil {
		return fmt.Errorf("failed to write data to object: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close object writer: %w", err)
	}
	return nil
}

// PublicURL returns the retrieval URL of an uploaded object. The bucket is
// expected to allow public reads on the applications prefix.
func (c *Client) PublicURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.BucketName, objectName)
}
