package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/go-logr/logr"

	"github.com/imamik/tfscaffold/internal/util/naming"
	"github.com/imamik/tfscaffold/internal/util/retry"
)

// archiveContentType is the content type of published archives.
const archiveContentType = "application/zip"

// ObjectStore is the subset of Client used by Publisher.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	CreateBucket(ctx context.Context, bucketName string) error
	PutObject(ctx context.Context, bucketName, key string, data []byte, contentType string) error
}

// ErrBucketNotFound is returned when the target bucket does not exist and
// bucket creation is disabled.
var ErrBucketNotFound = errors.New("bucket not found")

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithCreateBucket creates the bucket when it does not exist.
func WithCreateBucket() PublisherOption {
	return func(p *Publisher) {
		p.createBucket = true
	}
}

// WithLogger sets the publisher logger.
func WithLogger(log logr.Logger) PublisherOption {
	return func(p *Publisher) {
		p.log = log
	}
}

// WithRetryPolicy sets how store calls are retried.
func WithRetryPolicy(policy retry.Policy) PublisherOption {
	return func(p *Publisher) {
		p.retry = policy
	}
}

// Publisher uploads environment archives to a bucket.
type Publisher struct {
	store        ObjectStore
	bucket       string
	createBucket bool
	retry        retry.Policy
	log          logr.Logger
}

// NewPublisher creates a Publisher that uploads to bucket.
func NewPublisher(store ObjectStore, bucket string, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		store:  store,
		bucket: bucket,
		retry:  retry.DefaultPolicy(),
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish uploads the archive of environment and returns its s3:// URI.
func (p *Publisher) Publish(ctx context.Context, environment string, archive []byte) (string, error) {
	if p.bucket == "" {
		return "", errors.New("bucket name is required")
	}
	if environment == "" {
		return "", errors.New("environment name is required")
	}

	var exists bool
	err := p.do(ctx, func(ctx context.Context) error {
		var err error
		exists, err = p.store.BucketExists(ctx, p.bucket)
		return err
	})
	if err != nil {
		return "", err
	}
	if !exists {
		if !p.createBucket {
			return "", fmt.Errorf("%w: %s", ErrBucketNotFound, p.bucket)
		}
		p.log.Info("Creating bucket", "bucket", p.bucket)
		err := p.do(ctx, func(ctx context.Context) error {
			return p.store.CreateBucket(ctx, p.bucket)
		})
		if err != nil {
			return "", err
		}
	}

	key := naming.ArchiveKey(environment)
	err = p.do(ctx, func(ctx context.Context) error {
		return p.store.PutObject(ctx, p.bucket, key, archive, archiveContentType)
	})
	if err != nil {
		return "", err
	}

	uri := fmt.Sprintf("s3://%s/%s", p.bucket, key)
	p.log.Info("Published archive", "uri", uri, "bytes", len(archive))
	return uri, nil
}

// do retries op under the publisher policy. Client faults reported by the
// service are not retried.
func (p *Publisher) do(ctx context.Context, op func(context.Context) error) error {
	return retry.Do(ctx, p.retry, func(ctx context.Context) error {
		err := op(ctx)
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorFault() == smithy.FaultClient {
			return retry.Permanent(err)
		}
		if err != nil {
			p.log.V(1).Info("Object store call failed", "error", err.Error())
		}
		return err
	})
}
