// Package publish uploads registry documents to an S3 bucket so the
// registry can be served from static object storage.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/chris-lally/lally/internal/errors"
	"github.com/chris-lally/lally/internal/export"
)

// ObjectPutter is the subset of the S3 client used by the publisher.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Options configures a publish run.
type Options struct {
	// Bucket is the destination S3 bucket name.
	Bucket string

	// Prefix is the key prefix for all uploaded documents.
	Prefix string

	// Region overrides the AWS region from the default config chain.
	Region string
}

// Publisher uploads registry documents to S3.
type Publisher struct {
	client ObjectPutter
	opts   Options
}

// New creates a Publisher with an explicit client. Tests inject a fake
// ObjectPutter here.
func New(client ObjectPutter, opts Options) *Publisher {
	return &Publisher{
		client: client,
		opts:   opts,
	}
}

// NewFromDefaultConfig creates a Publisher using the standard AWS
// credential and region resolution chain.
func NewFromDefaultConfig(ctx context.Context, opts Options) (*Publisher, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.New("E132").
			WithDetail("Could not load AWS configuration: " + err.Error()).
			WithSuggestion("Check your AWS credentials and region settings")
	}

	return New(s3.NewFromConfig(cfg), opts), nil
}

// Publish uploads every per-item document, then the aggregate manifest
// last, preserving the same ordering guarantee as a disk export: a
// reader never sees a manifest referencing an item not yet uploaded.
// It returns the uploaded object keys in order.
func (p *Publisher) Publish(ctx context.Context, result *export.Result) ([]string, error) {
	var keys []string

	for _, doc := range result.Items {
		key := path.Join(p.opts.Prefix, "r", doc.Name+".json")
		if err := p.put(ctx, key, doc); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	key := path.Join(p.opts.Prefix, export.ManifestFileName)
	if err := p.put(ctx, key, result.Manifest); err != nil {
		return nil, err
	}
	keys = append(keys, key)

	return keys, nil
}

// put marshals one document and uploads it.
func (p *Publisher) put(ctx context.Context, key string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.New("E132").Wrap(err)
	}
	data = append(data, '\n')

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.opts.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return errors.New("E132").
			WithDetail("Could not upload s3://" + p.opts.Bucket + "/" + key).
			Wrap(err)
	}
	return nil
}
