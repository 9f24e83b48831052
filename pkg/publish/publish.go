// Package publish uploads rendered button galleries to S3.
package publish

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/commonui/internal/errors"
	"github.com/vango-dev/commonui/pkg/gallery"
	"github.com/vango-dev/commonui/pkg/styles"
)

// ObjectPutter is the subset of *s3.Client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Object describes one uploaded page.
type Object struct {
	Key      string
	Platform styles.Platform
	Size     int
	ETag     string
}

// Publisher uploads gallery pages under bucket/prefix.
//
// Example usage:
//
//	client := publish.NewS3Client("us-east-1")
//	pub := publish.New(client, "ui-gallery", "commonui/")
//	objects, err := pub.Publish(ctx, styles.Platforms()...)
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string

	// page renders the gallery of one platform.
	page func(io.Writer, styles.Platform) error
}

// New creates a publisher. A non-empty prefix without a trailing slash gets
// one.
func New(client ObjectPutter, bucket, prefix string) *Publisher {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		page:   gallery.WriteHTML,
	}
}

// Key returns the object key of the gallery page for platform.
func (p *Publisher) Key(platform styles.Platform) string {
	return p.prefix + "index-" + platform.String() + ".html"
}

// Publish renders and uploads one gallery page per platform. It stops at the
// first failure and returns the objects uploaded so far.
func (p *Publisher) Publish(ctx context.Context, platforms ...styles.Platform) ([]Object, error) {
	if p.bucket == "" {
		return nil, errors.New(errors.CodeExportFailed).
			WithDetail("no bucket configured")
	}
	if len(platforms) == 0 {
		platforms = styles.Platforms()
	}

	out := make([]Object, 0, len(platforms))
	for _, platform := range platforms {
		if err := ctx.Err(); err != nil {
			return out, errors.New(errors.CodeExportFailed).Wrap(err)
		}

		var buf bytes.Buffer
		if err := p.page(&buf, platform); err != nil {
			return out, errors.New(errors.CodeExportFailed).
				WithDetailf("render %s gallery", platform).
				Wrap(err)
		}

		key := p.Key(platform)
		size := buf.Len()
		res, err := p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(p.bucket),
			Key:           aws.String(key),
			Body:          bytes.NewReader(buf.Bytes()),
			ContentType:   aws.String("text/html; charset=utf-8"),
			ContentLength: aws.Int64(int64(size)),
			CacheControl:  aws.String("no-cache"),
			Metadata: map[string]string{
				"commonui-platform": platform.String(),
			},
		})
		if err != nil {
			return out, errors.New(errors.CodeExportFailed).
				WithDetailf("upload s3://%s/%s", p.bucket, key).
				Wrap(err)
		}

		obj := Object{Key: key, Platform: platform, Size: size}
		if res != nil {
			obj.ETag = aws.ToString(res.ETag)
		}
		out = append(out, obj)
	}
	return out, nil
}

// NewS3Client returns an S3 client for region using the static credentials in
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func NewS3Client(region string) *s3.Client {
	return s3.New(s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(EnvCredentials(os.LookupEnv)),
	})
}

// EnvCredentials reads static credentials through lookup.
func EnvCredentials(lookup func(string) (string, bool)) aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		id, _ := lookup("AWS_ACCESS_KEY_ID")
		secret, _ := lookup("AWS_SECRET_ACCESS_KEY")
		if id == "" || secret == "" {
			return aws.Credentials{}, errors.New(errors.CodeExportFailed).
				WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		token, _ := lookup("AWS_SESSION_TOKEN")
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    token,
			Source:          "EnvCredentials",
		}, nil
	})
}
