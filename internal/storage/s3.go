package storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vietanh2810/evote-api/internal/config"
	"github.com/vietanh2810/evote-api/internal/domain"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store keeps photos in an S3 compatible bucket such as MinIO.
type S3Store struct {
	client    objectPutter
	bucket    string
	prefix    string
	publicURL string
}

func NewS3Store(ctx context.Context, conf *config.S3Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(conf.Region),
	}
	if conf.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AccessKey, conf.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("awsconfig.LoadDefaultConfig -> %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		}
		o.UsePathStyle = conf.UsePathStyle
	})

	publicURL := conf.PublicURL
	if publicURL == "" {
		publicURL = defaultPublicURL(conf)
	}

	return &S3Store{
		client:    client,
		bucket:    conf.Bucket,
		prefix:    conf.Prefix,
		publicURL: publicURL,
	}, nil
}

func defaultPublicURL(conf *config.S3Config) string {
	if conf.Endpoint != "" {
		return joinURL(conf.Endpoint, conf.Bucket)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", conf.Bucket, conf.Region)
}

// Relocate uploads the temporary file under prefix+name and removes it locally once the
// object is stored.
func (s *S3Store) Relocate(ctx context.Context, upload domain.Upload, name string) (string, error) {
	if upload.TempPath == "" {
		return "", ErrEmptyUpload
	}

	f, err := os.Open(upload.TempPath)
	if err != nil {
		return "", fmt.Errorf("os.Open -> %w", err)
	}
	defer f.Close()

	key := s.prefix + filepath.Base(name)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   f,
	}
	if contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err = s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("s.client.PutObject -> %w", err)
	}

	_ = os.Remove(upload.TempPath)

	return key, nil
}

// URL ignores origin; objects are served by the bucket.
func (s *S3Store) URL(_ string, ref string) string {
	return joinURL(s.publicURL, ref)
}
