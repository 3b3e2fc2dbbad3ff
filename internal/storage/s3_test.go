package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/evote-api/internal/config"
	"github.com/vietanh2810/evote-api/internal/domain"
)

type fakePutter struct {
	key         string
	bucket      string
	contentType string
	body        string
	err         error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.key = aws.ToString(params.Key)
	f.bucket = aws.ToString(params.Bucket)
	f.contentType = aws.ToString(params.ContentType)
	b, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(b)

	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Relocate(t *testing.T) {
	src := filepath.Join(t.TempDir(), "01HX.jpg")
	require.NoError(t, os.WriteFile(src, []byte("jpeg"), 0o600))

	putter := &fakePutter{}
	store := &S3Store{client: putter, bucket: "photos", prefix: "candidates/", publicURL: "http://minio:9000/photos/"}

	ref, err := store.Relocate(context.Background(), domain.Upload{TempPath: src}, "3.jpg")
	require.NoError(t, err)

	assert.Equal(t, "candidates/3.jpg", ref)
	assert.Equal(t, "candidates/3.jpg", putter.key)
	assert.Equal(t, "photos", putter.bucket)
	assert.Equal(t, "image/jpeg", putter.contentType)
	assert.Equal(t, "jpeg", putter.body)
	assert.Equal(t, "http://minio:9000/photos/candidates/3.jpg", store.URL("http://ignored", ref))

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestS3Store_RelocateKeepsTempFileOnFailure(t *testing.T) {
	src := filepath.Join(t.TempDir(), "01HX.jpg")
	require.NoError(t, os.WriteFile(src, []byte("jpeg"), 0o600))

	store := &S3Store{client: &fakePutter{err: errors.New("bucket offline")}, bucket: "photos"}

	_, err := store.Relocate(context.Background(), domain.Upload{TempPath: src}, "3.jpg")
	assert.Error(t, err)

	_, err = os.Stat(src)
	assert.NoError(t, err)
}

func TestDefaultPublicURL(t *testing.T) {
	assert.Equal(t, "http://minio:9000/photos", defaultPublicURL(&config.S3Config{Endpoint: "http://minio:9000/", Bucket: "photos"}))
	assert.Equal(t, "https://photos.s3.eu-west-1.amazonaws.com", defaultPublicURL(&config.S3Config{Bucket: "photos", Region: "eu-west-1"}))
}
