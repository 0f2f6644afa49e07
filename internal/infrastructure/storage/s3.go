package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	domainStorage "hospital-portal/internal/domain/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// S3API is the subset of the S3 client used by S3Disk.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Disk keeps uploaded images in a bucket. Object keys are the storage paths.
type S3Disk struct {
	client    S3API
	bucket    string
	publicURL string
}

func NewS3Disk(client S3API, bucket, publicURL string) *S3Disk {
	return &S3Disk{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (d *S3Disk) Store(ctx context.Context, dir string, file domainStorage.UploadedFile) (string, error) {
	key := path.Join(strings.Trim(dir, "/"), uuid.NewString()+file.Extension())

	input := &s3.PutObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
		Body:   file.Content,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}

	if _, err := d.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return key, nil
}

func (d *S3Disk) URL(p string) string {
	return d.publicURL + "/" + strings.TrimLeft(p, "/")
}

func (d *S3Disk) Exists(ctx context.Context, p string) (bool, error) {
	_, err := d.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(p),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("s3 head %s: %w", p, err)
	}
	return true, nil
}

// Delete removes the object. S3 reports success for missing keys.
func (d *S3Disk) Delete(ctx context.Context, p string) error {
	if p == "" {
		return nil
	}
	_, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(p),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", p, err)
	}
	return nil
}
