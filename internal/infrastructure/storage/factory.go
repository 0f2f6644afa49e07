package storage

import (
	"context"
	"fmt"

	"hospital-portal/config"
	domainStorage "hospital-portal/internal/domain/storage"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// NewDisk builds the disk selected by cfg.Driver.
func NewDisk(ctx context.Context, cfg config.StorageConfig) (domainStorage.Disk, error) {
	switch cfg.Driver {
	case "", DriverLocal:
		return NewLocalDisk(cfg.LocalRoot, cfg.PublicURL), nil
	case DriverS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("storage: STORAGE_S3_BUCKET is required for the s3 driver")
		}

		loaders := []func(*awsconfig.LoadOptions) error{}
		if cfg.S3Region != "" {
			loaders = append(loaders, awsconfig.WithRegion(cfg.S3Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loaders...)
		if err != nil {
			return nil, fmt.Errorf("storage: load aws config: %w", err)
		}

		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.S3Endpoint != "" {
				o.BaseEndpoint = &cfg.S3Endpoint
				o.UsePathStyle = true
			}
		})
		return NewS3Disk(client, cfg.S3Bucket, cfg.PublicURL), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
