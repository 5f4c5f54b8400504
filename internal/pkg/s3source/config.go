package s3source

import (
	"errors"

	"github.com/FelixBrandt/Foliogram/internal/pkg/env"
)

// Config holds the S3 gallery source configuration. The source is optional;
// it is only used when GALLERY_SOURCE=s3.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // Optional for S3-compatible services
}

// LoadConfig loads the S3 source configuration from environment variables.
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "us-west-001"),
		BucketName:      env.GetEnv("S3_BUCKET_NAME", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
	}

	if config.AccessKeyID == "" {
		return nil, errors.New("S3_ACCESS_KEY_ID is required for the s3 gallery source")
	}
	if config.SecretAccessKey == "" {
		return nil, errors.New("S3_SECRET_ACCESS_KEY is required for the s3 gallery source")
	}
	if config.BucketName == "" {
		return nil, errors.New("S3_BUCKET_NAME is required for the s3 gallery source")
	}

	return config, nil
}
