// Package storage constructs the object storage client the generation
// pipeline will upload sounds to. Only construction happens here; nothing at
// the edge calls out to the store, so liveness stays dependency-free.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"fartgen-backend/infrastructure/config"
)

// ObjectStore bundles the configured S3 client with the bucket it targets
type ObjectStore struct {
	Client *s3.Client
	Bucket string
}

// NewObjectStore builds an S3 client from settings. A custom endpoint
// switches the client into path-style addressing for MinIO compatibility.
func NewObjectStore(ctx context.Context, cfg *config.Settings) (*ObjectStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint := Endpoint(cfg.S3); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &ObjectStore{
		Client: client,
		Bucket: cfg.S3.Bucket,
	}, nil
}

// Endpoint returns the resolved custom endpoint URL, or "" when the default
// AWS endpoint applies. A bare host:port gets its scheme from UseSSL.
func Endpoint(s config.S3Settings) string {
	if s.EndpointURL == "" {
		return ""
	}
	if strings.Contains(s.EndpointURL, "://") {
		return s.EndpointURL
	}
	if s.UseSSL {
		return "https://" + s.EndpointURL
	}
	return "http://" + s.EndpointURL
}
