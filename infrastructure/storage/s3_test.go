package storage_test

import (
	"context"
	"testing"

	"fartgen-backend/infrastructure/config"
	"fartgen-backend/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name string
		s3   config.S3Settings
		want string
	}{
		{
			name: "no custom endpoint",
			s3:   config.S3Settings{UseSSL: true},
			want: "",
		},
		{
			name: "full url passes through",
			s3:   config.S3Settings{EndpointURL: "https://minio.internal:9000", UseSSL: false},
			want: "https://minio.internal:9000",
		},
		{
			name: "bare host gets https when ssl enabled",
			s3:   config.S3Settings{EndpointURL: "minio.internal:9000", UseSSL: true},
			want: "https://minio.internal:9000",
		},
		{
			name: "bare host gets http when ssl disabled",
			s3:   config.S3Settings{EndpointURL: "localhost:9000", UseSSL: false},
			want: "http://localhost:9000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.Endpoint(tt.s3))
		})
	}
}

func TestNewObjectStore(t *testing.T) {
	cfg := &config.Settings{
		S3: config.S3Settings{
			AccessKeyID:     "minioadmin",
			SecretAccessKey: "minioadmin",
			Bucket:          "fartgen-sounds",
			Region:          "us-east-1",
			EndpointURL:     "localhost:9000",
			UseSSL:          false,
		},
	}

	store, err := storage.NewObjectStore(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, store.Client)
	assert.Equal(t, "fartgen-sounds", store.Bucket)

	opts := store.Client.Options()
	assert.Equal(t, "us-east-1", opts.Region)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://localhost:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
}
