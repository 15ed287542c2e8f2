package s3

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config points at the portfolio object store. Bucket is carried here
// so one validated value feeds both the client and the presigner.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func (c Config) validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("s3 endpoint is required")
	}
	if c.Bucket == "" {
		return fmt.Errorf("s3 bucket is required")
	}
	return nil
}

// NewClient connects to the portfolio store. It does not probe the
// endpoint; the media service's bucket check is the first real call.
func NewClient(cfg Config) (*minio.Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create portfolio store client: %w", err)
	}

	return client, nil
}
