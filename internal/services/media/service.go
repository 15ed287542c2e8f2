package media

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// S3Storage is the slice of the object store the portfolio presigner
// needs.
type S3Storage interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
	PresignedGetObject(ctx context.Context, bucket, key string, expiry time.Duration, params url.Values) (*url.URL, error)
}

type Config struct {
	Bucket string
	URLTTL time.Duration
}

// Service turns portfolio object keys into short-lived download URLs.
// URLs are only handed out for unlocked talents, so the TTL doubles as
// the sharing window after an unlock.
type Service struct {
	storage S3Storage
	cfg     Config
	log     *zap.Logger
}

func NewService(storage S3Storage, cfg Config, log *zap.Logger) *Service {
	if cfg.URLTTL <= 0 {
		cfg.URLTTL = 5 * time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{storage: storage, cfg: cfg, log: log}
}

func (s *Service) EnsureBucket(ctx context.Context) error {
	if s.storage == nil {
		return fmt.Errorf("media storage is not configured")
	}

	exists, err := s.storage.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.storage.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	s.log.Info("created portfolio bucket", zap.String("bucket", s.cfg.Bucket))

	return nil
}

// PresignPortfolio resolves each object key to a presigned GET URL.
// Keys that fail to presign are skipped rather than failing the whole
// portfolio.
func (s *Service) PresignPortfolio(ctx context.Context, keys []string) ([]string, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("media storage is not configured")
	}

	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		u, err := s.storage.PresignedGetObject(ctx, s.cfg.Bucket, key, s.cfg.URLTTL, nil)
		if err != nil {
			s.log.Warn("presign portfolio object failed", zap.String("key", key), zap.Error(err))
			continue
		}
		urls = append(urls, u.String())
	}

	return urls, nil
}
