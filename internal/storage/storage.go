// Package storage resolves where generated assets live: a presigned S3 URL
// when an S3-compatible store is configured, otherwise a public base URL.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"

	appconfig "github.com/lotayaai/lotaya-io/internal/config"
	"github.com/lotayaai/lotaya-io/pkg/logger"
)

var Module = fx.Module("storage",
	fx.Provide(NewConfig),
	fx.Provide(NewService),
)

// Config holds storage configuration
type Config struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Region     string
	Bucket     string
	URLExpiry  time.Duration
	PublicBase string
}

// Enabled returns true if storage is properly configured
func (c *Config) Enabled() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != ""
}

// NewConfig creates storage config from environment variables
func NewConfig(app *appconfig.Config) *Config {
	region := os.Getenv("STORAGE_REGION")
	if region == "" {
		region = "us-east-1"
	}

	bucket := os.Getenv("STORAGE_BUCKET_ASSETS")
	if bucket == "" {
		bucket = "lotaya-assets"
	}

	expiry := time.Hour
	if v := os.Getenv("STORAGE_URL_EXPIRY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			expiry = d
		}
	}

	return &Config{
		Endpoint:   os.Getenv("STORAGE_ENDPOINT"),
		AccessKey:  os.Getenv("STORAGE_ACCESS_KEY"),
		SecretKey:  os.Getenv("STORAGE_SECRET_KEY"),
		Region:     region,
		Bucket:     bucket,
		URLExpiry:  expiry,
		PublicBase: strings.TrimRight(app.Generation.AssetBaseURL, "/"),
	}
}

// Service turns asset keys into URLs
type Service struct {
	presignClient *s3.PresignClient
	cfg           *Config
	log           *slog.Logger
}

// NewService creates a new storage service
func NewService(cfg *Config, log *slog.Logger) (*Service, error) {
	log = log.With(logger.Scope("storage"))

	if !cfg.Enabled() {
		log.Info("asset presigning disabled - serving public asset URLs",
			slog.String("base", cfg.PublicBase),
		)
		return &Service{cfg: cfg, log: log}, nil
	}

	customResolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               cfg.Endpoint,
				HostnameImmutable: true,
				SigningRegion:     cfg.Region,
			}, nil
		},
	)

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
		config.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Path-style addressing is required for MinIO
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	log.Info("storage service initialized",
		slog.String("endpoint", cfg.Endpoint),
		slog.String("bucket", cfg.Bucket),
	)

	return &Service{
		presignClient: s3.NewPresignClient(client),
		cfg:           cfg,
		log:           log,
	}, nil
}

// Enabled returns true if asset URLs are presigned
func (s *Service) Enabled() bool {
	return s.presignClient != nil
}

// AssetKey builds the object key of a generated asset: <dir>/<jobID>.<ext>
func AssetKey(dir, jobID, ext string) string {
	return fmt.Sprintf("%s/%s.%s", dir, jobID, strings.TrimPrefix(ext, "."))
}

// AssetURL returns the URL a client can fetch key from.
func (s *Service) AssetURL(ctx context.Context, key string) (string, error) {
	if !s.Enabled() {
		return s.cfg.PublicBase + "/" + key, nil
	}

	presignedReq, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, func(po *s3.PresignOptions) {
		po.Expires = s.cfg.URLExpiry
	})
	if err != nil {
		s.log.Error("failed to generate presigned URL",
			slog.String("key", key),
			logger.Error(err),
		)
		return "", fmt.Errorf("presign failed: %w", err)
	}

	s.log.Debug("presigned URL generated",
		slog.String("key", key),
		slog.Duration("expires", s.cfg.URLExpiry),
	)

	return presignedReq.URL, nil
}
