// Package storage presigns uploads to the S3-compatible media bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"masteria.app/panel/core/config"
)

var ErrDisabled = errors.New("object storage is not configured")

type PresignedPut struct {
	URL       string
	Method    string
	Headers   map[string]string
	ExpiresAt time.Time
}

// S3Presigner signs browser uploads against an S3 or R2 compatible endpoint.
type S3Presigner struct {
	presigner  *s3.PresignClient
	bucket     string
	publicHost string
	ttl        time.Duration
}

func NewS3Presigner(ctx context.Context, cfg config.StorageConfig) (*S3Presigner, error) {
	if !cfg.Enabled() {
		return nil, ErrDisabled
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("loading storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = cfg.UsePathStyle
	})

	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &S3Presigner{
		presigner:  s3.NewPresignClient(client),
		bucket:     cfg.Bucket,
		publicHost: strings.TrimRight(cfg.PublicHostname, "/"),
		ttl:        ttl,
	}, nil
}

func (p *S3Presigner) PresignPut(ctx context.Context, key, contentType string) (PresignedPut, error) {
	req, err := p.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return PresignedPut{}, fmt.Errorf("presigning put: %w", err)
	}

	headers := make(map[string]string, len(req.SignedHeader))
	for name, values := range req.SignedHeader {
		if len(values) > 0 && !strings.EqualFold(name, "host") {
			headers[name] = values[0]
		}
	}

	return PresignedPut{
		URL:       req.URL,
		Method:    req.Method,
		Headers:   headers,
		ExpiresAt: time.Now().Add(p.ttl),
	}, nil
}

// PublicURL is where the object is served once uploaded. Without a public
// hostname it is empty and clients keep using signed reads.
func (p *S3Presigner) PublicURL(key string) string {
	if p.publicHost == "" {
		return ""
	}
	host := p.publicHost
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	return host + "/" + key
}
