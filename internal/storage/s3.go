package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cenkalti/backoff/v4"
	"github.com/flexprice/gstinvoice/internal/config"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/logger"
)

const (
	defaultPresignExpiryDuration = 30 * time.Minute
	maxUploadRetries             = 4
)

type s3Store struct {
	client     *s3.Client
	config     config.S3Config
	newBackOff func() backoff.BackOff
	logger     *logger.Logger
}

func NewS3Store(cfg *config.Configuration, logger *logger.Logger) (Store, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(cfg.Storage.S3.Region),
	)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to load aws config").
			Mark(ierr.ErrHTTPClient)
	}

	return newS3Store(s3.NewFromConfig(awsCfg), cfg.Storage.S3, logger), nil
}

func newS3Store(client *s3.Client, cfg config.S3Config, logger *logger.Logger) *s3Store {
	return &s3Store{
		client: client,
		config: cfg,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxElapsedTime = 10 * time.Second
			return backoff.WithMaxRetries(b, maxUploadRetries)
		},
		logger: logger,
	}
}

func (s *s3Store) key(name string) string {
	if s.config.KeyPrefix != "" {
		return path.Join(s.config.KeyPrefix, name)
	}
	return name
}

// Save uploads the document, retrying transient failures with exponential
// backoff.
func (s *s3Store) Save(ctx context.Context, doc *Document) (*Object, error) {
	key := s.key(doc.Name)
	attempt := 0

	upload := func() error {
		attempt++
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.config.Bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(doc.Data),
			ContentType: aws.String(doc.ContentType),
		})
		if err != nil && ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		if err != nil {
			s.logger.Warnw("document upload failed", "key", key, "attempt", attempt, "error", err)
		}
		return err
	}

	if err := backoff.Retry(upload, backoff.WithContext(s.newBackOff(), ctx)); err != nil {
		return nil, ierr.WithError(err).WithHint("failed to upload document").
			WithMessagef("bucket:%s, key:%s", s.config.Bucket, key).
			Mark(ierr.ErrHTTPClient)
	}

	return &Object{
		Name:        doc.Name,
		Location:    "s3://" + s.config.Bucket + "/" + key,
		ContentType: doc.ContentType,
		Size:        len(doc.Data),
	}, nil
}

func (s *s3Store) Get(ctx context.Context, name string) ([]byte, error) {
	key := s.key(name)
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *s3types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ierr.WithError(err).
				WithHintf("Document %s was not found", name).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).WithHint("failed to get document").
			WithMessagef("bucket:%s, key:%s", s.config.Bucket, key).
			Mark(ierr.ErrHTTPClient)
	}
	defer result.Body.Close()

	return io.ReadAll(result.Body)
}

func (s *s3Store) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var nsk *s3types.NoSuchKey
		var nf *s3types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nf) {
			return false, nil
		}
		return false, ierr.WithError(err).WithHint("failed to check if document exists").
			Mark(ierr.ErrHTTPClient)
	}
	return true, nil
}

// URL returns a presigned GET URL.
func (s *s3Store) URL(ctx context.Context, name string) (string, error) {
	key := s.key(name)
	expiry := s.config.PresignExpiry
	if expiry <= 0 {
		expiry = defaultPresignExpiryDuration
	}

	presigner := s3.NewPresignClient(s.client)
	result, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", ierr.WithError(err).WithHint("failed to get presigned url").
			WithMessagef("bucket:%s, key:%s", s.config.Bucket, key).
			Mark(ierr.ErrHTTPClient)
	}

	return result.URL, nil
}
