package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"chain-dashboard/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// objectAPI is the subset of the S3 client used by S3Store.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store writes snapshots to, and reads them from, an S3 bucket.
type S3Store struct {
	client objectAPI
	bucket string
	prefix string
	logger zerolog.Logger
}

// NewS3Store creates an S3-backed snapshot store using the default AWS credential chain.
func NewS3Store(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (*S3Store, error) {
	logger = logger.With().Str("component", "snapshot-s3").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Msg("S3 snapshot store initialised")

	return newS3Store(s3.NewFromConfig(cfg), bucket, prefix, logger), nil
}

func newS3Store(client objectAPI, bucket, prefix string, logger zerolog.Logger) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Export uploads ds and returns its s3:// URI.
func (s *S3Store) Export(ctx context.Context, ds *model.Dataset) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, ds); err != nil {
		return "", err
	}

	key := s.prefix + Name(ds)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:          aws.String(s.bucket),
		Key:             aws.String(key),
		Body:            bytes.NewReader(buf.Bytes()),
		ContentType:     aws.String("application/json"),
		ContentEncoding: aws.String("gzip"),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to put snapshot object")
		return "", fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Int("bytes", buf.Len()).
		Msg("snapshot uploaded")

	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

// Load downloads the snapshot at location, which is either an s3:// URI
// within the store's bucket or a bare key.
func (s *S3Store) Load(ctx context.Context, location string) (*model.Dataset, error) {
	key := strings.TrimPrefix(location, "s3://"+s.bucket+"/")

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to get snapshot object")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}
	defer result.Body.Close()

	ds, err := Decode(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 snapshot %s: %w", key, err)
	}
	return ds, nil
}
