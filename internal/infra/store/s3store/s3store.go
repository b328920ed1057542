// Package s3store keeps the whole state as one JSON object in an S3 compatible bucket.
package s3store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"gpark/internal/infra"
	"gpark/internal/pkg/config"
	"gpark/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// ObjectAPI is the subset of *s3.Client the store needs.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Store struct {
	client ObjectAPI
	bucket string
	key    string
	logger *slog.Logger
}

func New(client ObjectAPI, bucket, key string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

// NewClient builds an S3 client. A custom endpoint switches to path-style
// addressing, which MinIO and most S3 compatible services expect.
func NewClient(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (s *Store) Load(ctx context.Context) (*shared.Snapshot, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if isNotFound(err) {
			s.logger.Info("state object not found, starting empty", "bucket", s.bucket, "key", s.key)
			return &shared.Snapshot{
				Spots:        []shared.SpotRecord{},
				Reservations: []shared.ReservationRecord{},
			}, nil
		}
		return nil, infra.WrapStoreErr(s.logger, infra.KindObjectStore, "get state object", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindObjectStore, "read state object", err)
	}

	var snap shared.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindCorruptRecord, "decode state object", err)
	}
	return &snap, nil
}

func (s *Store) Save(ctx context.Context, snap *shared.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindObjectStore, "encode state object", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindObjectStore, "put state object", err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
