package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/config"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

const presignTTL = 15 * time.Minute

// s3MediaStore stores media objects in an S3-compatible bucket. Objects are
// the only unencrypted boundary of a media entry; everything describing them
// is encrypted into the entry's envelope before persistence.
type s3MediaStore struct {
	client        *s3.Client
	presign       *s3.PresignClient
	bucket        string
	publicBaseURL string
	logger        *logger.Logger
}

// NewS3MediaStore constructs a [MediaStore] over the configured bucket.
// A non-empty endpoint points the client at an S3-compatible store such as
// MinIO.
func NewS3MediaStore(ctx context.Context, cfg config.Media, log *logger.Logger) (MediaStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "")))
	if err != nil {
		return nil, fmt.Errorf("error loading media store config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3MediaStore{
		client:        client,
		presign:       s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        log,
	}, nil
}

// Upload writes one object and returns the metadata envelope the entry layer
// encrypts and persists.
func (s *s3MediaStore) Upload(ctx context.Context, upload MediaUpload) (models.MediaMetadata, error) {
	log := logger.FromContext(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(upload.Key),
		Body:          upload.Body,
		ContentType:   aws.String(upload.MimeType),
		ContentLength: aws.Int64(upload.Size),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3MediaStore.Upload").Str("key", upload.Key).Msg("error uploading media object")
		return models.MediaMetadata{}, fmt.Errorf("%w: %w", ErrMediaUpload, err)
	}

	return models.MediaMetadata{
		URL:        fmt.Sprintf("%s/%s", s.publicBaseURL, upload.Key),
		StorageKey: upload.Key,
		FileName:   upload.FileName,
		MimeType:   upload.MimeType,
		FileSize:   upload.Size,
	}, nil
}

// PresignGetURL hands out a time-limited read link for one stored object.
func (s *s3MediaStore) PresignGetURL(ctx context.Context, storageKey string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("error presigning media object %q: %w", storageKey, err)
	}

	return req.URL, nil
}
