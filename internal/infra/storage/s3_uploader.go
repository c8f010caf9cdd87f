// Package storage pushes media files to an S3 compatible object store.
package storage

import (
	"context"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"videotube/config"
	"videotube/internal/domain/service"
	"videotube/internal/errors"
	"videotube/internal/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const checksumMetadataKey = "sha256"

// objectUploader is the subset of manager.Uploader used here.
type objectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3Uploader implements service.Uploader on top of the multipart upload manager.
type S3Uploader struct {
	uploader      objectUploader
	bucket        string
	keyPrefix     string
	publicBaseURL string
	logger        *slog.Logger
}

// NewS3Client builds the S3 client from the storage configuration.
// Endpoint and UsePathStyle allow S3 compatible services such as MinIO.
func NewS3Client(cfg *config.Config) (*s3.Client, error) {
	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.Storage.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.Storage.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
		}
		o.UsePathStyle = cfg.Storage.UsePathStyle
	})

	return client, nil
}

// NewS3Uploader creates the uploader used for avatars, cover images, videos and thumbnails.
func NewS3Uploader(client *s3.Client, cfg *config.Config, logger *slog.Logger) (service.Uploader, error) {
	if cfg.Storage.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	return newS3Uploader(manager.NewUploader(client), cfg, logger), nil
}

func newS3Uploader(uploader objectUploader, cfg *config.Config, logger *slog.Logger) *S3Uploader {
	return &S3Uploader{
		uploader:      uploader,
		bucket:        cfg.Storage.Bucket,
		keyPrefix:     strings.Trim(cfg.Storage.KeyPrefix, "/"),
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload pushes the local file to the bucket and returns its public URL.
// The local file is removed whether the upload succeeds or not.
func (u *S3Uploader) Upload(ctx context.Context, localPath string) (string, error) {
	if localPath == "" {
		return "", errors.New("local path is required")
	}
	defer u.removeLocal(localPath)

	file, err := os.Open(localPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open upload")
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", errors.Wrap(err, "failed to stat upload")
	}

	checksum, err := util.ChecksumAndRewind(file)
	if err != nil {
		return "", err
	}

	key := u.objectKey(filepath.Ext(localPath))
	input := &s3.PutObjectInput{
		Bucket:   aws.String(u.bucket),
		Key:      aws.String(key),
		Body:     file,
		Metadata: map[string]string{checksumMetadataKey: checksum},
	}
	if contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(localPath))); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	output, err := u.uploader.Upload(ctx, input)
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	u.logger.InfoContext(ctx, "Uploaded media object",
		slog.String("bucket", u.bucket),
		slog.String("key", key),
		slog.String("size", util.FormatBytes(info.Size())),
	)

	return u.objectURL(key, output), nil
}

func (u *S3Uploader) objectKey(ext string) string {
	name := uuid.NewString() + strings.ToLower(ext)
	if u.keyPrefix == "" {
		return name
	}

	return path.Join(u.keyPrefix, name)
}

func (u *S3Uploader) objectURL(key string, output *manager.UploadOutput) string {
	if u.publicBaseURL != "" {
		return u.publicBaseURL + "/" + key
	}
	if output != nil && output.Location != "" {
		return output.Location
	}

	return "s3://" + u.bucket + "/" + key
}

func (u *S3Uploader) removeLocal(localPath string) {
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		u.logger.Warn("Failed to remove staged upload",
			slog.String("path", localPath),
			slog.Any("error", err),
		)
	}
}
