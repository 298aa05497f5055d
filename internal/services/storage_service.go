package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"mediamate-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// Upload folders. Cover art and avatars share the bucket but live under
// separate prefixes.
const (
	UploadFolderCovers  = "covers"
	UploadFolderAvatars = "avatars"
)

// presignExpiry bounds how long a client may hold an upload URL.
const presignExpiry = 15 * time.Minute

// StorageService hands out presigned MinIO upload URLs so image bytes never
// pass through the API server.
type StorageService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewStorageService(cfg *config.MinIOConfig, logger *logrus.Logger) (*StorageService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized")

	service := &StorageService{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background(), cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, continuing")
	}
	return service, nil
}

func (s *StorageService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created")
	}

	// Images are served straight from the bucket, so objects are public read.
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}
	return nil
}

// PresignUpload returns a short-lived PUT URL plus the final public URL the
// client should store once the upload completes.
func (s *StorageService) PresignUpload(ctx context.Context, folder, filename string) (string, string, error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	objectPath := fmt.Sprintf("%s/%s_%s%s", folder, base, uuid.New().String()[:8], ext)

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, presignExpiry)
	if err != nil {
		s.logger.WithError(err).WithField("object_path", objectPath).
			Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":    filename,
		"object_path": objectPath,
		"expiry":      presignExpiry,
	}).Info("Generated presigned upload URL")

	return presignedURL.String(), s.objectURL(objectPath), nil
}

// DeleteObject removes an uploaded image, accepting either the bare object
// path or the full public URL.
func (s *StorageService) DeleteObject(ctx context.Context, objectPath string) error {
	if strings.Contains(objectPath, "://") {
		if idx := strings.Index(objectPath, "/"+s.bucket+"/"); idx != -1 {
			objectPath = objectPath[idx+len(s.bucket)+2:]
		}
	}
	objectPath = strings.TrimPrefix(objectPath, s.bucket+"/")

	if err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		s.logger.WithError(err).WithField("object_path", objectPath).Error("Failed to delete object")
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (s *StorageService) objectURL(objectPath string) string {
	protocol := "http://"
	if strings.HasPrefix(s.publicURL, "https://") {
		protocol = "https://"
	}

	host := strings.TrimPrefix(s.publicURL, "https://")
	host = strings.TrimPrefix(host, "http://")
	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}

	return fmt.Sprintf("%s%s/%s/%s", protocol, host, s.bucket, objectPath)
}
