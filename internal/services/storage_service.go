// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/commerce-dashboard/internal/config"
)

// StorageService saves exported reports. It writes to S3 when a bucket and
// credentials are configured and to a local directory otherwise.
type StorageService struct {
	s3Client s3iface.S3API
	config   *config.Config
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
	Backend  string `json:"backend"`
}

func NewStorageService(config *config.Config) (*StorageService, error) {
	if config.AWS.S3Bucket == "" || config.AWS.AccessKeyID == "" {
		// Local directory for development
		return &StorageService{config: config}, nil
	}

	awsCfg := &aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	}
	if config.AWS.Endpoint != "" {
		awsCfg.Endpoint = aws.String(config.AWS.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
	}, nil
}

// NewStorageServiceWithClient is used when the caller already has an S3 client.
func NewStorageServiceWithClient(config *config.Config, client s3iface.S3API) *StorageService {
	return &StorageService{s3Client: client, config: config}
}

func (s *StorageService) SaveReport(ctx context.Context, report *Report) (*UploadResult, error) {
	content := []byte(report.Content)
	if s.s3Client != nil {
		return s.uploadToS3(ctx, content, s.objectKey(report.FileName), report.ContentType)
	}
	return s.saveToLocal(content, report.FileName, report.ContentType)
}

func (s *StorageService) uploadToS3(ctx context.Context, content []byte, key, contentType string) (*UploadResult, error) {
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(content))),
	}

	if _, err := s.s3Client.PutObjectWithContext(ctx, params); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	url, err := s.reportURL(key)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"bucket": s.config.AWS.S3Bucket,
		"key":    key,
		"size":   len(content),
	}).Info("Report uploaded to S3")

	return &UploadResult{
		URL:      url,
		Key:      key,
		Size:     int64(len(content)),
		MimeType: contentType,
		Backend:  "s3",
	}, nil
}

func (s *StorageService) saveToLocal(content []byte, filename, contentType string) (*UploadResult, error) {
	dir := s.config.Export.LocalDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export dir: %w", err)
	}

	fpath := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(fpath, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	logrus.WithField("path", fpath).Info("Report saved locally")

	return &UploadResult{
		URL:      "file://" + filepath.ToSlash(fpath),
		Key:      filepath.Base(filename),
		Size:     int64(len(content)),
		MimeType: contentType,
		Backend:  "local",
	}, nil
}

// reportURL presigns a download link when an expiry is configured and falls
// back to the plain object URL otherwise.
func (s *StorageService) reportURL(key string) (string, error) {
	if s.config.Export.URLExpiry > 0 {
		return s.GeneratePresignedURL(key, s.config.Export.URLExpiry)
	}
	return s.getS3URL(key), nil
}

func (s *StorageService) GeneratePresignedURL(key string, expiration time.Duration) (string, error) {
	if s.s3Client == nil {
		return "", fmt.Errorf("S3 client not configured")
	}

	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(expiration)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url, nil
}

func (s *StorageService) objectKey(filename string) string {
	prefix := strings.Trim(s.config.Export.KeyPrefix, "/")
	if prefix == "" {
		return filename
	}
	return path.Join(prefix, filename)
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.AWS.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.config.AWS.Endpoint, "/"), s.config.AWS.S3Bucket, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}
