package services

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/commerce-dashboard/internal/config"
)

type fakeS3 struct {
	s3iface.S3API
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = in
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func testReport() *Report {
	return &Report{
		FileName:    "orders_export_2024-01-02.csv",
		ContentType: "text/csv;charset=utf-8",
		Rows:        1,
		Content:     ReportHeader + "\nA,Ann,2024-01-02,$1.00,pending,",
	}
}

func TestSaveReportLocal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	cfg := &config.Config{Export: config.ExportConfig{LocalDir: dir}}

	svc, err := NewStorageService(cfg)
	require.NoError(t, err)

	result, err := svc.SaveReport(context.Background(), testReport())
	require.NoError(t, err)
	assert.Equal(t, "local", result.Backend)
	assert.Equal(t, "orders_export_2024-01-02.csv", result.Key)

	written, err := os.ReadFile(filepath.Join(dir, "orders_export_2024-01-02.csv"))
	require.NoError(t, err)
	assert.Equal(t, testReport().Content, string(written))
	assert.Equal(t, int64(len(written)), result.Size)
}

func TestSaveReportS3(t *testing.T) {
	cfg := &config.Config{
		AWS:    config.AWSConfig{Region: "eu-west-1", S3Bucket: "reports"},
		Export: config.ExportConfig{KeyPrefix: "/exports/orders/"},
	}
	client := &fakeS3{}
	svc := NewStorageServiceWithClient(cfg, client)

	result, err := svc.SaveReport(context.Background(), testReport())
	require.NoError(t, err)

	assert.Equal(t, "s3", result.Backend)
	assert.Equal(t, "exports/orders/orders_export_2024-01-02.csv", result.Key)
	assert.Equal(t, "https://reports.s3.eu-west-1.amazonaws.com/exports/orders/orders_export_2024-01-02.csv", result.URL)
	assert.Equal(t, "reports", aws.StringValue(client.input.Bucket))
	assert.Equal(t, "text/csv;charset=utf-8", aws.StringValue(client.input.ContentType))
	assert.Equal(t, testReport().Content, string(client.body))
}

func TestSaveReportS3CustomEndpoint(t *testing.T) {
	cfg := &config.Config{
		AWS: config.AWSConfig{S3Bucket: "reports", Endpoint: "http://localhost:9000/"},
	}
	svc := NewStorageServiceWithClient(cfg, &fakeS3{})

	result, err := svc.SaveReport(context.Background(), testReport())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/reports/orders_export_2024-01-02.csv", result.URL)
}

func TestSaveReportS3Error(t *testing.T) {
	cfg := &config.Config{AWS: config.AWSConfig{S3Bucket: "reports"}}
	svc := NewStorageServiceWithClient(cfg, &fakeS3{err: errors.New("access denied")})

	_, err := svc.SaveReport(context.Background(), testReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestGeneratePresignedURLWithoutClient(t *testing.T) {
	svc, err := NewStorageService(&config.Config{})
	require.NoError(t, err)

	_, err = svc.GeneratePresignedURL("key", 0)
	assert.Error(t, err)
}
