package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	miniogo "github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/minio"
)

func TestNewS3Service_RequiresBucket(t *testing.T) {
	_, err := NewS3Service(context.Background(), S3Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET is required")
}

func TestValidateContentType(t *testing.T) {
	s := &s3Service{}

	for _, ct := range []string{"image/png", "image/jpeg", "image/tiff", "image/svg+xml", "application/pdf", "application/postscript"} {
		assert.NoError(t, s.validateContentType(ct), ct)
	}

	err := s.validateContentType("audio/wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid content type")
}

func TestUploadFile_RejectsContentType(t *testing.T) {
	s := &s3Service{bucket: "charts"}

	// Validation happens before the client is touched
	err := s.UploadFile(context.Background(), "k", "text/plain", bytes.NewReader(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid content type")
}

func TestChartKey(t *testing.T) {
	id := uuid.MustParse("6f1f2c3e-8d4b-4f7a-9c1e-2b3a4d5e6f70")

	assert.Equal(t, "charts/6f1f2c3e-8d4b-4f7a-9c1e-2b3a4d5e6f70/bode_mid.png",
		ChartKey("charts", id, "docs/figures/bode_mid.png"))
	assert.Equal(t, "6f1f2c3e-8d4b-4f7a-9c1e-2b3a4d5e6f70/low.svg",
		ChartKey("", id, "low.svg"))
}

// TestS3Service_Integration round-trips a chart through a MinIO container
func TestS3Service_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := minio.Run(ctx,
		"minio/minio:RELEASE.2024-10-29T16-01-48Z",
		minio.WithUsername("minioadmin"),
		minio.WithPassword("minioadmin"),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	endpoint, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	// Create test bucket
	bucketName := "bodeplot-test-" + uuid.New().String()[:8]
	admin, err := miniogo.New(endpoint, &miniogo.Options{
		Creds:  miniocreds.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	require.NoError(t, err)
	require.NoError(t, admin.MakeBucket(ctx, bucketName, miniogo.MakeBucketOptions{}))

	svc, err := NewS3Service(ctx, S3Config{
		Bucket:    bucketName,
		Endpoint:  endpoint,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	})
	require.NoError(t, err)

	payload := []byte("\x89PNG\r\n\x1a\nfake chart")
	key := ChartKey("charts", uuid.New(), "bode_mid.png")

	require.NoError(t, svc.UploadFile(ctx, key, "image/png", bytes.NewReader(payload)))

	info, err := admin.StatObject(ctx, bucketName, key, miniogo.StatObjectOptions{})
	require.NoError(t, err)
	assert.Equal(t, "image/png", info.ContentType)
	assert.Equal(t, int64(len(payload)), info.Size)

	url, err := svc.GenerateDownloadURL(ctx, key)
	require.NoError(t, err)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, body)

	require.NoError(t, svc.DeleteFile(ctx, key))
	_, err = admin.StatObject(ctx, bucketName, key, miniogo.StatObjectOptions{})
	assert.Error(t, err)
}
