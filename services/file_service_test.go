package services

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"ansh-apparels/models"
	"ansh-apparels/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestUploadImageToBucket(t *testing.T) {
	ctx := context.Background()
	bucket := testutil.NewBucket()
	svc := NewFileService(bucket, nil, 5*1024*1024)

	url, err := svc.UploadImage(ctx, ImageUpload{
		Filename:    "shirt.png",
		ContentType: "application/octet-stream",
		Size:        int64(len(pngBytes)),
		Body:        bytes.NewReader(pngBytes),
	}, "https://api.example.com/")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "https://api.example.com/api/files/"), url)

	id, ok := StoredFileID(url)
	require.True(t, ok)

	file, reader, err := svc.Open(ctx, id)
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, "image/png", file.ContentType)
	assert.Equal(t, "shirt.png", file.Filename)

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestUploadImageRejectsNonImages(t *testing.T) {
	svc := NewFileService(testutil.NewBucket(), nil, 5*1024*1024)

	_, err := svc.UploadImage(context.Background(), ImageUpload{
		Filename:    "notes.pdf",
		ContentType: "application/pdf",
		Size:        3,
		Body:        strings.NewReader("pdf"),
	}, "http://localhost:8080")

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Only image uploads are allowed", verr.Message)
}

func TestUploadImageRejectsLargeFiles(t *testing.T) {
	svc := NewFileService(testutil.NewBucket(), nil, 5*1024*1024)

	_, err := svc.UploadImage(context.Background(), ImageUpload{
		Filename:    "huge.png",
		ContentType: "image/png",
		Size:        6 * 1024 * 1024,
		Body:        bytes.NewReader(pngBytes),
	}, "http://localhost:8080")

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Image too large (max 5MB)", verr.Message)
}

func TestUploadImageEnforcesLimitWhileReading(t *testing.T) {
	bucket := testutil.NewBucket()
	svc := NewFileService(bucket, nil, 8)

	_, err := svc.UploadImage(context.Background(), ImageUpload{
		Filename:    "liar.png",
		ContentType: "image/png",
		Size:        4,
		Body:        bytes.NewReader(bytes.Repeat([]byte{1}, 64)),
	}, "http://localhost:8080")

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestUploadImageToExternalHost(t *testing.T) {
	host := testutil.NewImageHost()
	bucket := testutil.NewBucket()
	svc := NewFileService(bucket, host, 5*1024*1024)

	url, err := svc.UploadImage(context.Background(), ImageUpload{
		Filename:    "tee.png",
		ContentType: "image/png",
		Size:        int64(len(pngBytes)),
		Body:        bytes.NewReader(pngBytes),
	}, "http://localhost:8080")
	require.NoError(t, err)

	assert.Contains(t, url, "res.cloudinary.com")
	assert.Equal(t, []string{"tee.png"}, host.Uploaded)

	assert.Equal(t, 1, svc.DeleteReferenced(context.Background(), []string{url, url}))
	assert.Equal(t, []string{"ansh-apparels/products/tee"}, host.Deleted)
}

func TestDeleteReferencedToleratesMissingBlobs(t *testing.T) {
	bucket := testutil.NewBucket()
	svc := NewFileService(bucket, nil, 5*1024*1024)
	bucket.Put("0b0f3c2e-8f4c-4f35-9c32-7b3a0f6d1e22", "a.png", "image/png", nil)

	n := svc.DeleteReferenced(context.Background(), []string{
		"/api/files/0B0F3C2E-8F4C-4F35-9C32-7B3A0F6D1E22",
		"/api/files/0b0f3c2e-8f4c-4f35-9c32-7b3a0f6d1e22",
		"/api/files/aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee",
		"https://res.cloudinary.com/demo/image/upload/v1/x.png",
		"not a url",
	})
	assert.Equal(t, 1, n)
}

func TestStoredFileID(t *testing.T) {
	id, ok := StoredFileID("https://api.example.com/api/files/0b0f3c2e-8f4c-4f35-9c32-7b3a0f6d1e22?x=1")
	assert.True(t, ok)
	assert.Equal(t, "0b0f3c2e-8f4c-4f35-9c32-7b3a0f6d1e22", id)

	_, ok = StoredFileID("/api/files/not-a-uuid")
	assert.False(t, ok)
}
