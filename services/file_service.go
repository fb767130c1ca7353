package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"ansh-apparels/libs"
	"ansh-apparels/models"
	"ansh-apparels/utils"

	"github.com/rs/zerolog/log"
)

var storedFileURL = regexp.MustCompile(`/api/files/([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})`)

type FileService struct {
	bucket  BlobBucket
	host    ImageHost
	maxSize int64
}

// NewFileService stores uploads in bucket. host is optional; when set, new
// uploads go to the external image host instead.
func NewFileService(bucket BlobBucket, host ImageHost, maxSize int64) *FileService {
	return &FileService{bucket: bucket, host: host, maxSize: maxSize}
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadImage validates and stores an image and returns the URL clients should
// use for it. baseURL is the scheme and host the request came in on.
func (s *FileService) UploadImage(ctx context.Context, upload ImageUpload, baseURL string) (string, error) {
	contentType, body, err := utils.DetectImageType(upload.ContentType, upload.Body)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if !utils.IsImageType(contentType) {
		return "", models.NewValidationError("Only image uploads are allowed")
	}
	if upload.Size > s.maxSize {
		return "", s.tooLarge()
	}

	filename := path.Base(strings.ReplaceAll(upload.Filename, "\\", "/"))
	if filename == "" || filename == "." || filename == "/" {
		filename = "upload"
	}

	// Never trust Size alone; stop reading one byte past the limit.
	limited := &limitedReader{r: io.LimitReader(body, s.maxSize+1), max: s.maxSize}

	if s.host != nil {
		url, err := s.host.UploadImage(ctx, limited, filename)
		if errors.Is(err, errImageTooLarge) || limited.exceeded {
			return "", s.tooLarge()
		}
		return url, err
	}

	file, err := s.bucket.Upload(ctx, filename, contentType, limited)
	if errors.Is(err, errImageTooLarge) || limited.exceeded {
		return "", s.tooLarge()
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(baseURL, "/") + "/api/files/" + file.ID, nil
}

func (s *FileService) Open(ctx context.Context, id string) (*models.StoredFile, io.ReadCloser, error) {
	return s.bucket.Open(ctx, strings.TrimSpace(id))
}

// DeleteReferenced deletes every distinct stored image the URLs point at and
// returns how many were removed. Missing blobs are not an error.
func (s *FileService) DeleteReferenced(ctx context.Context, imageURLs []string) int {
	fileIDs := map[string]bool{}
	publicIDs := map[string]bool{}
	for _, raw := range imageURLs {
		raw = strings.TrimSpace(raw)
		if id, ok := StoredFileID(raw); ok {
			fileIDs[id] = true
			continue
		}
		if s.host != nil {
			if publicID, ok := libs.CloudinaryPublicID(raw); ok {
				publicIDs[publicID] = true
			}
		}
	}

	deleted := 0
	for id := range fileIDs {
		if s.cleanup(s.bucket.Delete(ctx, id), "file_id", id) {
			deleted++
		}
	}
	for publicID := range publicIDs {
		if s.cleanup(s.host.DeleteImage(ctx, publicID), "public_id", publicID) {
			deleted++
		}
	}
	return deleted
}

func (s *FileService) cleanup(err error, key, id string) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, models.ErrNotFound):
		return false
	default:
		log.Warn().Err(err).Str(key, id).Msg("image cleanup failed")
		return false
	}
}

func (s *FileService) tooLarge() error {
	return models.NewValidationError(fmt.Sprintf("Image too large (max %dMB)", s.maxSize/(1024*1024)))
}

// StoredFileID extracts the blob id from a /api/files/<id> URL, absolute or
// relative.
func StoredFileID(imageURL string) (string, bool) {
	m := storedFileURL.FindStringSubmatch(imageURL)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

var errImageTooLarge = errors.New("image exceeds upload limit")

type limitedReader struct {
	r        io.Reader
	max      int64
	read     int64
	exceeded bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.max {
		l.exceeded = true
		return n, errImageTooLarge
	}
	return n, err
}
