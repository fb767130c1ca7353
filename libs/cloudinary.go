package libs

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"ansh-apparels/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"
)

const cloudinaryFolder = "ansh-apparels/products"

var cloudinaryVersion = regexp.MustCompile(`^v\d+$`)

// CloudinaryHost uploads product images to Cloudinary instead of the local
// bucket when CLOUDINARY_URL is configured.
type CloudinaryHost struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryHost(cloudinaryURL string) (*CloudinaryHost, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init from URL fail: %w", err)
	}
	return &CloudinaryHost{cld: cld, folder: cloudinaryFolder}, nil
}

func (h *CloudinaryHost) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	name := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if name == "" || name == "." {
		name = "image"
	}

	resp, err := h.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       fmt.Sprintf("%d_%s", time.Now().UnixNano(), name),
		Folder:         h.folder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("cloudinary response is nil")
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("failed to upload to cloudinary: %s", resp.Error.Message)
	}

	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	if resp.URL != "" {
		return resp.URL, nil
	}
	return "", fmt.Errorf("both SecureURL and URL are empty")
}

// DeleteImage destroys an image by public id. An image Cloudinary does not
// know reports models.ErrNotFound.
func (h *CloudinaryHost) DeleteImage(ctx context.Context, publicID string) error {
	if publicID == "" {
		return models.ErrNotFound
	}

	result, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}

	switch result.Result {
	case "ok":
		return nil
	case "not found":
		return models.ErrNotFound
	default:
		log.Warn().Str("public_id", publicID).Str("result", result.Result).Msg("cloudinary deletion failed")
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
}

// CloudinaryPublicID extracts the public id from a Cloudinary delivery URL:
// everything after the upload segment (and the version segment, when there is
// one) with the file extension removed.
func CloudinaryPublicID(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || !strings.HasSuffix(u.Host, "cloudinary.com") {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	start := -1
	for i, seg := range segments {
		if seg == "upload" {
			start = i + 1
			break
		}
	}
	if start < 0 || start >= len(segments) {
		return "", false
	}

	rest := segments[start:]
	for i, seg := range rest {
		if cloudinaryVersion.MatchString(seg) {
			rest = rest[i+1:]
			break
		}
	}
	if len(rest) == 0 {
		return "", false
	}

	publicID := strings.Join(rest, "/")
	publicID = strings.TrimSuffix(publicID, path.Ext(publicID))
	if publicID == "" {
		return "", false
	}
	return publicID, true
}
