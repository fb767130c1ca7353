package utils

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const sniffLength = 3072

// DetectImageType returns the content type to record for an upload and a
// reader that still yields the whole body. The declared type wins unless it
// is empty or application/octet-stream, in which case the leading bytes are
// sniffed.
func DetectImageType(declared string, r io.Reader) (string, io.Reader, error) {
	declared = strings.TrimSpace(declared)
	if declared != "" && !strings.EqualFold(declared, "application/octet-stream") {
		return declared, r, nil
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", nil, err
	}
	head = head[:n]

	detected := mimetype.Detect(head).String()
	return detected, io.MultiReader(bytes.NewReader(head), r), nil
}

func IsImageType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}
