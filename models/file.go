package models

import "time"

// StoredFile is the metadata row of a blob kept in the upload bucket.
type StoredFile struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Length      int64     `json:"length"`
	ChunkSize   int       `json:"chunkSize"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
