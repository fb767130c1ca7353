package libs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"ansh-apparels/database"
	"ansh-apparels/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const DefaultChunkSize = 255 * 1024

// Bucket stores uploaded blobs as a metadata row plus fixed-size chunks,
// the same layout GridFS uses.
type Bucket struct {
	db        database.DBTX
	chunkSize int
}

func NewBucket(db database.DBTX) *Bucket {
	return &Bucket{db: db, chunkSize: DefaultChunkSize}
}

// Upload copies r into the bucket inside one transaction, so a failed upload
// leaves neither a file row nor orphaned chunks.
func (b *Bucket) Upload(ctx context.Context, filename, contentType string, r io.Reader) (*models.StoredFile, error) {
	file := &models.StoredFile{
		ID:          uuid.NewString(),
		Filename:    filename,
		ContentType: contentType,
		ChunkSize:   b.chunkSize,
	}

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO upload_files (id, filename, content_type, length, chunk_size, uploaded_at)
		VALUES ($1, $2, $3, 0, $4, NOW())
		RETURNING uploaded_at
	`, file.ID, file.Filename, file.ContentType, file.ChunkSize).Scan(&file.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("create file %s: %w", file.ID, err)
	}

	buf := make([]byte, b.chunkSize)
	for n := 0; ; n++ {
		read, readErr := io.ReadFull(r, buf)
		if read > 0 {
			if _, err := tx.Exec(ctx,
				`INSERT INTO upload_chunks (file_id, n, data) VALUES ($1, $2, $3)`,
				file.ID, n, buf[:read],
			); err != nil {
				return nil, fmt.Errorf("write chunk %d of %s: %w", n, file.ID, err)
			}
			file.Length += int64(read)
		}
		if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read upload: %w", readErr)
		}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE upload_files SET length = $1 WHERE id = $2`, file.Length, file.ID,
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return file, nil
}

func (b *Bucket) Stat(ctx context.Context, id string) (*models.StoredFile, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrNotFound
	}

	var file models.StoredFile
	err := b.db.QueryRow(ctx, `
		SELECT id::text, filename, content_type, length, chunk_size, uploaded_at
		FROM upload_files WHERE id = $1
	`, id).Scan(&file.ID, &file.Filename, &file.ContentType, &file.Length, &file.ChunkSize, &file.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// Open returns the file metadata and a reader that fetches one chunk per
// round trip, so large blobs are never held in memory whole.
func (b *Bucket) Open(ctx context.Context, id string) (*models.StoredFile, io.ReadCloser, error) {
	file, err := b.Stat(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return file, &chunkReader{ctx: ctx, db: b.db, fileID: file.ID}, nil
}

func (b *Bucket) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return models.ErrNotFound
	}

	tag, err := b.db.Exec(ctx, `DELETE FROM upload_files WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

type chunkReader struct {
	ctx    context.Context
	db     database.DBTX
	fileID string
	next   int
	buf    []byte
	done   bool
}

func (r *chunkReader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		if r.done {
			return 0, io.EOF
		}
		if err := r.fetch(); err != nil {
			return 0, err
		}
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

func (r *chunkReader) fetch() error {
	var data []byte
	err := r.db.QueryRow(r.ctx,
		`SELECT data FROM upload_chunks WHERE file_id = $1 AND n = $2`, r.fileID, r.next,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		r.done = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("read chunk %d of %s: %w", r.next, r.fileID, err)
	}
	r.next++
	r.buf = data
	return nil
}

func (r *chunkReader) Close() error {
	r.done = true
	r.buf = nil
	return nil
}
