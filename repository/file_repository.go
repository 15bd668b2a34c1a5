package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ops-backend/models"
)

const AttachmentBucket = "attachments"

type fileMetadata struct {
	ContentType string `bson:"content_type"`
	UploadedBy  string `bson:"uploaded_by"`
}

// FileRepository keeps attachments in a GridFS bucket keyed by uuid strings.
type FileRepository struct {
	db     *mongo.Database
	bucket string
}

func NewFileRepository(db *mongo.Database) *FileRepository {
	return &FileRepository{db: db, bucket: AttachmentBucket}
}

// open returns a fresh bucket per call; deadlines are stored on the bucket itself.
func (r *FileRepository) open(ctx context.Context) (*gridfs.Bucket, error) {
	bucket, err := gridfs.NewBucket(r.db, options.GridFSBucket().SetName(r.bucket))
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", r.bucket, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := bucket.SetReadDeadline(deadline); err != nil {
			return nil, err
		}
		if err := bucket.SetWriteDeadline(deadline); err != nil {
			return nil, err
		}
	}
	return bucket, nil
}

func (r *FileRepository) Upload(ctx context.Context, name, contentType, uploadedBy string, src io.Reader) (*models.FileInfo, error) {
	bucket, err := r.open(ctx)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	counter := &countingReader{r: src}
	opts := options.GridFSUpload().SetMetadata(fileMetadata{ContentType: contentType, UploadedBy: uploadedBy})
	if err := bucket.UploadFromStreamWithID(id, name, counter, opts); err != nil {
		return nil, fmt.Errorf("upload %s: %w", name, err)
	}

	return &models.FileInfo{
		ID:          id,
		Filename:    name,
		Size:        counter.n,
		ContentType: contentType,
		UploadedBy:  uploadedBy,
		UploadedAt:  time.Now().UTC(),
	}, nil
}

// Open reads a whole attachment into memory together with its stored metadata.
func (r *FileRepository) Open(ctx context.Context, id string) (*models.FileInfo, []byte, error) {
	bucket, err := r.open(ctx)
	if err != nil {
		return nil, nil, err
	}

	stream, err := bucket.OpenDownloadStream(id)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("open file %s: %w", id, err)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, nil, fmt.Errorf("read file %s: %w", id, err)
	}

	file := stream.GetFile()
	info := &models.FileInfo{
		ID:         id,
		Filename:   file.Name,
		Size:       file.Length,
		UploadedAt: file.UploadDate,
	}
	if len(file.Metadata) > 0 {
		var meta fileMetadata
		if err := bson.Unmarshal(file.Metadata, &meta); err == nil {
			info.ContentType = meta.ContentType
			info.UploadedBy = meta.UploadedBy
		}
	}
	return info, data, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
