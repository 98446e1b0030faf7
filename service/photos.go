// Package service implements the media ingestion and retrieval
// pipelines that keep the original blob, its thumbnail and the metadata
// record consistent.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"eventsnap/config"
	"eventsnap/database"
	"eventsnap/models"
	"eventsnap/storage"
	"eventsnap/thumbnail"
	"eventsnap/utils"
)

// PhotoService drives the upload, listing, retrieval and deletion
// pipelines over the injected blob store and metadata repository.
type PhotoService struct {
	blobs  storage.BlobStore
	photos database.PhotoRepository
	cfg    *config.Config
}

func NewPhotoService(blobs storage.BlobStore, photos database.PhotoRepository, cfg *config.Config) *PhotoService {
	return &PhotoService{blobs: blobs, photos: photos, cfg: cfg}
}

// Upload carries the untrusted parameters of an inbound upload.
type Upload struct {
	Data             []byte
	ContentType      string
	OriginalFilename string
	Size             int64
	UploaderInfo     string
}

// Ingest validates the upload, writes the original blob, best-effort
// derives and writes a thumbnail, then inserts the metadata record.
// The record is only visible once both blob writes have resolved; a
// failed thumbnail degrades the response to the original's URL instead
// of failing the upload.
func (s *PhotoService) Ingest(ctx context.Context, up Upload) (*models.PhotoView, error) {
	if !s.cfg.TypeAllowed(up.ContentType) {
		return nil, &ValidationError{
			Kind:    KindUnsupportedType,
			Message: "Invalid file type. Only JPEG, PNG, GIF, and WebP images are allowed.",
		}
	}
	if up.Size > s.cfg.MaxUploadBytes {
		return nil, &ValidationError{
			Kind:    KindTooLarge,
			Message: fmt.Sprintf("File too large. Maximum size is %d bytes.", s.cfg.MaxUploadBytes),
		}
	}

	id := uuid.NewString()
	storedName := utils.StoredName(id, up.OriginalFilename, up.ContentType)

	if err := s.blobs.Write(ctx, storedName, up.Data); err != nil {
		return nil, &StorageError{Op: "write original blob", Err: err}
	}

	thumbKey := utils.ThumbnailKey(storedName)
	hasThumb := false
	thumb, err := thumbnail.Derive(up.Data, s.cfg.ThumbnailWidth, s.cfg.ThumbnailHeight, s.cfg.ThumbnailQuality)
	if err != nil {
		slog.Warn("thumbnail derivation failed, serving original instead",
			"photo_id", id, "error", err)
	} else if err := s.blobs.Write(ctx, thumbKey, thumb); err != nil {
		slog.Warn("thumbnail write failed, serving original instead",
			"photo_id", id, "key", thumbKey, "error", err)
	} else {
		hasThumb = true
	}

	photo := &models.Photo{
		ID:               id,
		Filename:         storedName,
		OriginalFilename: up.OriginalFilename,
		FileSize:         up.Size,
		ContentType:      up.ContentType,
		UploadedAt:       time.Now().UTC(),
		UploaderInfo:     up.UploaderInfo,
	}
	if err := s.photos.Insert(ctx, photo); err != nil {
		// No compensating delete: the blobs written above are left
		// orphaned and logged for an operator to reap.
		slog.Error("metadata insert failed, blobs orphaned",
			"photo_id", id, "original", storedName, "thumbnail", thumbKey, "error", err)
		return nil, &StorageError{Op: "insert photo metadata", Err: err}
	}

	slog.Info("photo ingested", "photo_id", id, "filename", storedName,
		"size", up.Size, "thumbnail", hasThumb)
	return s.view(photo, hasThumb), nil
}

// List returns every photo, newest first, probing the blob store so
// each view's thumbnail URL reflects whether a thumbnail really exists.
func (s *PhotoService) List(ctx context.Context) ([]models.PhotoView, error) {
	photos, err := s.photos.FindAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list photos", Err: err}
	}

	views := make([]models.PhotoView, 0, len(photos))
	for i := range photos {
		p := &photos[i]
		ok, err := s.blobs.Exists(ctx, utils.ThumbnailKey(p.Filename))
		if err != nil {
			slog.Warn("thumbnail existence probe failed", "photo_id", p.ID, "error", err)
			ok = false
		}
		views = append(views, *s.view(p, ok))
	}
	return views, nil
}

// GetFile returns the raw bytes stored under key.
func (s *PhotoService) GetFile(ctx context.Context, key string) ([]byte, error) {
	data, err := s.blobs.Read(ctx, key)
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, utils.ErrInvalidKey) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "read blob", Err: err}
	}
	return data, nil
}

// GetThumbnail returns the thumbnail stored under key, falling back to
// the photo's original bytes when no thumbnail was ever written. The
// original is resolved through the metadata record rather than by
// reversing the key derivation, which would require guessing the
// original extension.
func (s *PhotoService) GetThumbnail(ctx context.Context, key string) ([]byte, error) {
	data, err := s.blobs.Read(ctx, key)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, utils.ErrInvalidKey) {
		return nil, &StorageError{Op: "read thumbnail blob", Err: err}
	}

	photo, err := s.photos.FindByID(ctx, utils.PhotoIDFromKey(key))
	if errors.Is(err, database.ErrNoRecord) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "resolve thumbnail fallback", Err: err}
	}
	return s.GetFile(ctx, photo.Filename)
}

// Delete removes the original blob, the derived thumbnail and finally
// the metadata record. Blob absence is ignored so a half-deleted photo
// can always be deleted again; a missing record is ErrNotFound.
func (s *PhotoService) Delete(ctx context.Context, id string) error {
	photo, err := s.photos.FindByID(ctx, id)
	if errors.Is(err, database.ErrNoRecord) {
		return ErrNotFound
	}
	if err != nil {
		return &StorageError{Op: "find photo", Err: err}
	}

	if err := s.blobs.Delete(ctx, photo.Filename); err != nil {
		return &StorageError{Op: "delete original blob", Err: err}
	}
	if err := s.blobs.Delete(ctx, utils.ThumbnailKey(photo.Filename)); err != nil {
		return &StorageError{Op: "delete thumbnail blob", Err: err}
	}

	if err := s.photos.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNoRecord) {
			// A concurrent delete won the race on the record.
			return ErrNotFound
		}
		return &StorageError{Op: "delete photo metadata", Err: err}
	}

	slog.Info("photo deleted", "photo_id", id, "filename", photo.Filename)
	return nil
}

func (s *PhotoService) view(p *models.Photo, hasThumb bool) *models.PhotoView {
	v := &models.PhotoView{
		ID:               p.ID,
		Filename:         p.Filename,
		OriginalFilename: p.OriginalFilename,
		FileSize:         p.FileSize,
		ContentType:      p.ContentType,
		UploadedAt:       p.UploadedAt,
		URL:              "/api/photos/file/" + p.Filename,
	}
	if hasThumb {
		v.ThumbnailURL = "/api/photos/thumbnail/" + utils.ThumbnailKey(p.Filename)
	} else {
		v.ThumbnailURL = v.URL
	}
	return v
}
