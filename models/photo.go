package models

import "time"

// Photo is the metadata record persisted for every upload. The UUID
// assigned at ingestion doubles as the mongo document key, and Filename
// is the blob-store key of the original bytes. Records are immutable
// once written.
type Photo struct {
	ID               string    `json:"id" bson:"_id"`
	Filename         string    `json:"filename" bson:"filename"`
	OriginalFilename string    `json:"original_filename" bson:"original_filename"`
	FileSize         int64     `json:"file_size" bson:"file_size"`
	ContentType      string    `json:"content_type" bson:"content_type"`
	UploadedAt       time.Time `json:"uploaded_at" bson:"uploaded_at"`
	UploaderInfo     string    `json:"uploader_info,omitempty" bson:"uploader_info,omitempty"`
}

// PhotoView is the URL-annotated projection of a Photo returned to
// clients. ThumbnailURL falls back to URL when no thumbnail exists.
type PhotoView struct {
	ID               string    `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	FileSize         int64     `json:"file_size"`
	ContentType      string    `json:"content_type"`
	UploadedAt       time.Time `json:"uploaded_at"`
	URL              string    `json:"url"`
	ThumbnailURL     string    `json:"thumbnail_url"`
}
