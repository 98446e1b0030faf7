// Package utils holds the filename derivation rules shared by the
// ingestion, listing and deletion paths. Every thumbnail key in the
// system is produced by ThumbnailKey; the rule exists nowhere else.
package utils

import (
	"errors"
	"path/filepath"
	"strings"
)

const thumbnailPrefix = "thumb_"

var ErrInvalidKey = errors.New("invalid blob key")

// StoredName builds the blob-store key for an original upload:
// "<id>.<ext>". The extension comes from the user-supplied filename,
// lowercased; when the name has none, the subtype of the (already
// validated) content type is used instead.
func StoredName(id, originalName, contentType string) string {
	ext := extensionOf(originalName)
	if ext == "" {
		ext = subtypeOf(contentType)
	}
	return id + "." + ext
}

// ThumbnailKey derives the thumbnail blob key from an original stored
// name: the extension is stripped, the thumb_ prefix added and .jpg
// forced, so "<uuid>.png" becomes "thumb_<uuid>.jpg".
func ThumbnailKey(storedName string) string {
	base := strings.TrimSuffix(storedName, filepath.Ext(storedName))
	return thumbnailPrefix + base + ".jpg"
}

// PhotoIDFromKey extracts the photo identifier embedded in a blob key,
// accepting both the original ("<uuid>.<ext>") and thumbnail
// ("thumb_<uuid>.jpg") forms.
func PhotoIDFromKey(key string) string {
	base := strings.TrimSuffix(key, filepath.Ext(key))
	return strings.TrimPrefix(base, thumbnailPrefix)
}

// SanitizeKey validates that key is a bare file name with no path
// traversal potential. Anything containing a separator or dot-dot
// sequence is rejected outright rather than cleaned.
func SanitizeKey(key string) (string, error) {
	if key == "" || key == "." || key == ".." {
		return "", ErrInvalidKey
	}
	if strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return "", ErrInvalidKey
	}
	if key != filepath.Base(key) {
		return "", ErrInvalidKey
	}
	return key, nil
}

func extensionOf(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return strings.ToLower(ext)
}

func subtypeOf(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	_, subtype, _ := strings.Cut(strings.TrimSpace(mediaType), "/")
	return strings.ToLower(subtype)
}
