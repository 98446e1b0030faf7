package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Storage backend selectors for Config.StorageBackend.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Config carries every tunable of the service. Values come from the
// environment (after godotenv has loaded .env) and fall back to the
// defaults the original deployment used.
type Config struct {
	ListenAddr     string `validate:"required"`
	UploadDir      string `validate:"required"`
	MongoURI       string `validate:"required"`
	DBName         string `validate:"required"`
	StorageBackend string `validate:"oneof=local s3"`
	BucketName     string `validate:"required_if=StorageBackend s3"`

	MaxUploadBytes   int64    `validate:"gt=0"`
	AllowedTypes     []string `validate:"min=1"`
	ThumbnailWidth   int      `validate:"gt=0"`
	ThumbnailHeight  int      `validate:"gt=0"`
	ThumbnailQuality int      `validate:"gt=0,lte=100"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8007"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "eventsnap"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendLocal),
		BucketName:     os.Getenv("BUCKET_NAME"),

		MaxUploadBytes:   getEnvInt64("MAX_UPLOAD_BYTES", 10*1024*1024),
		AllowedTypes:     splitList(getEnv("ALLOWED_TYPES", "image/jpeg,image/jpg,image/png,image/gif,image/webp")),
		ThumbnailWidth:   getEnvInt("THUMBNAIL_WIDTH", 300),
		ThumbnailHeight:  getEnvInt("THUMBNAIL_HEIGHT", 300),
		ThumbnailQuality: getEnvInt("THUMBNAIL_QUALITY", 85),
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// TypeAllowed reports whether the declared content type is on the
// upload allow-list. Media type parameters ("; charset=...") are ignored.
func (c *Config) TypeAllowed(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	for _, allowed := range c.AllowedTypes {
		if mediaType == allowed {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
