package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration

	// AdminEmail is the one account allowed through the admin gate.
	AdminEmail string
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("MARKETBOARD_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("MARKETBOARD_JWT_ISSUER")
	if issuer == "" {
		issuer = "marketboard"
	}

	admin := os.Getenv("MARKETBOARD_ADMIN_EMAIL")
	if admin == "" {
		admin = "healthymarket2013@gmail.com"
	}

	dur := 24 * time.Hour
	if ttl := os.Getenv("MARKETBOARD_JWT_TTL_HOURS"); ttl != "" {
		if h, err := strconv.Atoi(ttl); err == nil && h > 0 {
			dur = time.Duration(h) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: dur,
		AdminEmail:  admin,
	}
}

// StorageConfig selects where uploaded exhibitor images live.
type StorageConfig struct {
	Backend string // "file" or "s3"

	// file backend
	Dir     string
	BaseURL string

	// s3 backend
	Bucket   string
	Region   string
	Endpoint string
	Prefix   string
}

func LoadStorageConfig() StorageConfig {
	backend := os.Getenv("MARKETBOARD_STORAGE_BACKEND")
	if backend == "" {
		backend = "file"
	}

	dir := os.Getenv("MARKETBOARD_UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}

	baseURL := os.Getenv("MARKETBOARD_UPLOAD_BASE_URL")
	if baseURL == "" {
		baseURL = "/uploads"
	}

	prefix := os.Getenv("MARKETBOARD_S3_PREFIX")
	if prefix == "" {
		prefix = "exhibitors/"
	}

	return StorageConfig{
		Backend:  backend,
		Dir:      dir,
		BaseURL:  baseURL,
		Bucket:   os.Getenv("MARKETBOARD_S3_BUCKET"),
		Region:   os.Getenv("MARKETBOARD_S3_REGION"),
		Endpoint: os.Getenv("MARKETBOARD_S3_ENDPOINT"),
		Prefix:   prefix,
	}
}
