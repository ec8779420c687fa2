package utils

import (
	"time"
)

// Token and session time constants
const (
	// AccessTokenTTL is the time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// RefreshTokenTTL is the time-to-live for refresh tokens (7 days)
	RefreshTokenTTL = 7 * 24 * time.Hour

	// SessionTimeout is the default session timeout (24 hours)
	SessionTimeout = 24 * time.Hour
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Cache constants
const (
	// MagicianListCacheKey is the Redis key holding the cached magician roster listing
	MagicianListCacheKey = "pwm:magicians:list"

	// MagicianListCacheTTL bounds how stale the cached roster may get
	MagicianListCacheTTL = time.Minute
)

// Upload constants
const (
	// MaxPhotoSizeBytes caps profile photo uploads (5MB)
	MaxPhotoSizeBytes = int64(5 * 1024 * 1024)

	// PhotoThumbnailPx is the square bounding box for generated thumbnails
	PhotoThumbnailPx = 200
)
