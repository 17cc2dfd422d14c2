package utils

import "time"

// Application Constants
const (
	AppName    = "Carpool"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength  = 8

	// Suggestion query. Distances are meters, computed spherically by the
	// 2dsphere index.
	DefaultSearchRadiusMeters = 5000.0
	MaxSearchRadiusMeters     = 50000.0
	MaxSuggestionResults      = 20
	SuggestionScanLimit       = 100

	// Tracking
	TrackingCacheTTL = 30 * time.Second

	// Rate Limiting
	DefaultRateLimit = 100
	LoginRateLimit   = 5
	RateLimitWindow  = time.Minute
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrInvalidToken       = "invalid token"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
	ErrValidationFailed   = "validation failed"
)

// Cache Keys
const (
	CacheRidePrefix      = "ride:"
	CacheTrackingPrefix  = "tracking:"
	CacheRateLimitPrefix = "rate_limit:"
)

// Geographic Constants
const (
	EarthRadiusKM = 6371.0
)
