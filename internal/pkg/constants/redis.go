package constants

// Redis key formats
const (
	// Auth
	KeyRevokedToken = "dispatch:revoked:%s" // Format: dispatch:revoked:{jti}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
