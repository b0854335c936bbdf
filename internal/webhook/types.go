package webhook

import (
	"errors"
	"time"
)

// SecretHeader carries the shared secret on inbound message webhooks.
const SecretHeader = "X-Webhook-Secret"

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret, empty disables the check
	AllowedIPs      []string // IP or CIDR allow list (optional)
	RateLimitPerMin int      // Max requests per minute per sender, 0 disables limiting
}

var (
	ErrIPNotAllowed   = errors.New("sender address not allowed")
	ErrSecretMismatch = errors.New("invalid webhook secret")
	ErrRateLimited    = errors.New("rate limit exceeded")
	ErrInvalidAllow   = errors.New("invalid allowed_ips entry")
)

// Rejection reasons, used as metric labels.
const (
	reasonIP        = "ip"
	reasonSecret    = "secret"
	reasonRateLimit = "rate_limit"
)

const (
	limiterCacheSize = 1000
	limiterIdleTTL   = 5 * time.Minute
)
