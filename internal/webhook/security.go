package webhook

import (
	"crypto/subtle"
	"fmt"
	"net/netip"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// validator holds the parsed form of a SecurityConfig.
type validator struct {
	secret  []byte
	allowed []netip.Prefix // single addresses are stored as /32 or /128
	senders *senderLimiter // nil when limiting is disabled
}

func newValidator(cfg SecurityConfig) (*validator, error) {
	v := &validator{}
	if cfg.Secret != "" {
		v.secret = []byte(cfg.Secret)
	}

	for _, entry := range cfg.AllowedIPs {
		prefix, err := parseAllowEntry(entry)
		if err != nil {
			return nil, err
		}
		v.allowed = append(v.allowed, prefix)
	}

	if cfg.RateLimitPerMin > 0 {
		v.senders = newSenderLimiter(cfg.RateLimitPerMin)
	}
	return v, nil
}

func parseAllowEntry(entry string) (netip.Prefix, error) {
	entry = strings.TrimSpace(entry)
	if strings.Contains(entry, "/") {
		prefix, err := netip.ParsePrefix(entry)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("%w: %q", ErrInvalidAllow, entry)
		}
		return prefix.Masked(), nil
	}
	addr, err := netip.ParseAddr(entry)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %q", ErrInvalidAllow, entry)
	}
	return netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()), nil
}

// checkIP passes every address when no allow list is configured.
func (v *validator) checkIP(ip string) error {
	if len(v.allowed) == 0 {
		return nil
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrIPNotAllowed, ip)
	}
	addr = addr.Unmap()
	for _, p := range v.allowed {
		if p.Contains(addr) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrIPNotAllowed, ip)
}

// checkSecret compares in constant time. With no secret configured every
// request passes.
func (v *validator) checkSecret(presented string) error {
	if v.secret == nil {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(presented), v.secret) != 1 {
		return ErrSecretMismatch
	}
	return nil
}

func (v *validator) checkRate(sender string) error {
	if v.senders == nil {
		return nil
	}
	if !v.senders.allow(sender) {
		return fmt.Errorf("%w for %s", ErrRateLimited, sender)
	}
	return nil
}

// senderLimiter keeps one token bucket per sender; idle senders expire.
type senderLimiter struct {
	buckets *expirable.LRU[string, *rate.Limiter]
	limit   rate.Limit
	burst   int
}

func newSenderLimiter(perMin int) *senderLimiter {
	return &senderLimiter{
		buckets: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterIdleTTL),
		limit:   rate.Limit(float64(perMin) / 60.0),
		burst:   max(perMin/10, 1),
	}
}

func (s *senderLimiter) allow(sender string) bool {
	bucket, ok := s.buckets.Get(sender)
	if !ok {
		bucket = rate.NewLimiter(s.limit, s.burst)
		s.buckets.Add(sender, bucket)
	}
	return bucket.Allow()
}
