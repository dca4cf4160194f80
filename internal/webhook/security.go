package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// SecurityValidator validates webhook requests
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	v := &SecurityValidator{config: config}
	if config.RateLimitPerMin > 0 {
		v.rateLimiter = newRateLimiter(config.RateLimitPerMin)
	}
	return v
}

// Sign returns the signature header value GitHub would send for payload.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// SignatureHeader picks the signature header, preferring the sha256 one.
func SignatureHeader(h http.Header) string {
	if sig := h.Get(HeaderSignature256); sig != "" {
		return sig
	}
	return h.Get(HeaderSignature)
}

// ValidateSignature verifies the HMAC-SHA256 of the raw payload.
func (v *SecurityValidator) ValidateSignature(payload []byte, signature string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	if v.config.Secret == "" {
		return ErrSecretNotSet
	}

	// GitHub sends signature as "sha256=<hex>"
	if !strings.HasPrefix(signature, signaturePrefix) {
		return fmt.Errorf("%w: unexpected format", ErrInvalidSignature)
	}

	expectedSig, err := hex.DecodeString(signature[len(signaturePrefix):])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	mac := hmac.New(sha256.New, []byte(v.config.Secret))
	mac.Write(payload)

	// Constant-time comparison on raw bytes
	if !hmac.Equal(expectedSig, mac.Sum(nil)) {
		return ErrInvalidSignature
	}

	return nil
}

// ValidateIPAddress checks if request IP is whitelisted
func (v *SecurityValidator) ValidateIPAddress(r *http.Request) error {
	if len(v.config.AllowedIPs) == 0 {
		return nil
	}

	ip := extractIP(r)
	parsed := net.ParseIP(ip)

	for _, allowedIP := range v.config.AllowedIPs {
		if ip == allowedIP {
			return nil
		}

		if strings.Contains(allowedIP, "/") && parsed != nil {
			_, ipNet, err := net.ParseCIDR(allowedIP)
			if err != nil {
				continue
			}
			if ipNet.Contains(parsed) {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: %s", ErrIPNotAllowed, ip)
}

// CheckRateLimit enforces rate limiting per source. Disabled when no limit is set.
func (v *SecurityValidator) CheckRateLimit(source string) error {
	if v.rateLimiter == nil {
		return nil
	}
	return v.rateLimiter.Allow(source)
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// rateLimiter keeps one token bucket per source, evicted after inactivity
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique sources
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}
