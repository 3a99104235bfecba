package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/label-service/internal/service/cache"
)

const (
	// DefaultAPIKeyCacheSize bounds the number of remembered verification results.
	DefaultAPIKeyCacheSize = 1024
	// DefaultAPIKeyCacheTTL bounds how long a verification result is trusted.
	DefaultAPIKeyCacheTTL = 5 * time.Minute
)

// APIKeyVerifier checks presented API keys against the configured set.
//
// Configured entries starting with "$2" are treated as bcrypt hashes, every
// other entry as a plain key. Results are cached under the SHA-256 digest of
// the presented key so a hashed key costs one bcrypt comparison per TTL.
type APIKeyVerifier struct {
	plain  [][]byte
	hashed [][]byte
	cache  *cache.TTLCache[bool]
}

// NewAPIKeyVerifier builds a verifier from configured keys.
func NewAPIKeyVerifier(keys map[string]bool, cacheSize int, cacheTTL time.Duration) *APIKeyVerifier {
	if cacheSize <= 0 {
		cacheSize = DefaultAPIKeyCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultAPIKeyCacheTTL
	}

	v := &APIKeyVerifier{cache: cache.New[bool]("api_keys", cacheSize, cacheTTL)}
	for key, enabled := range keys {
		if !enabled || key == "" {
			continue
		}
		if IsBcryptHash(key) {
			v.hashed = append(v.hashed, []byte(key))
		} else {
			v.plain = append(v.plain, []byte(key))
		}
	}
	return v
}

// Enabled reports whether any key is configured.
func (v *APIKeyVerifier) Enabled() bool {
	return len(v.plain)+len(v.hashed) > 0
}

// Verify reports whether key matches a configured key.
func (v *APIKeyVerifier) Verify(key string) bool {
	if key == "" || !v.Enabled() {
		return false
	}

	digest := KeyFingerprint(key)
	if ok, found := v.cache.Get(digest); found {
		return ok
	}

	ok := v.verify([]byte(key))
	v.cache.Set(digest, ok)
	return ok
}

func (v *APIKeyVerifier) verify(key []byte) bool {
	for _, p := range v.plain {
		if subtle.ConstantTimeCompare(p, key) == 1 {
			return true
		}
	}
	for _, h := range v.hashed {
		if bcrypt.CompareHashAndPassword(h, key) == nil {
			return true
		}
	}
	return false
}

// Stop releases the verifier's cache.
func (v *APIKeyVerifier) Stop() {
	v.cache.Stop()
}

// IsBcryptHash reports whether s looks like a bcrypt hash.
func IsBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2") && len(s) == 60
}

// KeyFingerprint returns the hex SHA-256 digest of key. The first 12
// characters identify a caller in logs without exposing the key.
func KeyFingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
