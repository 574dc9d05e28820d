package scratchpad

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

var (
	sessionMu     sync.Mutex
	lastSessionMs int64
)

// GenerateSessionID returns a URL-safe, monotonically increasing session
// identifier: a UTC timestamp with ':' and '.' replaced by '-', plus a short
// random suffix. Two calls in the same millisecond are disambiguated by
// bumping the timestamp, so IDs sort in generation order.
func GenerateSessionID() string {
	sessionMu.Lock()
	ms := time.Now().UnixMilli()
	if ms <= lastSessionMs {
		ms = lastSessionMs + 1
	}
	lastSessionMs = ms
	sessionMu.Unlock()

	stamp := time.UnixMilli(ms).UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)

	var b [3]byte
	suffix := "000000"
	if _, err := rand.Read(b[:]); err == nil {
		suffix = hex.EncodeToString(b[:])
	}
	return stamp + "-" + suffix
}
