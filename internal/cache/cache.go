package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/murl-digital/throw-cruncher/internal/parse"
)

// ScaleCache memoizes best-effort rating parses keyed by raw cell text.
// Survey exports repeat the same handful of cell values thousands of times
// ("3", "Fresh", "not sure"), so the builder consults the memo before
// re-running regex recovery.
type ScaleCache interface {
	Get(raw string) (parse.Outcome, bool)
	Set(raw string, out parse.Outcome)
}

// Key generates a cache key from a raw cell value
func Key(raw string) string {
	hash := sha256.Sum256([]byte(raw))
	return "throwcruncher:v1:" + hex.EncodeToString(hash[:])
}
