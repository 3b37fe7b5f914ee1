// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis session cache keys.
const SessionCachePrefix = "session:"

// SessionCacheTTL is the time-to-live for cached session snapshots.
const SessionCacheTTL = 10 * time.Minute
