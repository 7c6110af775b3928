// File: utils/constants.go
package utils

import "time"

// BoardCachePrefix is the prefix used for Redis occupancy board cache keys.
const BoardCachePrefix = "board:"

// BoardCacheTTL is the time-to-live for cached occupancy board snapshots.
const BoardCacheTTL = 2 * time.Minute

// BoardChannel is the Redis pub/sub channel carrying board update payloads.
const BoardChannel = "board:updates"
