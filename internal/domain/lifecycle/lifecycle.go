// Package lifecycle holds shared lifecycle settings for servers and background workers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and flushing of cart state.
const DefaultTimeout = 10 * time.Second
