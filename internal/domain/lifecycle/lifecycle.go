// Package lifecycle holds shared startup and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks such as pings and graceful shutdowns.
const DefaultTimeout = 15 * time.Second
