// Package lifecycle holds shared start/stop settings for long lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start-up probes and graceful shutdown of infrastructure components.
const DefaultTimeout = 10 * time.Second
