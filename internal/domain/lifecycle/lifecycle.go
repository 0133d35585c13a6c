// Package lifecycle holds shared timeouts for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks (DB ping, HTTP shutdown).
const DefaultTimeout = 15 * time.Second
