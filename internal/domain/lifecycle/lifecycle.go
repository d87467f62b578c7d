// Package lifecycle holds shared constants for process start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful-shutdown work such as
// pinging the database or draining the HTTP server.
const DefaultTimeout = 10 * time.Second
