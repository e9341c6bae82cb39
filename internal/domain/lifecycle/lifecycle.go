// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and shutdown operations such as
// the initial database ping and draining the HTTP server.
const DefaultTimeout = 10 * time.Second
