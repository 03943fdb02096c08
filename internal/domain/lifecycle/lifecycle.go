// Package lifecycle holds shared lifecycle settings for servers and background resources.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers, pools and clients.
const DefaultTimeout = 10 * time.Second
