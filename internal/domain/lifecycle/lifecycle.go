// Package lifecycle holds process lifecycle constants shared by the delivery
// and infra layers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps.
const DefaultTimeout = 30 * time.Second
