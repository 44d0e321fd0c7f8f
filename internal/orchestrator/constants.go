package orchestrator

import (
	"os"
	"time"
)

const (
	// DefaultRunTimeout bounds a single invocation end to end.
	DefaultRunTimeout = 10 * time.Minute

	appendFlags = os.O_APPEND | os.O_CREATE | os.O_WRONLY
)
