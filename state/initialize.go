package state

import (
	"time"
)

// newLocalEnv creates a new LocalEnv instance with default values. Logger is
// left unset until configuration is processed.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}
