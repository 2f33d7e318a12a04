//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package vos

import (
	"os"
	"time"
)

type nopPoller struct{}

// NewKeyPoller returns a poller that never sees input on unsupported
// platforms, so the pager pages straight through.
func NewKeyPoller(*os.File) KeyPoller {
	return nopPoller{}
}

func (nopPoller) Ready(time.Duration) (bool, error) {
	return false, nil
}
