//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package vos

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

type fdPoller struct {
	fd int
}

// NewKeyPoller watches f with select(2).
func NewKeyPoller(f *os.File) KeyPoller {
	return &fdPoller{fd: int(f.Fd())}
}

func (p *fdPoller) Ready(wait time.Duration) (bool, error) {
	for {
		var readfds unix.FdSet
		readfds.Set(p.fd)
		timeout := unix.NsecToTimeval(wait.Nanoseconds())

		n, err := unix.Select(p.fd+1, &readfds, nil, nil, &timeout)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0 && readfds.IsSet(p.fd), nil
	}
}
