//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package vos

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFdPoller(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	poller := NewKeyPoller(r)

	ready, err := poller.Ready(0)
	assert.NoError(t, err)
	assert.False(t, ready, "empty pipe")

	_, err = w.Write([]byte("q\n"))
	require.NoError(t, err)

	ready, err = poller.Ready(10 * time.Millisecond)
	assert.NoError(t, err)
	assert.True(t, ready, "pending input")

	// Polling never consumes input.
	ready, err = poller.Ready(0)
	assert.NoError(t, err)
	assert.True(t, ready)
}
