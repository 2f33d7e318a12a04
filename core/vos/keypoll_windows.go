//go:build windows

package vos

import (
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const evtKey = 0x0001

// inputRecord mirrors INPUT_RECORD.
type inputRecord struct {
	EventType uint16
	_         uint16
	Event     [16]byte
}

type keyEventRecord struct {
	KeyDown         int32
	RepeatCount     uint16
	VirtualKeyCode  uint16
	VirtualScanCode uint16
	UnicodeChar     uint16
	ControlKeyState uint32
}

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procPeekConsoleInput = kernel32.NewProc("PeekConsoleInputW")
	procReadConsoleInput = kernel32.NewProc("ReadConsoleInputW")
)

type consolePoller struct {
	handle windows.Handle
}

// NewKeyPoller watches the console input handle behind f.
func NewKeyPoller(f *os.File) KeyPoller {
	return &consolePoller{handle: windows.Handle(f.Fd())}
}

// Ready reports whether a key press is waiting. Other console events, key
// releases included, are consumed and ignored.
func (p *consolePoller) Ready(wait time.Duration) (bool, error) {
	deadline := time.Now().Add(wait)
	for {
		remaining := max(time.Until(deadline), 0)

		event, err := windows.WaitForSingleObject(p.handle, uint32(remaining/time.Millisecond))
		if err != nil {
			return false, err
		}
		if event != windows.WAIT_OBJECT_0 {
			return false, nil
		}

		pressed, err := p.discardUntilKeyDown()
		if err != nil || pressed {
			return pressed, err
		}
		if remaining == 0 {
			return false, nil
		}
	}
}

// discardUntilKeyDown reads records off the front of the input buffer until
// a key press is next, leaving it unread.
func (p *consolePoller) discardUntilKeyDown() (bool, error) {
	var rec inputRecord
	for {
		var n uint32
		r1, _, e1 := procPeekConsoleInput.Call(
			uintptr(p.handle),
			uintptr(unsafe.Pointer(&rec)),
			1,
			uintptr(unsafe.Pointer(&n)),
		)
		if r1 == 0 {
			return false, e1
		}
		if n == 0 {
			return false, nil
		}
		if isKeyDown(&rec) {
			return true, nil
		}

		r1, _, e1 = procReadConsoleInput.Call(
			uintptr(p.handle),
			uintptr(unsafe.Pointer(&rec)),
			1,
			uintptr(unsafe.Pointer(&n)),
		)
		if r1 == 0 {
			return false, e1
		}
	}
}

func isKeyDown(rec *inputRecord) bool {
	if rec.EventType != evtKey {
		return false
	}
	return (*keyEventRecord)(unsafe.Pointer(&rec.Event[0])).KeyDown != 0
}
