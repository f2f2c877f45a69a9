//go:build windows

package clipboard

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard            = user32.NewProc("OpenClipboard")
	procCloseClipboard           = user32.NewProc("CloseClipboard")
	procEmptyClipboard           = user32.NewProc("EmptyClipboard")
	procSetClipboardData         = user32.NewProc("SetClipboardData")
	procRegisterClipboardFormatW = user32.NewProc("RegisterClipboardFormatW")

	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalFree   = kernel32.NewProc("GlobalFree")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
)

const gmemMoveable = 0x0002

func init() {
	Register(&windowsBackend{})
}

// windowsBackend installs CF_HTML payloads through the Win32 clipboard API
// under the registered "HTML Format" clipboard format.
type windowsBackend struct{}

func (*windowsBackend) Name() string { return "windows" }

func (*windowsBackend) WriteHTML(payload []byte) error {
	format, err := htmlFormat()
	if err != nil {
		return err
	}

	if r, _, errno := procOpenClipboard.Call(0); r == 0 {
		return fmt.Errorf("open clipboard: %w", errno)
	}
	// The clipboard must be released no matter how the session ends.
	defer procCloseClipboard.Call()

	if r, _, errno := procEmptyClipboard.Call(); r == 0 {
		return fmt.Errorf("empty clipboard: %w", errno)
	}

	// Trailing NUL for consumers that treat the block as a C string.
	size := len(payload) + 1
	handle, _, errno := procGlobalAlloc.Call(gmemMoveable, uintptr(size))
	if handle == 0 {
		return fmt.Errorf("global alloc: %w", errno)
	}

	ptr, _, errno := procGlobalLock.Call(handle)
	if ptr == 0 {
		procGlobalFree.Call(handle)
		return fmt.Errorf("global lock: %w", errno)
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size)
	copy(buf, payload)
	buf[size-1] = 0
	procGlobalUnlock.Call(handle)

	// On success the system owns the handle; free it only on failure.
	if r, _, errno := procSetClipboardData.Call(uintptr(format), handle); r == 0 {
		procGlobalFree.Call(handle)
		return fmt.Errorf("set clipboard data: %w", errno)
	}
	return nil
}

// htmlFormat registers (or looks up) the "HTML Format" clipboard format id.
func htmlFormat() (uint32, error) {
	name, err := windows.UTF16PtrFromString("HTML Format")
	if err != nil {
		return 0, err
	}
	r, _, errno := procRegisterClipboardFormatW.Call(uintptr(unsafe.Pointer(name)))
	if r == 0 {
		return 0, fmt.Errorf("register clipboard format: %w", errno)
	}
	return uint32(r), nil
}
