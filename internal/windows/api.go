//go:build windows

package windows

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	SW_SHOWNORMAL = 1

	// maxTitleChars is the buffer size used for window titles
	maxTitleChars = 256
)

var (
	shell32                 = windows.NewLazySystemDLL("shell32.dll")
	procShellExecute        = shell32.NewProc("ShellExecuteW")
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procGetForegroundWindow = user32.NewProc("GetForegroundWindow")
	procGetWindowTextW      = user32.NewProc("GetWindowTextW")
)

// shellExecuteErrors maps the small ShellExecute return codes to text
var shellExecuteErrors = map[uintptr]string{
	0:  "out of memory or resources",
	2:  "file not found",
	3:  "path not found",
	5:  "access denied",
	8:  "out of memory",
	11: "invalid executable",
	26: "sharing violation",
	27: "incomplete file association",
	31: "no application associated with this file type",
	32: "DLL not found",
}

// GetForegroundWindow returns the handle of the window the user is working
// in, or 0 when there is none.
func GetForegroundWindow() uintptr {
	hwnd, _, _ := procGetForegroundWindow.Call()
	return hwnd
}

// GetWindowText retrieves up to 255 characters of a window's title
func GetWindowText(hwnd uintptr) string {
	buf := make([]uint16, maxTitleChars)

	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return windows.UTF16ToString(buf)
}

// ActiveWindowTitle returns the title of the foreground window. ok is false
// when there is no foreground window or it has no title.
func ActiveWindowTitle() (title string, ok bool) {
	hwnd := GetForegroundWindow()
	if hwnd == 0 {
		return "", false
	}

	title = GetWindowText(hwnd)
	return title, title != ""
}

// ShellExecute executes a file using the Windows shell
func ShellExecute(hwnd uintptr, verb, file, args, cwd string, showCmd int) error {
	var verbPtr, filePtr, argsPtr, cwdPtr *uint16
	var err error

	if verb != "" {
		if verbPtr, err = windows.UTF16PtrFromString(verb); err != nil {
			return err
		}
	}

	if filePtr, err = windows.UTF16PtrFromString(file); err != nil {
		return err
	}

	if args != "" {
		if argsPtr, err = windows.UTF16PtrFromString(args); err != nil {
			return err
		}
	}

	if cwd != "" {
		if cwdPtr, err = windows.UTF16PtrFromString(cwd); err != nil {
			return err
		}
	}

	ret, _, _ := procShellExecute.Call(
		hwnd,
		uintptr(unsafe.Pointer(verbPtr)),
		uintptr(unsafe.Pointer(filePtr)),
		uintptr(unsafe.Pointer(argsPtr)),
		uintptr(unsafe.Pointer(cwdPtr)),
		uintptr(showCmd),
	)

	// ShellExecute returns a value > 32 on success
	if ret <= 32 {
		if text, ok := shellExecuteErrors[ret]; ok {
			return fmt.Errorf("shell execute %s: %s (code %d)", file, text, ret)
		}
		return fmt.Errorf("shell execute %s failed with error code: %d", file, ret)
	}

	return nil
}

// shellOpen runs verb on path the way Explorer would
func shellOpen(verb, path string) error {
	return ShellExecute(0, verb, path, "", "", SW_SHOWNORMAL)
}
