//go:build windows

package engine

import (
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	DWMWA_USE_IMMERSIVE_DARK_MODE = 20
	DWMWA_BORDER_COLOR            = 34
	DWMWA_CAPTION_COLOR           = 35
)

// setDarkTitleBar matches the caption to the dark scene background.
func setDarkTitleBar(window *glfw.Window) {
	win32 := window.GetWin32Window()
	if win32 == nil {
		return
	}
	hwnd := unsafe.Pointer(win32)

	var useDarkMode int32 = 1
	setWindowAttribute(hwnd, DWMWA_USE_IMMERSIVE_DARK_MODE, unsafe.Pointer(&useDarkMode), unsafe.Sizeof(useDarkMode))

	// COLORREF is 0x00BBGGRR
	var captionColor uint32 = 0x00000000
	setWindowAttribute(hwnd, DWMWA_CAPTION_COLOR, unsafe.Pointer(&captionColor), unsafe.Sizeof(captionColor))
	setWindowAttribute(hwnd, DWMWA_BORDER_COLOR, unsafe.Pointer(&captionColor), unsafe.Sizeof(captionColor))
}

func setWindowAttribute(hwnd unsafe.Pointer, attribute uintptr, value unsafe.Pointer, size uintptr) {
	procDwmSetWindowAttribute.Call(uintptr(hwnd), attribute, uintptr(value), size)
}
