//go:build windows

package system

import (
	"context"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	dmPelsWidth        = 0x00080000
	dmPelsHeight       = 0x00100000
	dmDisplayFrequency = 0x00400000

	dispChangeSuccessful = 0
)

var (
	user32                     = windows.NewLazySystemDLL("user32.dll")
	procChangeDisplaySettingsW = user32.NewProc("ChangeDisplaySettingsW")
)

// devModeW espelha a estrutura DEVMODEW da API Win32 (variante de vídeo).
type devModeW struct {
	DeviceName         [32]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	PositionX          int32
	PositionY          int32
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [32]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
	ICMMethod          uint32
	ICMIntent          uint32
	MediaType          uint32
	DitherType         uint32
	Reserved1          uint32
	Reserved2          uint32
	PanningWidth       uint32
	PanningHeight      uint32
}

// SetMode altera resolução e taxa de atualização do monitor principal.
func (d *DisplayControllerImpl) SetMode(ctx context.Context, width, height, refreshRate uint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := procChangeDisplaySettingsW.Find(); err != nil {
		return err
	}

	var dm devModeW
	dm.Size = uint16(unsafe.Sizeof(dm))
	dm.PelsWidth = uint32(width)
	dm.PelsHeight = uint32(height)
	dm.DisplayFrequency = uint32(refreshRate)
	dm.Fields = dmPelsWidth | dmPelsHeight | dmDisplayFrequency

	ret, _, _ := procChangeDisplaySettingsW.Call(uintptr(unsafe.Pointer(&dm)), 0)
	if code := int32(ret); code != dispChangeSuccessful {
		return &DisplayModeError{Code: code}
	}
	return nil
}
