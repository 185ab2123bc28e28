package drm

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// DRM character device ioctl type ('d') and the command numbers used for
// read-only mode-setting queries, from the kernel's drm.h / drm_mode.h.
const (
	drmIoctlType = 'd'

	nrVersion          = 0x00
	nrModeGetResources = 0xA0
	nrModeGetCrtc      = 0xA1
	nrModeGetEncoder   = 0xA6
	nrModeGetConnector = 0xA7
)

// _IOC layout: nr in bits 0-7, type in 8-15, size in 16-29, dir in 30-31.
const (
	iocWrite uintptr = 1
	iocRead  uintptr = 2
)

func iowr(nr uintptr, size uintptr) uintptr {
	return (iocRead|iocWrite)<<30 | size<<16 | drmIoctlType<<8 | nr
}

var (
	ioctlVersion          = iowr(nrVersion, unsafe.Sizeof(drmVersion{}))
	ioctlModeGetResources = iowr(nrModeGetResources, unsafe.Sizeof(modeCardRes{}))
	ioctlModeGetCrtc      = iowr(nrModeGetCrtc, unsafe.Sizeof(modeCrtc{}))
	ioctlModeGetEncoder   = iowr(nrModeGetEncoder, unsafe.Sizeof(modeGetEncoder{}))
	ioctlModeGetConnector = iowr(nrModeGetConnector, unsafe.Sizeof(modeGetConnector{}))
)

// drmVersion mirrors struct drm_version. The kernel fills the driver name
// into the caller-provided buffer.
type drmVersion struct {
	major      int32
	minor      int32
	patchLevel int32
	nameLen    uint
	name       uintptr
	dateLen    uint
	date       uintptr
	descLen    uint
	desc       uintptr
}

// modeCardRes mirrors struct drm_mode_card_res.
type modeCardRes struct {
	fbIDPtr         uint64
	crtcIDPtr       uint64
	connectorIDPtr  uint64
	encoderIDPtr    uint64
	countFBs        uint32
	countCrtcs      uint32
	countConnectors uint32
	countEncoders   uint32
	minWidth        uint32
	maxWidth        uint32
	minHeight       uint32
	maxHeight       uint32
}

// modeInfo mirrors struct drm_mode_modeinfo.
type modeInfo struct {
	clock      uint32
	hdisplay   uint16
	hsyncStart uint16
	hsyncEnd   uint16
	htotal     uint16
	hskew      uint16
	vdisplay   uint16
	vsyncStart uint16
	vsyncEnd   uint16
	vtotal     uint16
	vscan      uint16
	vrefresh   uint32
	flags      uint32
	typ        uint32
	name       [32]byte
}

// modeGetConnector mirrors struct drm_mode_get_connector.
type modeGetConnector struct {
	encodersPtr     uint64
	modesPtr        uint64
	propsPtr        uint64
	propValuesPtr   uint64
	countModes      uint32
	countProps      uint32
	countEncoders   uint32
	encoderID       uint32
	connectorID     uint32
	connectorType   uint32
	connectorTypeID uint32
	connection      uint32
	mmWidth         uint32
	mmHeight        uint32
	subpixel        uint32
	pad             uint32
}

// Connection states reported in modeGetConnector.connection.
const (
	connectionConnected    = 1
	connectionDisconnected = 2
)

// modeGetEncoder mirrors struct drm_mode_get_encoder.
type modeGetEncoder struct {
	encoderID      uint32
	encoderType    uint32
	crtcID         uint32
	possibleCrtcs  uint32
	possibleClones uint32
}

// modeCrtc mirrors struct drm_mode_crtc.
type modeCrtc struct {
	setConnectorsPtr uint64
	countConnectors  uint32
	crtcID           uint32
	fbID             uint32
	x                uint32
	y                uint32
	gammaSize        uint32
	modeValid        uint32
	mode             modeInfo
}

// ioctl issues one DRM query, restarting when the kernel asks for a retry.
func ioctl(fd int, cmd uintptr, arg unsafe.Pointer) error {
	for {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), cmd, uintptr(arg))
		if errno == 0 {
			return nil
		}
		if errno == unix.EINTR || errno == unix.EAGAIN {
			continue
		}
		return errno
	}
}
