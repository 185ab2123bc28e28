package drm

import (
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/jc141x/rres/core"
	"github.com/jc141x/rres/model"
)

// System is the kernel-backed implementation of core.System: sysfs
// probing for location, ioctls on the open node for everything else.
type System struct {
	Locator
	log *logrus.Logger
}

// NewSystem returns a System using the kernel's standard DRM paths.
func NewSystem(log *logrus.Logger) *System {
	return &System{Locator: NewLocator(), log: log}
}

// Open opens a DRM device node for querying.
func (s *System) Open(path string) (core.Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		kind := model.DeviceOpenFailed
		if errors.Is(err, unix.EACCES) || errors.Is(err, unix.EPERM) {
			kind = model.DevicePermissionDenied
		}
		return nil, model.NewQueryError(kind, errors.Wrapf(err, "open %s", path))
	}
	return &Card{fd: fd, path: path, log: s.log}, nil
}

// Card is an open DRM device node.
type Card struct {
	fd   int
	path string
	log  *logrus.Logger
}

// Close releases the file descriptor.
func (c *Card) Close() error {
	return unix.Close(c.fd)
}

// Driver returns the kernel driver name via DRM_IOCTL_VERSION, or
// "unknown" when the query fails; this is diagnostic output only.
func (c *Card) Driver() string {
	var probe drmVersion
	if err := ioctl(c.fd, ioctlVersion, unsafe.Pointer(&probe)); err != nil || probe.nameLen == 0 {
		return "unknown"
	}
	buf := make([]byte, probe.nameLen)
	req := drmVersion{
		nameLen: uint(len(buf)),
		name:    uintptr(unsafe.Pointer(&buf[0])),
	}
	err := ioctl(c.fd, ioctlVersion, unsafe.Pointer(&req))
	runtime.KeepAlive(buf)
	if err != nil {
		return "unknown"
	}
	return string(buf)
}

// Connectors returns the card's connectors in kernel-reported order.
func (c *Card) Connectors() ([]core.Connector, error) {
	ids, err := c.connectorIDs()
	if err != nil {
		return nil, err
	}
	connectors := make([]core.Connector, 0, len(ids))
	for _, id := range ids {
		info, err := c.connector(id, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "get connector %d", id)
		}
		connectors = append(connectors, core.Connector{
			ID:     id,
			State:  connectorState(info.connection),
			Active: info.encoderID != 0 || info.countModes > 0,
		})
	}
	return connectors, nil
}

// ActiveMode resolves the resolution currently driven on a connector by
// walking connector -> current encoder -> CRTC. Drivers that hide the
// active pipeline (NVIDIA's proprietary one) get the connector's first
// listed mode instead, which is the display's native resolution.
func (c *Card) ActiveMode(connector uint32) (model.Resolution, error) {
	var info *modeGetConnector
	var modes []modeInfo
	for {
		probe, err := c.connector(connector, nil)
		if err != nil {
			return model.Resolution{}, errors.Wrapf(err, "get connector %d", connector)
		}
		if probe.countModes == 0 {
			info = probe
			break
		}
		modes = make([]modeInfo, probe.countModes)
		info, err = c.connector(connector, modes)
		if err != nil {
			return model.Resolution{}, errors.Wrapf(err, "get connector %d", connector)
		}
		if info.countModes <= uint32(len(modes)) {
			modes = modes[:info.countModes]
			break
		}
		// a hotplug grew the list between the two calls, reprobe
	}

	if info.connection != connectionConnected {
		return model.Resolution{}, errors.Errorf("connector %d is not connected", connector)
	}

	if info.encoderID != 0 {
		res, ok, err := c.crtcMode(info.encoderID)
		if err != nil {
			return model.Resolution{}, err
		}
		if ok {
			return res, nil
		}
	}

	if len(modes) > 0 {
		c.log.Warnf("connector %d exposes no active crtc, reading native resolution", connector)
		return model.Resolution{
			Width:  int(modes[0].hdisplay),
			Height: int(modes[0].vdisplay),
		}, nil
	}
	return model.Resolution{}, errors.Errorf("connector %d has no active mode", connector)
}

// crtcMode follows an encoder to its CRTC and reads the driven mode.
// ok is false when the encoder has no CRTC or the CRTC drives no mode.
func (c *Card) crtcMode(encoderID uint32) (model.Resolution, bool, error) {
	enc := modeGetEncoder{encoderID: encoderID}
	if err := ioctl(c.fd, ioctlModeGetEncoder, unsafe.Pointer(&enc)); err != nil {
		return model.Resolution{}, false, errors.Wrapf(err, "get encoder %d", encoderID)
	}
	if enc.crtcID == 0 {
		return model.Resolution{}, false, nil
	}
	crtc := modeCrtc{crtcID: enc.crtcID}
	if err := ioctl(c.fd, ioctlModeGetCrtc, unsafe.Pointer(&crtc)); err != nil {
		return model.Resolution{}, false, errors.Wrapf(err, "get crtc %d", enc.crtcID)
	}
	if crtc.modeValid == 0 {
		return model.Resolution{}, false, nil
	}
	return model.Resolution{
		Width:  int(crtc.mode.hdisplay),
		Height: int(crtc.mode.vdisplay),
	}, true, nil
}

// connectorIDs reads the card's connector ID list via GETRESOURCES, using
// the usual two-pass count-then-fill protocol.
func (c *Card) connectorIDs() ([]uint32, error) {
	for {
		var probe modeCardRes
		if err := ioctl(c.fd, ioctlModeGetResources, unsafe.Pointer(&probe)); err != nil {
			return nil, errors.Wrap(err, "get resources")
		}
		if probe.countConnectors == 0 {
			return nil, nil
		}
		ids := make([]uint32, probe.countConnectors)
		req := modeCardRes{
			connectorIDPtr:  uint64(uintptr(unsafe.Pointer(&ids[0]))),
			countConnectors: uint32(len(ids)),
		}
		err := ioctl(c.fd, ioctlModeGetResources, unsafe.Pointer(&req))
		runtime.KeepAlive(ids)
		if err != nil {
			return nil, errors.Wrap(err, "get resources")
		}
		if req.countConnectors <= uint32(len(ids)) {
			return ids[:req.countConnectors], nil
		}
		// a connector was hotplugged between the two calls, reprobe
	}
}

// connector queries one connector. When modes is non-nil it is filled with
// the connector's mode list; otherwise only the header is read.
func (c *Card) connector(id uint32, modes []modeInfo) (*modeGetConnector, error) {
	req := modeGetConnector{connectorID: id}
	if modes != nil {
		req.countModes = uint32(len(modes))
		req.modesPtr = uint64(uintptr(unsafe.Pointer(&modes[0])))
	}
	err := ioctl(c.fd, ioctlModeGetConnector, unsafe.Pointer(&req))
	runtime.KeepAlive(modes)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func connectorState(connection uint32) core.ConnectorState {
	switch connection {
	case connectionConnected:
		return core.StateConnected
	case connectionDisconnected:
		return core.StateDisconnected
	default:
		return core.StateUnknown
	}
}
