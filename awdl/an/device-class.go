package an

import "strconv"

// DeviceClass identifies the platform of an AWDL peer.
type DeviceClass uint8

// Device classes.
const (
	DeviceMacOS   DeviceClass = 0x01
	DeviceIOS     DeviceClass = 0x02
	DeviceWatchOS DeviceClass = 0x04
	DeviceTVOS    DeviceClass = 0x08
)

func (dc DeviceClass) String() string {
	switch dc {
	case DeviceMacOS:
		return "macOS"
	case DeviceIOS:
		return "iOS"
	case DeviceWatchOS:
		return "watchOS"
	case DeviceTVOS:
		return "tvOS"
	}
	return "Unknown(" + strconv.Itoa(int(dc)) + ")"
}
